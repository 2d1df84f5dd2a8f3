// Package frame holds per-observation metadata: a table with a fixed number of
// rows and any number of named, typed, nullable fields.
package frame

import (
	"errors"
	"fmt"
	"sort"

	"gopkg.in/guregu/null.v3"
)

var (
	ErrLength        = errors.New("frame: field length does not match row count")
	ErrDuplicateName = errors.New("frame: duplicate field name")
	ErrNotFound      = errors.New("frame: field not found")
	ErrUnsupported   = errors.New("frame: unsupported value type")
)

// Frame is a table of rows and ordered named fields. A Frame may have rows
// but no fields.
type Frame struct {
	nrow   int
	fields []*Field
}

// New returns a frame with nrow rows and no fields.
func New(nrow int) *Frame {
	return &Frame{nrow: nrow}
}

// FromFields builds a frame from fields of equal length. The fields are
// copied. With no fields, the frame has zero rows.
func FromFields(fields ...*Field) (*Frame, error) {
	out := &Frame{}
	if len(fields) > 0 {
		out.nrow = fields[0].Len()
	}

	for _, f := range fields {
		if err := out.AddField(f); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// FromMap builds a frame from a mapping of field name to values. Fields are
// ordered by name. Accepted value types are []float64, []float32, []int,
// []int64, []string, []bool, their null.v3 counterparts, []interface{} and
// *Field.
func FromMap(m map[string]interface{}) (*Frame, error) {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)

	fields := make([]*Field, 0, len(names))
	for _, name := range names {
		f, err := fieldFromSlice(name, m[name])
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}

	return FromFields(fields...)
}

func fieldFromSlice(name string, values interface{}) (*Field, error) {
	switch v := values.(type) {
	case []float64:
		return NewFloatField(name, v), nil
	case []float32:
		conv := make([]float64, len(v))
		for i, x := range v {
			conv[i] = float64(x)
		}
		return NewFloatField(name, conv), nil
	case []int:
		conv := make([]int64, len(v))
		for i, x := range v {
			conv[i] = int64(x)
		}
		return NewIntField(name, conv), nil
	case []int64:
		return NewIntField(name, v), nil
	case []string:
		return NewStringField(name, v), nil
	case []bool:
		return NewBoolField(name, v), nil
	case []null.Float:
		return NewNullFloatField(name, v), nil
	case []null.Int:
		return NewNullIntField(name, v), nil
	case []null.String:
		return NewNullStringField(name, v), nil
	case []null.Bool:
		return NewNullBoolField(name, v), nil
	case []interface{}:
		return FieldFromValues(name, v)
	case *Field:
		return v.Rename(name), nil
	}

	return nil, fmt.Errorf("%w: field %q has type %T", ErrUnsupported, name, values)
}

// Len returns the number of rows.
func (f *Frame) Len() int { return f.nrow }

// Width returns the number of fields.
func (f *Frame) Width() int { return len(f.fields) }

// Names returns the field names in order.
func (f *Frame) Names() []string {
	out := make([]string, len(f.fields))
	for i, fld := range f.fields {
		out[i] = fld.name
	}
	return out
}

// Field returns a copy of the named field.
func (f *Frame) Field(name string) (*Field, bool) {
	j := f.index(name)
	if j < 0 {
		return nil, false
	}
	return f.fields[j].Copy(), true
}

func (f *Frame) index(name string) int {
	for j, fld := range f.fields {
		if fld.name == name {
			return j
		}
	}
	return -1
}

// AddField appends a copy of fld. Its length must equal the row count and its
// name must be new.
func (f *Frame) AddField(fld *Field) error {
	if fld.Len() != f.nrow {
		return fmt.Errorf("%w: field %q has %d values, frame has %d rows", ErrLength, fld.name, fld.Len(), f.nrow)
	}
	if f.index(fld.name) >= 0 {
		return fmt.Errorf("%w: %q", ErrDuplicateName, fld.name)
	}

	f.fields = append(f.fields, fld.Copy())
	return nil
}

// Copy returns a deep copy of f.
func (f *Frame) Copy() *Frame {
	out := &Frame{nrow: f.nrow, fields: make([]*Field, len(f.fields))}
	for j, fld := range f.fields {
		out.fields[j] = fld.Copy()
	}
	return out
}

// Take returns a new frame holding the given rows, in the given order. Every
// row index must be in [0, Len()).
func (f *Frame) Take(rows []int) *Frame {
	out := &Frame{nrow: len(rows), fields: make([]*Field, len(f.fields))}
	for j, fld := range f.fields {
		out.fields[j] = fld.take(rows)
	}
	return out
}

// Select returns a new frame holding the named fields, in the given order.
// Each name may appear once.
func (f *Frame) Select(names []string) (*Frame, error) {
	out := &Frame{nrow: f.nrow, fields: make([]*Field, 0, len(names))}
	for _, name := range names {
		j := f.index(name)
		if j < 0 {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		if out.index(name) >= 0 {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		out.fields = append(out.fields, f.fields[j].Copy())
	}
	return out, nil
}

// Concat stacks frames row-wise. With inner set, only fields present in every
// frame are kept, in the order of the first frame. Otherwise all fields are
// kept in order of first appearance and rows from frames lacking a field are
// null. Fields sharing a name but not a kind are promoted: Int with Float
// becomes Float, any other mixture becomes String.
func Concat(frames []*Frame, inner bool) *Frame {
	out := &Frame{}
	for _, fr := range frames {
		out.nrow += fr.nrow
	}

	for _, name := range joinNames(frames, inner) {
		kind, found := Float, false
		for _, fr := range frames {
			if j := fr.index(name); j >= 0 {
				if !found {
					kind, found = fr.fields[j].kind, true
					continue
				}
				kind = promote(kind, fr.fields[j].kind)
			}
		}

		merged := nullField(name, kind, 0)
		for _, fr := range frames {
			if j := fr.index(name); j >= 0 {
				merged.appendField(fr.fields[j].convert(kind))
				continue
			}
			merged.appendField(nullField(name, kind, fr.nrow))
		}
		out.fields = append(out.fields, merged)
	}

	return out
}

func joinNames(frames []*Frame, inner bool) []string {
	if len(frames) == 0 {
		return nil
	}

	if inner {
		out := make([]string, 0, len(frames[0].fields))
	Names:
		for _, name := range frames[0].Names() {
			for _, fr := range frames[1:] {
				if fr.index(name) < 0 {
					continue Names
				}
			}
			out = append(out, name)
		}
		return out
	}

	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, fr := range frames {
		for _, name := range fr.Names() {
			if _, exists := seen[name]; exists {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	return out
}
