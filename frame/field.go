package frame

import (
	"fmt"
	"strconv"

	"gopkg.in/guregu/null.v3"
)

// Kind identifies the storage type of a Field.
type Kind int

const (
	Float Kind = iota
	Int
	String
	Bool
)

func (k Kind) String() string {
	switch k {
	case Float:
		return "float"
	case Int:
		return "int"
	case String:
		return "string"
	case Bool:
		return "bool"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Field is a named, typed column of nullable values. Exactly one of the value
// slices is populated, according to kind.
type Field struct {
	name    string
	kind    Kind
	floats  []null.Float
	ints    []null.Int
	strings []null.String
	bools   []null.Bool
}

func NewFloatField(name string, values []float64) *Field {
	out := &Field{name: name, kind: Float, floats: make([]null.Float, len(values))}
	for i, v := range values {
		out.floats[i] = null.FloatFrom(v)
	}
	return out
}

func NewIntField(name string, values []int64) *Field {
	out := &Field{name: name, kind: Int, ints: make([]null.Int, len(values))}
	for i, v := range values {
		out.ints[i] = null.IntFrom(v)
	}
	return out
}

func NewStringField(name string, values []string) *Field {
	out := &Field{name: name, kind: String, strings: make([]null.String, len(values))}
	for i, v := range values {
		out.strings[i] = null.StringFrom(v)
	}
	return out
}

func NewBoolField(name string, values []bool) *Field {
	out := &Field{name: name, kind: Bool, bools: make([]null.Bool, len(values))}
	for i, v := range values {
		out.bools[i] = null.BoolFrom(v)
	}
	return out
}

func NewNullFloatField(name string, values []null.Float) *Field {
	return &Field{name: name, kind: Float, floats: append([]null.Float(nil), values...)}
}

func NewNullIntField(name string, values []null.Int) *Field {
	return &Field{name: name, kind: Int, ints: append([]null.Int(nil), values...)}
}

func NewNullStringField(name string, values []null.String) *Field {
	return &Field{name: name, kind: String, strings: append([]null.String(nil), values...)}
}

func NewNullBoolField(name string, values []null.Bool) *Field {
	return &Field{name: name, kind: Bool, bools: append([]null.Bool(nil), values...)}
}

// FieldFromValues infers a Field from loosely typed values. Nil entries become
// nulls. Integers mixed with floats yield a Float field; any other mixture of
// kinds yields a String field. A slice of only nils yields a Float field.
func FieldFromValues(name string, values []interface{}) (*Field, error) {
	seen := make(map[Kind]bool)
	for i, v := range values {
		if v == nil {
			continue
		}
		k, ok := kindOf(v)
		if !ok {
			return nil, fmt.Errorf("%w: value %d of field %q has type %T", ErrUnsupported, i, name, v)
		}
		seen[k] = true
	}

	kind := Float
	switch {
	case len(seen) == 1:
		for k := range seen {
			kind = k
		}
	case len(seen) == 2 && seen[Int] && seen[Float]:
		kind = Float
	case len(seen) > 1:
		kind = String
	}

	out := nullField(name, kind, len(values))
	for i, v := range values {
		if v == nil {
			continue
		}
		out.set(i, v)
	}

	return out, nil
}

func kindOf(v interface{}) (Kind, bool) {
	switch v.(type) {
	case float64, float32:
		return Float, true
	case int, int64, int32:
		return Int, true
	case string:
		return String, true
	case bool:
		return Bool, true
	}
	return Float, false
}

// set stores a non-nil scalar of a type accepted by kindOf, converting it to
// the field's kind.
func (f *Field) set(i int, v interface{}) {
	switch f.kind {
	case Float:
		switch x := v.(type) {
		case float64:
			f.floats[i] = null.FloatFrom(x)
		case float32:
			f.floats[i] = null.FloatFrom(float64(x))
		case int:
			f.floats[i] = null.FloatFrom(float64(x))
		case int64:
			f.floats[i] = null.FloatFrom(float64(x))
		case int32:
			f.floats[i] = null.FloatFrom(float64(x))
		}
	case Int:
		switch x := v.(type) {
		case int:
			f.ints[i] = null.IntFrom(int64(x))
		case int64:
			f.ints[i] = null.IntFrom(x)
		case int32:
			f.ints[i] = null.IntFrom(int64(x))
		}
	case String:
		f.strings[i] = null.StringFrom(formatScalar(v))
	case Bool:
		if x, ok := v.(bool); ok {
			f.bools[i] = null.BoolFrom(x)
		}
	}
}

func formatScalar(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case bool:
		return strconv.FormatBool(x)
	}
	return fmt.Sprint(v)
}

// nullField returns a field of n nulls.
func nullField(name string, kind Kind, n int) *Field {
	out := &Field{name: name, kind: kind}
	switch kind {
	case Float:
		out.floats = make([]null.Float, n)
	case Int:
		out.ints = make([]null.Int, n)
	case String:
		out.strings = make([]null.String, n)
	case Bool:
		out.bools = make([]null.Bool, n)
	}
	return out
}

func (f *Field) Name() string { return f.name }
func (f *Field) Kind() Kind   { return f.kind }

func (f *Field) Len() int {
	switch f.kind {
	case Float:
		return len(f.floats)
	case Int:
		return len(f.ints)
	case String:
		return len(f.strings)
	case Bool:
		return len(f.bools)
	}
	return 0
}

func (f *Field) IsNull(i int) bool {
	switch f.kind {
	case Float:
		return !f.floats[i].Valid
	case Int:
		return !f.ints[i].Valid
	case String:
		return !f.strings[i].Valid
	case Bool:
		return !f.bools[i].Valid
	}
	return true
}

// Value returns the i'th value as float64, int64, string or bool, or nil when
// the value is null.
func (f *Field) Value(i int) interface{} {
	if f.IsNull(i) {
		return nil
	}
	switch f.kind {
	case Float:
		return f.floats[i].Float64
	case Int:
		return f.ints[i].Int64
	case String:
		return f.strings[i].String
	case Bool:
		return f.bools[i].Bool
	}
	return nil
}

// Float returns the i'th value as a nullable float. Int fields are converted;
// String and Bool fields always yield null.
func (f *Field) Float(i int) null.Float {
	switch f.kind {
	case Float:
		return f.floats[i]
	case Int:
		if f.ints[i].Valid {
			return null.FloatFrom(float64(f.ints[i].Int64))
		}
	}
	return null.Float{}
}

// Text returns the i'th value formatted as a nullable string.
func (f *Field) Text(i int) null.String {
	if f.kind == String {
		return f.strings[i]
	}
	v := f.Value(i)
	if v == nil {
		return null.String{}
	}
	return null.StringFrom(formatScalar(v))
}

// Copy returns a deep copy of f.
func (f *Field) Copy() *Field {
	return f.Rename(f.name)
}

// Rename returns a deep copy of f carrying a new name.
func (f *Field) Rename(name string) *Field {
	return &Field{
		name:    name,
		kind:    f.kind,
		floats:  append([]null.Float(nil), f.floats...),
		ints:    append([]null.Int(nil), f.ints...),
		strings: append([]null.String(nil), f.strings...),
		bools:   append([]null.Bool(nil), f.bools...),
	}
}

func (f *Field) take(rows []int) *Field {
	return &Field{
		name:    f.name,
		kind:    f.kind,
		floats:  takeSlice(f.floats, rows),
		ints:    takeSlice(f.ints, rows),
		strings: takeSlice(f.strings, rows),
		bools:   takeSlice(f.bools, rows),
	}
}

func takeSlice[T any](src []T, rows []int) []T {
	if src == nil {
		return nil
	}
	out := make([]T, len(rows))
	for i, r := range rows {
		out[i] = src[r]
	}
	return out
}

// convert returns a copy of f stored as kind. Only the promotions produced by
// promote are supported: Int to Float, and anything to String.
func (f *Field) convert(kind Kind) *Field {
	if f.kind == kind {
		return f.Copy()
	}

	n := f.Len()
	out := nullField(f.name, kind, n)
	for i := 0; i < n; i++ {
		switch kind {
		case Float:
			out.floats[i] = f.Float(i)
		case String:
			out.strings[i] = f.Text(i)
		}
	}
	return out
}

// promote picks the kind able to hold values of both a and b.
func promote(a, b Kind) Kind {
	switch {
	case a == b:
		return a
	case (a == Int && b == Float) || (a == Float && b == Int):
		return Float
	}
	return String
}

// appendField appends the values of b, which must share f's kind, onto f.
func (f *Field) appendField(b *Field) {
	f.floats = append(f.floats, b.floats...)
	f.ints = append(f.ints, b.ints...)
	f.strings = append(f.strings, b.strings...)
	f.bools = append(f.bools, b.bools...)
}
