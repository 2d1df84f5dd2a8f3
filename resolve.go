package spectra

import (
	"fmt"

	"github.com/carbocation/spectra/frame"
)

// Param selects one value per spectrum. It is one of ColumnName, Aligned,
// Floats or Values.
type Param interface {
	resolve(s *Spectra) (*frame.Field, error)
}

// ColumnName names a metadata column.
type ColumnName string

// Aligned is a field already holding one value per spectrum.
type Aligned struct {
	Field *frame.Field
}

// Floats holds one number per spectrum.
type Floats []float64

// Values holds one value per spectrum; see frame.FieldFromValues for the
// accepted element types.
type Values []interface{}

// Resolve turns p into a field with one value per spectrum. The result is
// owned by the caller.
func (s *Spectra) Resolve(p Param) (*frame.Field, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil parameter", ErrType)
	}

	f, err := p.resolve(s)
	if err != nil {
		return nil, err
	}
	if f.Len() != s.nspc {
		return nil, fmt.Errorf("%w: parameter has %d values but there are %d spectra", ErrType, f.Len(), s.nspc)
	}

	return f, nil
}

func (c ColumnName) resolve(s *Spectra) (*frame.Field, error) {
	f, ok := s.data.Field(string(c))
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a data column", ErrType, string(c))
	}
	return f, nil
}

func (a Aligned) resolve(_ *Spectra) (*frame.Field, error) {
	if a.Field == nil {
		return nil, fmt.Errorf("%w: nil field", ErrType)
	}
	return a.Field.Copy(), nil
}

func (f Floats) resolve(_ *Spectra) (*frame.Field, error) {
	return frame.NewFloatField("", f), nil
}

func (v Values) resolve(_ *Spectra) (*frame.Field, error) {
	f, err := frame.FieldFromValues("", v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrType, err)
	}
	return f, nil
}
