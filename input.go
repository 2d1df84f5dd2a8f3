package spectra

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Input is the spectral data passed to New. It is one of Vector, Matrix,
// Array, Series, Table or Dense.
type Input interface {
	normalize() (raw, error)
}

// raw is a row-major matrix owned by the caller of normalize. keys is nil when
// the input carried no wavelength keys.
type raw struct {
	rows, cols int
	values     []float64
	keys       []float64
}

// Vector is a single spectrum without wavelength keys.
type Vector []float64

// Matrix holds one spectrum per row. All rows must have the same length.
type Matrix [][]float64

// Array is a row-major n-dimensional array. Only 1-D (a single spectrum) and
// 2-D (spectra by wavelengths) shapes are accepted.
type Array struct {
	Shape  []int
	Values []float64
}

// Series is a single spectrum whose values are keyed by wavelength. Keys may
// be nil.
type Series struct {
	Keys   []float64
	Values []float64
}

// Table holds one spectrum per row with a wavelength key per column.
// Wavelengths may be nil, in which case the columns carry no keys.
type Table struct {
	Wavelengths []float64
	Rows        [][]float64
}

// Dense wraps a gonum matrix with one spectrum per row.
type Dense struct {
	M mat.Matrix
}

// packed is produced internally by operations that already own a freshly
// allocated row-major buffer.
type packed raw

func (v Vector) normalize() (raw, error) {
	return raw{rows: 1, cols: len(v), values: append([]float64(nil), v...)}, nil
}

func (m Matrix) normalize() (raw, error) {
	return rowsToRaw(m, nil)
}

func (a Array) normalize() (raw, error) {
	size := 1
	for _, d := range a.Shape {
		if d < 0 {
			return raw{}, fmt.Errorf("%w: negative array dimension %v", ErrConfiguration, a.Shape)
		}
		size *= d
	}
	if size != len(a.Values) {
		return raw{}, fmt.Errorf("%w: array of shape %v cannot hold %d values", ErrConfiguration, a.Shape, len(a.Values))
	}

	switch len(a.Shape) {
	case 1:
		return raw{rows: 1, cols: a.Shape[0], values: append([]float64(nil), a.Values...)}, nil
	case 2:
		return raw{rows: a.Shape[0], cols: a.Shape[1], values: append([]float64(nil), a.Values...)}, nil
	}

	return raw{}, fmt.Errorf("%w: incorrect spectra provided, %d-dimensional arrays are not supported", ErrConfiguration, len(a.Shape))
}

func (s Series) normalize() (raw, error) {
	if s.Keys != nil && len(s.Keys) != len(s.Values) {
		return raw{}, fmt.Errorf("%w: series has %d keys but %d values", ErrConfiguration, len(s.Keys), len(s.Values))
	}

	out := raw{rows: 1, cols: len(s.Values), values: append([]float64(nil), s.Values...)}
	if s.Keys != nil {
		out.keys = append([]float64(nil), s.Keys...)
	}
	return out, nil
}

func (t Table) normalize() (raw, error) {
	return rowsToRaw(t.Rows, t.Wavelengths)
}

func (d Dense) normalize() (raw, error) {
	if d.M == nil {
		return raw{}, fmt.Errorf("%w: nil matrix", ErrConfiguration)
	}

	r, c := d.M.Dims()
	out := raw{rows: r, cols: c, values: make([]float64, 0, r*c)}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.values = append(out.values, d.M.At(i, j))
		}
	}
	return out, nil
}

func (p packed) normalize() (raw, error) {
	if len(p.values) != p.rows*p.cols {
		return raw{}, fmt.Errorf("%w: %d values cannot fill %d x %d", ErrConfiguration, len(p.values), p.rows, p.cols)
	}
	return raw(p), nil
}

func rowsToRaw(rows [][]float64, keys []float64) (raw, error) {
	cols := len(keys)
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	if keys != nil && len(keys) != cols {
		return raw{}, fmt.Errorf("%w: table has %d wavelengths but %d columns", ErrConfiguration, len(keys), cols)
	}

	out := raw{rows: len(rows), cols: cols, values: make([]float64, 0, len(rows)*cols)}
	for i, row := range rows {
		if len(row) != cols {
			return raw{}, fmt.Errorf("%w: row %d has %d values, expected %d", ErrConfiguration, i, len(row), cols)
		}
		out.values = append(out.values, row...)
	}
	if keys != nil {
		out.keys = append([]float64(nil), keys...)
	}

	return out, nil
}
