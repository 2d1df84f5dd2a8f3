package spectra

import (
	"fmt"

	"github.com/carbocation/spectra/frame"
)

type axis int

const (
	rowAxis axis = iota
	columnAxis
	wavelengthAxis
)

// Selector picks positions along one axis of a Spectra. Row selectors pick
// spectra, column selectors pick metadata columns and wavelength selectors
// pick matrix columns by their wavelength.
type Selector interface {
	axis() axis
}

type RowSelector interface {
	Selector
	rowIndices(n int) ([]int, error)
}

type ColumnSelector interface {
	Selector
	columnNames(f *frame.Frame) ([]string, error)
}

type WavelengthSelector interface {
	Selector
	wavelengthIndices(wl []float64) ([]int, error)
}

type (
	// AllRows selects every spectrum.
	AllRows struct{}
	// Row selects a single spectrum.
	Row int
	// RowList selects spectra in the given order.
	RowList []int
	// RowSpan selects spectra From through To, inclusive. Bounds beyond the
	// collection are clamped.
	RowSpan struct{ From, To int }
)

type (
	// AllColumns selects every metadata column.
	AllColumns struct{}
	// Column selects a single metadata column.
	Column string
	// ColumnList selects metadata columns in the given order.
	ColumnList []string
	// ColumnSpan selects the metadata columns from From through To, inclusive,
	// in table order.
	ColumnSpan struct{ From, To string }
)

type (
	// AllWavelengths selects every wavelength.
	AllWavelengths struct{}
	// Wavelength selects the column with this exact wavelength.
	Wavelength float64
	// WavelengthList selects the columns with these exact wavelengths, in the
	// given order.
	WavelengthList []float64
	// WavelengthSpan selects, in column order, every column whose wavelength
	// lies within [Min, Max].
	WavelengthSpan struct{ Min, Max float64 }
)

func (AllRows) axis() axis { return rowAxis }
func (Row) axis() axis     { return rowAxis }
func (RowList) axis() axis { return rowAxis }
func (RowSpan) axis() axis { return rowAxis }

func (AllColumns) axis() axis { return columnAxis }
func (Column) axis() axis     { return columnAxis }
func (ColumnList) axis() axis { return columnAxis }
func (ColumnSpan) axis() axis { return columnAxis }

func (AllWavelengths) axis() axis { return wavelengthAxis }
func (Wavelength) axis() axis     { return wavelengthAxis }
func (WavelengthList) axis() axis { return wavelengthAxis }
func (WavelengthSpan) axis() axis { return wavelengthAxis }

func (AllRows) rowIndices(n int) ([]int, error) {
	return RowSpan{From: 0, To: n - 1}.rowIndices(n)
}

func (r Row) rowIndices(n int) ([]int, error) {
	return RowList{int(r)}.rowIndices(n)
}

func (r RowList) rowIndices(n int) ([]int, error) {
	for _, i := range r {
		if i < 0 || i >= n {
			return nil, fmt.Errorf("%w: row %d not in [0, %d)", ErrConfiguration, i, n)
		}
	}
	return append([]int{}, r...), nil
}

func (r RowSpan) rowIndices(n int) ([]int, error) {
	from, to := r.From, r.To
	if from < 0 {
		from = 0
	}
	if to > n-1 {
		to = n - 1
	}

	out := make([]int, 0)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out, nil
}

func (AllColumns) columnNames(f *frame.Frame) ([]string, error) {
	return f.Names(), nil
}

func (c Column) columnNames(f *frame.Frame) ([]string, error) {
	return ColumnList{string(c)}.columnNames(f)
}

// Missing names are reported by frame.Select.
func (c ColumnList) columnNames(_ *frame.Frame) ([]string, error) {
	return append([]string{}, c...), nil
}

func (c ColumnSpan) columnNames(f *frame.Frame) ([]string, error) {
	names := f.Names()
	from, to := -1, -1
	for j, name := range names {
		if name == c.From && from < 0 {
			from = j
		}
		if name == c.To {
			to = j
		}
	}
	if from < 0 || to < 0 {
		return nil, fmt.Errorf("%w: column span %q:%q is not in the data", ErrConfiguration, c.From, c.To)
	}
	if from > to {
		return []string{}, nil
	}
	return names[from : to+1], nil
}

func (AllWavelengths) wavelengthIndices(wl []float64) ([]int, error) {
	out := make([]int, len(wl))
	for j := range wl {
		out[j] = j
	}
	return out, nil
}

func (w Wavelength) wavelengthIndices(wl []float64) ([]int, error) {
	return WavelengthList{float64(w)}.wavelengthIndices(wl)
}

func (w WavelengthList) wavelengthIndices(wl []float64) ([]int, error) {
	pos := make(map[float64]int, len(wl))
	for j, v := range wl {
		pos[v] = j
	}

	out := make([]int, 0, len(w))
	for _, v := range w {
		j, ok := pos[v]
		if !ok {
			return nil, fmt.Errorf("%w: wavelength %v not found", ErrConfiguration, v)
		}
		out = append(out, j)
	}
	return out, nil
}

func (w WavelengthSpan) wavelengthIndices(wl []float64) ([]int, error) {
	out := make([]int, 0)
	for j, v := range wl {
		if v >= w.Min && v <= w.Max {
			out = append(out, j)
		}
	}
	return out, nil
}

// Index subsets s with exactly three selectors: rows, metadata columns and
// wavelengths, in that order.
func (s *Spectra) Index(sel ...Selector) (*Spectra, error) {
	if len(sel) != 3 {
		return nil, fmt.Errorf("%w: incorrect subset value, provide 3 values in format <row, column, wl> (got %d)", ErrConfiguration, len(sel))
	}

	rows, ok := sel[0].(RowSelector)
	if !ok {
		return nil, fmt.Errorf("%w: selector 0 must select rows, got %T", ErrConfiguration, sel[0])
	}
	cols, ok := sel[1].(ColumnSelector)
	if !ok {
		return nil, fmt.Errorf("%w: selector 1 must select data columns, got %T", ErrConfiguration, sel[1])
	}
	wls, ok := sel[2].(WavelengthSelector)
	if !ok {
		return nil, fmt.Errorf("%w: selector 2 must select wavelengths, got %T", ErrConfiguration, sel[2])
	}

	return s.Subset(rows, cols, wls)
}

// Subset returns a new Spectra holding the selected spectra, metadata columns
// and wavelengths. The same rows are taken from the matrix and the metadata.
func (s *Spectra) Subset(rows RowSelector, cols ColumnSelector, wls WavelengthSelector) (*Spectra, error) {
	if rows == nil || cols == nil || wls == nil {
		return nil, fmt.Errorf("%w: nil selector", ErrConfiguration)
	}

	ri, err := rows.rowIndices(s.nspc)
	if err != nil {
		return nil, err
	}
	names, err := cols.columnNames(s.data)
	if err != nil {
		return nil, err
	}
	wi, err := wls.wavelengthIndices(s.wl)
	if err != nil {
		return nil, err
	}

	values := make([]float64, 0, len(ri)*len(wi))
	for _, i := range ri {
		for _, j := range wi {
			values = append(values, s.spc.At(i, j))
		}
	}

	wl := make([]float64, len(wi))
	for k, j := range wi {
		wl[k] = s.wl[j]
	}

	data, err := s.data.Take(ri).Select(names)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	return New(Options{
		Spc:         packed{rows: len(ri), cols: len(wi), values: values},
		Wavelengths: wl,
		Data:        data,
		Labels:      s.labels,
		Description: s.description,
	})
}
