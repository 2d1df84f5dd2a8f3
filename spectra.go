// Package spectra holds collections of spectral measurements. A Spectra
// couples a matrix of intensities (one row per spectrum, one column per
// wavelength) with the wavelength of every column and a metadata table with
// one row per spectrum.
package spectra

import (
	"fmt"
	"log"
	"math"

	"github.com/carbocation/spectra/frame"
	"gonum.org/v1/gonum/mat"
)

// Spectra is a collection of spectra sharing a wavelength axis. The matrix
// and the metadata always have the same number of rows, and row i of one
// describes the same observation as row i of the other.
type Spectra struct {
	// spc is nil when there are no rows or no wavelengths, since gonum does not
	// represent empty matrices.
	spc  *mat.Dense
	nspc int
	wl   []float64
	data *frame.Frame

	labels      Labels
	description string
	warnings    []Warning
}

// Options are the arguments to New. At least one of Spc and Wavelengths must
// be set, and at most one of Data and DataColumns.
type Options struct {
	Spc Input

	// Wavelengths, when set, name the columns of Spc and override any keys Spc
	// carries. Its length must match the number of columns.
	Wavelengths []float64

	Data        *frame.Frame
	DataColumns map[string]interface{}

	Labels      LabelInput
	Description string

	// Logger receives construction warnings. Warnings are also available from
	// Warnings().
	Logger *log.Logger
}

// New builds a Spectra. Every input is copied, so the result shares no
// storage with its arguments.
func New(opts Options) (*Spectra, error) {
	if opts.Spc == nil && opts.Wavelengths == nil {
		return nil, fmt.Errorf("%w: at least one of spc or wl must be provided", ErrConfiguration)
	}

	out := &Spectra{description: opts.Description}

	// Spectra
	var m raw
	if opts.Spc != nil {
		var err error
		if m, err = opts.Spc.normalize(); err != nil {
			return nil, err
		}
	} else {
		m = raw{cols: len(opts.Wavelengths)}
	}

	// Wavelengths
	switch {
	case opts.Wavelengths != nil:
		if len(opts.Wavelengths) != m.cols {
			return nil, fmt.Errorf("%w: %d wavelengths provided for %d columns", ErrConfiguration, len(opts.Wavelengths), m.cols)
		}
		out.wl = append([]float64(nil), opts.Wavelengths...)
	case m.keys != nil:
		out.wl = m.keys
	default:
		out.warn(opts.Logger, WarnMissingWavelengths)
		out.wl = make([]float64, m.cols)
		for j := range out.wl {
			out.wl[j] = float64(j)
		}
	}
	if err := checkWavelengths(out.wl); err != nil {
		return nil, err
	}

	out.nspc = m.rows
	if m.rows > 0 && m.cols > 0 {
		out.spc = mat.NewDense(m.rows, m.cols, m.values)
	}

	// Metadata
	switch {
	case opts.Data != nil && opts.DataColumns != nil:
		return nil, fmt.Errorf("%w: only one of Data and DataColumns may be provided", ErrConfiguration)
	case opts.Data != nil:
		out.data = opts.Data.Copy()
	case opts.DataColumns != nil:
		data, err := frame.FromMap(opts.DataColumns)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
		}
		out.data = data
	default:
		out.data = frame.New(out.nspc)
	}

	// Labels
	if opts.Labels != nil {
		labels, err := opts.Labels.labels()
		if err != nil {
			return nil, err
		}
		out.labels = labels
	}

	if out.data.Len() != out.nspc {
		return nil, fmt.Errorf("%w: data must have the same number of instances (rows) as spc has (%d vs %d)", ErrConfiguration, out.data.Len(), out.nspc)
	}

	return out, nil
}

func checkWavelengths(wl []float64) error {
	seen := make(map[float64]struct{}, len(wl))
	for _, w := range wl {
		if math.IsNaN(w) {
			return fmt.Errorf("%w: wavelength is NaN", ErrConfiguration)
		}
		if _, exists := seen[w]; exists {
			return fmt.Errorf("%w: duplicate wavelength %v", ErrConfiguration, w)
		}
		seen[w] = struct{}{}
	}
	return nil
}

func (s *Spectra) warn(logger *log.Logger, w Warning) {
	s.warnings = append(s.warnings, w)
	if logger != nil {
		logger.Println(w)
	}
}

// Wavelengths returns the wavelength of every column, in column order.
func (s *Spectra) Wavelengths() []float64 {
	return append([]float64(nil), s.wl...)
}

// Shape returns the number of spectra, of wavelengths, and of metadata
// columns.
func (s *Spectra) Shape() (nspc, nwl, ndata int) {
	return s.nspc, len(s.wl), s.data.Width()
}

// NWavelengths returns the number of wavelength points.
func (s *Spectra) NWavelengths() int { return len(s.wl) }

// NSpectra returns the number of spectra.
func (s *Spectra) NSpectra() int { return s.nspc }

// Data returns a copy of the metadata.
func (s *Spectra) Data() *frame.Frame { return s.data.Copy() }

// Matrix returns a copy of the intensities, or nil if there are no spectra or
// no wavelengths.
func (s *Spectra) Matrix() *mat.Dense {
	if s.spc == nil {
		return nil
	}
	return mat.DenseCopyOf(s.spc)
}

// Row returns a copy of the i'th spectrum. It panics if i is out of range.
func (s *Spectra) Row(i int) []float64 {
	if i < 0 || i >= s.nspc {
		panic(fmt.Sprintf("spectra: row %d out of range [0, %d)", i, s.nspc))
	}
	if s.spc == nil {
		return []float64{}
	}
	return mat.Row(nil, i, s.spc)
}

// At returns the intensity of spectrum i at column j.
func (s *Spectra) At(i, j int) float64 {
	if s.spc == nil {
		panic(fmt.Sprintf("spectra: index (%d, %d) out of range for shape %s", i, j, s))
	}
	return s.spc.At(i, j)
}

func (s *Spectra) Labels() Labels { return s.labels }

func (s *Spectra) Description() string { return s.description }

// Warnings returns the diagnostics recorded while building s.
func (s *Spectra) Warnings() []Warning {
	return append([]Warning(nil), s.warnings...)
}

func (s *Spectra) String() string {
	r, c, d := s.Shape()
	return fmt.Sprintf("(%d, %d, %d)", r, c, d)
}

// values returns the matrix as a fresh row-major buffer.
func (s *Spectra) values() []float64 {
	out := make([]float64, 0, s.nspc*len(s.wl))
	for i := 0; i < s.nspc && s.spc != nil; i++ {
		out = append(out, s.spc.RawRowView(i)...)
	}
	return out
}

// derive builds a new Spectra from a matrix computed from s, keeping the
// wavelengths, metadata, labels and description of s.
func (s *Spectra) derive(values []float64) (*Spectra, error) {
	return New(Options{
		Spc:         packed{rows: s.nspc, cols: len(s.wl), values: values},
		Wavelengths: s.wl,
		Data:        s.data,
		Labels:      s.labels,
		Description: s.description,
	})
}
