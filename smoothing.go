package spectra

import (
	"fmt"

	"github.com/carbocation/spectra/smooth"
	"gonum.org/v1/gonum/mat"
)

// SmoothOptions configure Smoothed and SmoothInPlace. Window must be odd, at
// least 3 and at most the number of wavelengths, whatever the method.
type SmoothOptions struct {
	Method    smooth.Method
	Window    int
	PolyOrder int
	Deriv     int

	// Cutoff is used by smooth.LowPass only.
	Cutoff float64
}

// Smoothed returns a copy of s with every spectrum filtered by opts.Method.
// Metadata, labels and description are carried over.
func (s *Spectra) Smoothed(opts SmoothOptions) (*Spectra, error) {
	values, err := s.smooth(opts)
	if err != nil {
		return nil, err
	}

	return s.derive(values)
}

// SmoothInPlace filters every spectrum of s. On error s is left unchanged.
func (s *Spectra) SmoothInPlace(opts SmoothOptions) error {
	values, err := s.smooth(opts)
	if err != nil {
		return err
	}

	if s.nspc > 0 {
		s.spc = mat.NewDense(s.nspc, len(s.wl), values)
	}
	return nil
}

func (s *Spectra) smooth(opts SmoothOptions) ([]float64, error) {
	if opts.Window%2 == 0 {
		return nil, fmt.Errorf("%w: window size must be an odd number (got %d)", ErrConfiguration, opts.Window)
	}
	if opts.Window < 3 {
		return nil, fmt.Errorf("%w: window size must be at least 3 (got %d)", ErrConfiguration, opts.Window)
	}
	if opts.Window > len(s.wl) {
		return nil, fmt.Errorf("%w: window size must not exceed the number of wavelengths (%d > %d)", ErrConfiguration, opts.Window, len(s.wl))
	}

	fopts := smooth.Options{
		Window:    opts.Window,
		PolyOrder: opts.PolyOrder,
		Deriv:     opts.Deriv,
		Cutoff:    opts.Cutoff,
	}

	// Settings are checked against an empty row so that a collection with no
	// spectra still rejects a bad method or polyorder.
	if _, err := smooth.Apply(opts.Method, []float64{}, fopts); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	out := make([]float64, 0, s.nspc*len(s.wl))
	for i := 0; i < s.nspc; i++ {
		row, err := smooth.Apply(opts.Method, s.spc.RawRowView(i), fopts)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
		}
		out = append(out, row...)
	}

	return out, nil
}
