// Package smooth implements filters that smooth a single spectrum. Every
// filter returns a slice of the same length as its input.
package smooth

import (
	"errors"
	"fmt"
	"math"

	"github.com/jfcg/butter"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

type Method string

const (
	Mean    Method = "mean"
	Median  Method = "median"
	SavGol  Method = "savgol"
	LowPass Method = "lowpass"
)

var (
	ErrUnknownMethod = errors.New("smooth: unknown method")
	ErrWindow        = errors.New("smooth: window must be a positive odd number")
	ErrPolyOrder     = errors.New("smooth: polyorder must be less than the window size")
	ErrDeriv         = errors.New("smooth: deriv must be between 0 and polyorder")
	ErrCutoff        = errors.New("smooth: invalid low-pass cutoff")
)

// Options parameterize the filters. Window applies to the rolling filters and
// Savitzky-Golay; PolyOrder and Deriv to Savitzky-Golay only; Cutoff is the
// normalized angular cutoff of the low-pass filter.
type Options struct {
	Window    int
	PolyOrder int
	Deriv     int
	Cutoff    float64
}

// Apply runs the named filter over x.
func Apply(method Method, x []float64, opts Options) ([]float64, error) {
	switch method {
	case Mean:
		return MovingMean(x, opts.Window)
	case Median:
		return MovingMedian(x, opts.Window)
	case SavGol:
		return SavitzkyGolay(x, opts.Window, opts.PolyOrder, opts.Deriv)
	case LowPass:
		return Butterworth(x, opts.Cutoff)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
}

func checkWindow(window int) error {
	if window < 1 || window%2 == 0 {
		return fmt.Errorf("%w (got %d)", ErrWindow, window)
	}
	return nil
}

// MovingMean is a centered rolling mean. The first and last window/2 outputs,
// and any output whose window holds a NaN, are NaN.
func MovingMean(x []float64, window int) ([]float64, error) {
	if err := checkWindow(window); err != nil {
		return nil, err
	}

	return rolling(x, window, func(w []float64) float64 {
		return stat.Mean(w, nil)
	}), nil
}

// MovingMedian is a centered rolling median with the same edge and NaN
// behavior as MovingMean.
func MovingMedian(x []float64, window int) ([]float64, error) {
	if err := checkWindow(window); err != nil {
		return nil, err
	}

	return rolling(x, window, func(w []float64) float64 {
		for _, v := range w {
			if math.IsNaN(v) {
				return math.NaN()
			}
		}

		m, err := stats.Median(stats.Float64Data(w))
		if err != nil {
			return math.NaN()
		}
		return m
	}), nil
}

func rolling(x []float64, window int, fn func([]float64) float64) []float64 {
	half := window / 2
	out := nanSlice(len(x))
	for i := half; i < len(x)-half; i++ {
		out[i] = fn(x[i-half : i+half+1])
	}
	return out
}

// Butterworth runs x through a first order Butterworth low-pass filter. The
// cutoff wc is in radians per sample and must lie in (0.0001, pi).
func Butterworth(x []float64, wc float64) ([]float64, error) {
	filt := butter.NewLowPass1(wc)
	if filt == nil {
		return nil, fmt.Errorf("%w: attempted wc=%f, but expect .0001 < wc && wc < 3.1415", ErrCutoff, wc)
	}

	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = filt.Next(v)
	}
	return out, nil
}

func nanSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
