package smooth

import (
	"fmt"
	"math"

	"github.com/BenLubar/memoize"
	"github.com/carbocation/pfx"
	"gonum.org/v1/gonum/mat"
)

// The coefficients depend only on the window geometry, so they are shared
// across every row of every spectrum smoothed with the same settings. The
// returned slices must not be modified.
var memoizedCoefficients = memoize.Memoize(coefficients)

// Coefficients returns the Savitzky-Golay filter for the given window,
// polynomial order and derivative order. Output i of the filter is
// sum_k c[k] * x[i-window/2+k].
func Coefficients(window, polyorder, deriv int) ([]float64, error) {
	if err := checkSavGol(window, polyorder, deriv); err != nil {
		return nil, err
	}

	c := memoizedCoefficients.(func(int, int, int) []float64)(window, polyorder, deriv)
	if c == nil {
		return nil, pfx.Err(fmt.Errorf("Could not solve the least squares system for window %d, polyorder %d", window, polyorder))
	}

	return append([]float64(nil), c...), nil
}

func checkSavGol(window, polyorder, deriv int) error {
	if err := checkWindow(window); err != nil {
		return err
	}
	if polyorder < 0 || polyorder >= window {
		return fmt.Errorf("%w (polyorder %d, window %d)", ErrPolyOrder, polyorder, window)
	}
	if deriv < 0 || deriv > polyorder {
		return fmt.Errorf("%w (deriv %d, polyorder %d)", ErrDeriv, deriv, polyorder)
	}
	return nil
}

// coefficients fits a polynomial of degree polyorder to positions -half..half
// by least squares. Row deriv of the pseudo-inverse, scaled by deriv!, gives
// the filter. Returns nil if the system cannot be solved.
func coefficients(window, polyorder, deriv int) []float64 {
	half := window / 2

	vander := mat.NewDense(window, polyorder+1, nil)
	for k := 0; k < window; k++ {
		for j := 0; j <= polyorder; j++ {
			vander.Set(k, j, math.Pow(float64(k-half), float64(j)))
		}
	}

	eye := mat.NewDiagDense(window, nil)
	for k := 0; k < window; k++ {
		eye.SetDiag(k, 1)
	}

	var pinv mat.Dense
	if err := pinv.Solve(vander, eye); err != nil {
		return nil
	}

	factorial := 1.0
	for i := 2; i <= deriv; i++ {
		factorial *= float64(i)
	}

	out := mat.Row(nil, deriv, &pinv)
	for k := range out {
		out[k] *= factorial
	}

	return out
}

// SavitzkyGolay smooths x (or estimates its deriv'th derivative) with a
// Savitzky-Golay filter. The series is padded with NaN, so the first and last
// window/2 outputs are NaN, as is any output whose window holds a NaN.
func SavitzkyGolay(x []float64, window, polyorder, deriv int) ([]float64, error) {
	c, err := Coefficients(window, polyorder, deriv)
	if err != nil {
		return nil, err
	}

	return rolling(x, window, func(w []float64) float64 {
		sum := 0.0
		for k, v := range w {
			sum += c[k] * v
		}
		return sum
	}), nil
}
