package spectra

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Add returns s + other, element-wise.
func (s *Spectra) Add(other *Spectra) (*Spectra, error) {
	return s.elementwise(other, func(dst *mat.Dense, a, b mat.Matrix) { dst.Add(a, b) })
}

// Sub returns s - other, element-wise.
func (s *Spectra) Sub(other *Spectra) (*Spectra, error) {
	return s.elementwise(other, func(dst *mat.Dense, a, b mat.Matrix) { dst.Sub(a, b) })
}

// Mul returns s * other, element-wise.
func (s *Spectra) Mul(other *Spectra) (*Spectra, error) {
	return s.elementwise(other, func(dst *mat.Dense, a, b mat.Matrix) { dst.MulElem(a, b) })
}

// Div returns s / other, element-wise. Division by zero follows IEEE 754.
func (s *Spectra) Div(other *Spectra) (*Spectra, error) {
	return s.elementwise(other, func(dst *mat.Dense, a, b mat.Matrix) { dst.DivElem(a, b) })
}

// Apply returns a copy of s with fn applied to every intensity.
func (s *Spectra) Apply(fn func(float64) float64) (*Spectra, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: nil function", ErrConfiguration)
	}
	if s.spc == nil {
		return s.derive(s.values())
	}

	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 { return fn(v) }, s.spc)
	return s.derive(out.RawMatrix().Data)
}

// Scale returns a copy of s with every intensity multiplied by k.
func (s *Spectra) Scale(k float64) (*Spectra, error) {
	if s.spc == nil {
		return s.derive(s.values())
	}

	var out mat.Dense
	out.Scale(k, s.spc)
	return s.derive(out.RawMatrix().Data)
}

// Pow returns a copy of s with every intensity raised to the power p.
func (s *Spectra) Pow(p float64) (*Spectra, error) {
	return s.Apply(func(v float64) float64 { return math.Pow(v, p) })
}

func (s *Spectra) elementwise(other *Spectra, op func(dst *mat.Dense, a, b mat.Matrix)) (*Spectra, error) {
	if other == nil {
		return nil, fmt.Errorf("%w: nil operand", ErrConfiguration)
	}
	if !equalFloats(s.wl, other.wl) {
		return nil, fmt.Errorf("%w: operands have different wavelengths", ErrConfiguration)
	}
	if s.nspc != other.nspc {
		return nil, fmt.Errorf("%w: operands have different numbers of spectra (%d vs %d)", ErrConfiguration, s.nspc, other.nspc)
	}
	if s.spc == nil {
		return s.derive(s.values())
	}

	var out mat.Dense
	op(&out, s.spc, other.spc)
	return s.derive(out.RawMatrix().Data)
}
