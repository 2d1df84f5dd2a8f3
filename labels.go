package spectra

import (
	"fmt"

	"gopkg.in/guregu/null.v3"
)

// Labels name the plot axes. A null label is unset.
type Labels struct {
	X null.String
	Y null.String
}

// LabelInput is one of Labels, LabelMap or LabelPair.
type LabelInput interface {
	labels() (Labels, error)
}

// LabelMap must hold exactly the keys "x" and "y".
type LabelMap map[string]string

// LabelPair must hold exactly two labels: x, then y.
type LabelPair []string

func (l Labels) labels() (Labels, error) { return l, nil }

func (m LabelMap) labels() (Labels, error) {
	x, okX := m["x"]
	y, okY := m["y"]
	if len(m) != 2 || !okX || !okY {
		return Labels{}, fmt.Errorf("%w: incorrect labels, expected exactly the keys x and y", ErrConfiguration)
	}

	return Labels{X: null.StringFrom(x), Y: null.StringFrom(y)}, nil
}

func (p LabelPair) labels() (Labels, error) {
	if len(p) != 2 {
		return Labels{}, fmt.Errorf("%w: incorrect labels, expected 2 but got %d", ErrConfiguration, len(p))
	}

	return Labels{X: null.StringFrom(p[0]), Y: null.StringFrom(p[1])}, nil
}
