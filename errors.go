package spectra

import "errors"

var (
	// ErrConfiguration reports invalid arguments: bad construction inputs,
	// unknown join modes, wrong selector arity, row or column count
	// mismatches, and invalid smoothing windows.
	ErrConfiguration = errors.New("spectra: configuration error")

	// ErrType reports a parameter that cannot be resolved into a value per
	// spectrum.
	ErrType = errors.New("spectra: type error")
)

// Warning is a non-fatal diagnostic recorded while building a Spectra.
type Warning string

const WarnMissingWavelengths Warning = "Wavelength is not provided: using range 0:ncol(spc) instead."
