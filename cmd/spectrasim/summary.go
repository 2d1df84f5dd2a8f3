package main

import (
	"fmt"
	"io"
	"math"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/carbocation/runningvariance"
	"github.com/carbocation/spectra"
	"gonum.org/v1/gonum/stat"
)

// printSummary writes one tab-delimited line per wavelength with the count,
// mean and standard deviation of the non-NaN intensities.
func printSummary(w io.Writer, s *spectra.Spectra) error {
	if _, err := fmt.Fprintln(w, "wavelength\tn\tmean\tsd"); err != nil {
		return err
	}

	wl := s.Wavelengths()
	cols := make([]*runningvariance.RunningStat, len(wl))
	for j := range cols {
		cols[j] = runningvariance.NewRunningStat()
	}

	for i := 0; i < s.NSpectra(); i++ {
		for j, v := range s.Row(i) {
			if math.IsNaN(v) {
				continue
			}
			cols[j].Push(v)
		}
	}

	for j, rv := range cols {
		if _, err := fmt.Fprintf(w, "%.5g\t%d\t%.5g\t%.5g\n", wl[j], rv.N, rv.Mean(), rv.StandardDeviation()); err != nil {
			return err
		}
	}

	return nil
}

// printHistogram draws the distribution of every non-NaN intensity.
func printHistogram(w io.Writer, s *spectra.Spectra, bins int) error {
	values := make([]float64, 0, s.NSpectra()*s.NWavelengths())
	for i := 0; i < s.NSpectra(); i++ {
		for _, v := range s.Row(i) {
			if !math.IsNaN(v) {
				values = append(values, v)
			}
		}
	}
	if len(values) == 0 {
		return fmt.Errorf("No intensities to plot")
	}

	mean, sd := stat.MeanStdDev(values, nil)
	if _, err := fmt.Fprintf(w, "%d intensities, mean %.5g, sd %.5g\n", len(values), mean, sd); err != nil {
		return err
	}

	hist := histogram.Hist(bins, values)
	return histogram.Fprint(w, hist, histogram.Linear(40))
}
