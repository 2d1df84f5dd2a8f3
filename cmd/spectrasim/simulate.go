package main

import (
	"log"
	"math"
	"math/rand"

	"github.com/carbocation/spectra"
)

// simulateBatch draws cfg.N spectra, each a Gaussian peak on a sloped
// baseline with additive noise. The grid starts shift steps after cfg.Start.
func simulateBatch(rng *rand.Rand, cfg config, batch string, shift int, logger *log.Logger) (*spectra.Spectra, error) {
	wl := make([]float64, cfg.NWl)
	for j := range wl {
		wl[j] = cfg.Start + float64(j+shift)*cfg.Step
	}
	center := cfg.Start + float64(cfg.NWl)*cfg.Step/2

	rows := make([][]float64, cfg.N)
	groups := make([]int, cfg.N)
	temps := make([]float64, cfg.N)
	for i := range rows {
		groups[i] = i % 3
		temps[i] = 20 + rng.Float64()*5

		height := 1 + float64(groups[i])*0.5
		mu := center + rng.NormFloat64()*cfg.Step*2
		sigma := cfg.Step * 5

		rows[i] = make([]float64, cfg.NWl)
		for j, w := range wl {
			peak := height * math.Exp(-(w-mu)*(w-mu)/(2*sigma*sigma))
			baseline := 0.1 + 0.0005*(w-cfg.Start)
			rows[i][j] = peak + baseline + rng.NormFloat64()*cfg.Noise
		}
	}

	batches := make([]string, cfg.N)
	for i := range batches {
		batches[i] = batch
	}

	columns := map[string]interface{}{
		"batch": batches,
		"group": groups,
	}
	if shift != 0 {
		// Only shifted batches record temperature.
		columns["temperature"] = temps
	}

	return spectra.New(spectra.Options{
		Spc:         spectra.Table{Wavelengths: wl, Rows: rows},
		DataColumns: columns,
		Labels:      spectra.LabelMap{"x": "Wavelength, nm", "y": "Intensity"},
		Description: "Simulated batch " + batch,
		Logger:      logger,
	})
}
