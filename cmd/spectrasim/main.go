// spectrasim synthesizes two batches of spectra on partially overlapping
// wavelength grids, binds them, smooths the result and prints a summary of
// the intensity at every wavelength.
package main

import (
	"flag"
	"log"
	"math/rand"
	"os"

	"github.com/carbocation/spectra"
	_ "github.com/carbocation/spectra/compileinfoprint"
	"github.com/carbocation/spectra/plot"
	"github.com/carbocation/spectra/smooth"
)

type config struct {
	N         int
	NWl       int
	Start     float64
	Step      float64
	Shift     int
	Noise     float64
	Method    string
	Window    int
	PolyOrder int
	Cutoff    float64
	Join      string
	DataJoin  string
	Seed      int64
	Bins      int
	Verbose   bool
}

func main() {
	var cfg config

	flag.IntVar(&cfg.N, "n", 10, "Number of spectra per batch")
	flag.IntVar(&cfg.NWl, "nwl", 101, "Number of wavelengths per batch")
	flag.Float64Var(&cfg.Start, "start", 400, "First wavelength of the first batch")
	flag.Float64Var(&cfg.Step, "step", 2, "Wavelength spacing")
	flag.IntVar(&cfg.Shift, "shift", 5, "Number of steps by which the second batch's grid is shifted")
	flag.Float64Var(&cfg.Noise, "noise", 0.05, "Standard deviation of the additive noise")
	flag.StringVar(&cfg.Method, "method", string(smooth.SavGol), "Smoothing method: mean, median, savgol or lowpass. Empty to skip smoothing.")
	flag.IntVar(&cfg.Window, "window", 7, "Smoothing window, odd and at least 3")
	flag.IntVar(&cfg.PolyOrder, "polyorder", 2, "Polynomial order for savgol")
	flag.Float64Var(&cfg.Cutoff, "cutoff", 0.5, "Normalized cutoff for lowpass, in radians per sample")
	flag.StringVar(&cfg.Join, "join", string(spectra.JoinOuter), "How to align wavelengths when binding: strict, outer or inner")
	flag.StringVar(&cfg.DataJoin, "data_join", "", "How to align metadata columns when binding. Defaults to --join.")
	flag.Int64Var(&cfg.Seed, "seed", 1, "Random seed")
	flag.IntVar(&cfg.Bins, "bins", 20, "Number of histogram bins. 0 to skip the histogram.")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "Log construction warnings")
	flag.Parse()

	if cfg.N < 1 || cfg.NWl < 1 {
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		log.Fatalln(err)
	}
}

func run(cfg config) error {
	var logger *log.Logger
	if cfg.Verbose {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	first, err := simulateBatch(rng, cfg, "A", 0, logger)
	if err != nil {
		return err
	}
	second, err := simulateBatch(rng, cfg, "B", cfg.Shift, logger)
	if err != nil {
		return err
	}

	bound, err := spectra.RbindWith(spectra.BindOptions{
		Join:     spectra.Join(cfg.Join),
		DataJoin: spectra.Join(cfg.DataJoin),
	}, first, second)
	if err != nil {
		return err
	}
	log.Println("Bound", first, "and", second, "into", bound)

	if cfg.Method != "" {
		if err := bound.SmoothInPlace(spectra.SmoothOptions{
			Method:    smooth.Method(cfg.Method),
			Window:    cfg.Window,
			PolyOrder: cfg.PolyOrder,
			Cutoff:    cfg.Cutoff,
		}); err != nil {
			return err
		}
	}

	grid, err := plot.Build(bound, plot.Options{
		Rows:  spectra.ColumnName("batch"),
		Color: spectra.ColumnName("group"),
	})
	if err != nil {
		return err
	}
	for _, panel := range grid.Panels {
		log.Printf("Panel %s: %d spectra\n", panel.Row, len(panel.Chart.Series))
	}

	if err := printSummary(os.Stdout, bound); err != nil {
		return err
	}

	if cfg.Bins > 0 {
		return printHistogram(os.Stderr, bound, cfg.Bins)
	}

	return nil
}
