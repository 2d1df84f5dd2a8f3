// Package plot lays out a Spectra as a grid of line charts. Rows and columns
// of the grid facet the spectra by a metadata value, and a third value picks
// the line color. Charts are built but never rendered; call Render on a
// panel's Chart to draw it.
package plot

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/carbocation/spectra"
	"github.com/carbocation/spectra/frame"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	// Dummy is the only category of a facet that was not requested.
	Dummy = "dummy"

	// NA is the category of null values. It sorts after every other category.
	NA = "NA"
)

// Gray colors categories beyond the end of the palette.
var Gray = drawing.ColorFromHex("808080")

type Options struct {
	Rows    spectra.Param
	Columns spectra.Param
	Color   spectra.Param

	// Palette defaults to chart.DefaultColors.
	Palette []drawing.Color

	Width  int
	Height int
}

type Panel struct {
	Row    string
	Column string
	Chart  chart.Chart
}

// Grid holds one panel per (row, column) category pair, in row-major order.
type Grid struct {
	Rows    []string
	Columns []string
	Panels  []Panel

	// Colors maps each color category to its line color.
	Colors map[string]drawing.Color
}

// Panel returns the panel for the given row and column categories.
func (g *Grid) Panel(row, column string) (Panel, bool) {
	for _, p := range g.Panels {
		if p.Row == row && p.Column == column {
			return p, true
		}
	}
	return Panel{}, false
}

// Build resolves the facet and color parameters against s and builds one
// chart per facet, with one series per spectrum.
func Build(s *spectra.Spectra, opts Options) (*Grid, error) {
	n := s.NSpectra()

	rowOf, rowLevels, err := facet(s, opts.Rows, n)
	if err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	colOf, colLevels, err := facet(s, opts.Columns, n)
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}
	colorOf, colorLevels, err := facet(s, opts.Color, n)
	if err != nil {
		return nil, fmt.Errorf("color: %w", err)
	}

	palette := opts.Palette
	if palette == nil {
		palette = chart.DefaultColors
	}
	colors := make(map[string]drawing.Color, len(colorLevels))
	for i, level := range colorLevels {
		if i < len(palette) {
			colors[level] = palette[i]
			continue
		}
		colors[level] = Gray
	}

	out := &Grid{
		Rows:    rowLevels,
		Columns: colLevels,
		Panels:  make([]Panel, 0, len(rowLevels)*len(colLevels)),
		Colors:  colors,
	}

	labels := s.Labels()
	wl := s.Wavelengths()
	for _, row := range rowLevels {
		for _, col := range colLevels {
			graph := chart.Chart{
				Title:  panelTitle(opts, row, col),
				Width:  opts.Width,
				Height: opts.Height,
				XAxis:  chart.XAxis{Name: labels.X.String},
				YAxis:  chart.YAxis{Name: labels.Y.String},
				Series: []chart.Series{},
			}

			for i := 0; i < n; i++ {
				if rowOf[i] != row || colOf[i] != col {
					continue
				}
				graph.Series = append(graph.Series, chart.ContinuousSeries{
					Name: strconv.Itoa(i),
					Style: chart.Style{
						StrokeColor: colors[colorOf[i]],
						StrokeWidth: 1,
					},
					XValues: wl,
					YValues: s.Row(i),
				})
			}

			out.Panels = append(out.Panels, Panel{Row: row, Column: col, Chart: graph})
		}
	}

	return out, nil
}

func panelTitle(opts Options, row, col string) string {
	switch {
	case opts.Rows != nil && opts.Columns != nil:
		return row + " / " + col
	case opts.Rows != nil:
		return row
	case opts.Columns != nil:
		return col
	}
	return ""
}

// facet returns the category of every spectrum and the sorted distinct
// categories. A nil parameter puts every spectrum in the Dummy category.
func facet(s *spectra.Spectra, p spectra.Param, n int) ([]string, []string, error) {
	if p == nil {
		of := make([]string, n)
		for i := range of {
			of[i] = Dummy
		}
		return of, []string{Dummy}, nil
	}

	f, err := s.Resolve(p)
	if err != nil {
		return nil, nil, err
	}

	of, levels := Categories(f)
	return of, levels, nil
}

// Categories labels every value of f and returns the labels along with the
// distinct labels in order. Numeric fields sort by value, others by text, and
// NA comes last.
func Categories(f *frame.Field) ([]string, []string) {
	type level struct {
		label string
		num   float64
	}

	of := make([]string, f.Len())
	seen := make(map[string]level)
	hasNA := false
	for i := range of {
		txt := f.Text(i)
		if !txt.Valid {
			of[i] = NA
			hasNA = true
			continue
		}

		of[i] = txt.String
		num := math.NaN()
		if v := f.Float(i); v.Valid {
			num = v.Float64
		}
		seen[txt.String] = level{label: txt.String, num: num}
	}

	levels := make([]level, 0, len(seen))
	for _, l := range seen {
		levels = append(levels, l)
	}

	numeric := f.Kind() == frame.Float || f.Kind() == frame.Int
	sort.Slice(levels, func(i, j int) bool {
		if numeric && levels[i].num != levels[j].num {
			return levels[i].num < levels[j].num
		}
		return levels[i].label < levels[j].label
	})

	out := make([]string, 0, len(levels)+1)
	for _, l := range levels {
		out = append(out, l.label)
	}
	if hasNA {
		out = append(out, NA)
	}

	return of, out
}
