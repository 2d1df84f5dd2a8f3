package plot

import (
	"testing"

	"github.com/carbocation/spectra"
	"github.com/carbocation/spectra/frame"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

func fixture(t *testing.T) *spectra.Spectra {
	t.Helper()

	s, err := spectra.New(spectra.Options{
		Spc:         spectra.Matrix{{1, 2}, {3, 4}, {5, 6}, {7, 8}},
		Wavelengths: []float64{500, 600},
		DataColumns: map[string]interface{}{
			"dose":  []interface{}{10, 2, nil, 10},
			"batch": []string{"b", "a", "b", "a"},
		},
		Labels: spectra.LabelPair{"Wavelength", "Intensity"},
	})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestCategoriesNumericOrder(t *testing.T) {
	f, err := frame.FieldFromValues("dose", []interface{}{10, 2, nil, 10})
	if err != nil {
		t.Fatal(err)
	}

	of, levels := Categories(f)
	want := []string{"2", "10", NA}
	if len(levels) != len(want) {
		t.Fatalf("Expected %v, got %v", want, levels)
	}
	for i := range want {
		if levels[i] != want[i] {
			t.Errorf("Level %d: expected %s, got %s", i, want[i], levels[i])
		}
	}
	if of[2] != NA || of[0] != "10" {
		t.Errorf("Unexpected labels %v", of)
	}
}

func TestBuildDefaults(t *testing.T) {
	s := fixture(t)

	g, err := Build(s, Options{})
	if err != nil {
		t.Fatal(err)
	}

	if len(g.Panels) != 1 {
		t.Fatalf("Expected one panel, got %d", len(g.Panels))
	}
	p, ok := g.Panel(Dummy, Dummy)
	if !ok {
		t.Fatal("Expected a dummy panel")
	}
	if len(p.Chart.Series) != 4 {
		t.Errorf("Expected 4 series, got %d", len(p.Chart.Series))
	}
	if p.Chart.XAxis.Name != "Wavelength" || p.Chart.YAxis.Name != "Intensity" {
		t.Errorf("Expected axis names from labels, got %q %q", p.Chart.XAxis.Name, p.Chart.YAxis.Name)
	}
	if g.Colors[Dummy] != chart.DefaultColors[0] {
		t.Errorf("Expected the first default color, got %v", g.Colors[Dummy])
	}
}

func TestBuildFacets(t *testing.T) {
	s := fixture(t)

	g, err := Build(s, Options{
		Rows:    spectra.ColumnName("batch"),
		Columns: spectra.ColumnName("dose"),
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(g.Rows) != 2 || len(g.Columns) != 3 || len(g.Panels) != 6 {
		t.Fatalf("Expected a 2x3 grid, got %v x %v", g.Rows, g.Columns)
	}

	cases := []struct {
		row, col string
		series   int
	}{
		{"a", "2", 1},
		{"a", "10", 1},
		{"a", NA, 0},
		{"b", "10", 1},
		{"b", NA, 1},
		{"b", "2", 0},
	}
	for _, cs := range cases {
		p, ok := g.Panel(cs.row, cs.col)
		if !ok {
			t.Fatalf("Missing panel %s/%s", cs.row, cs.col)
		}
		if len(p.Chart.Series) != cs.series {
			t.Errorf("Panel %s/%s: expected %d series, got %d", cs.row, cs.col, cs.series, len(p.Chart.Series))
		}
	}
}

func TestBuildColors(t *testing.T) {
	s := fixture(t)
	red := drawing.ColorFromHex("ff0000")

	g, err := Build(s, Options{
		Color:   spectra.ColumnName("dose"),
		Palette: []drawing.Color{red},
	})
	if err != nil {
		t.Fatal(err)
	}

	if g.Colors["2"] != red {
		t.Errorf("Expected the first category to take the palette color, got %v", g.Colors["2"])
	}
	if g.Colors["10"] != Gray || g.Colors[NA] != Gray {
		t.Errorf("Expected categories beyond the palette to be gray")
	}

	p, _ := g.Panel(Dummy, Dummy)
	series, ok := p.Chart.Series[1].(chart.ContinuousSeries)
	if !ok {
		t.Fatalf("Expected a continuous series, got %T", p.Chart.Series[1])
	}
	if series.Style.StrokeColor != red {
		t.Errorf("Expected spectrum 1 (dose 2) to be red, got %v", series.Style.StrokeColor)
	}
}

func TestBuildErrors(t *testing.T) {
	s := fixture(t)

	if _, err := Build(s, Options{Rows: spectra.ColumnName("missing")}); err == nil {
		t.Error("Expected an unknown column to fail")
	}
	if _, err := Build(s, Options{Color: spectra.Floats{1, 2}}); err == nil {
		t.Error("Expected a short parameter to fail")
	}
}
