package spectra

import (
	"errors"
	"math"
	"testing"

	"github.com/carbocation/spectra/frame"
	"github.com/carbocation/spectra/internal/testutil"
)

func mustNew(t *testing.T, opts Options) *Spectra {
	t.Helper()

	s, err := New(opts)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestRbindStrict(t *testing.T) {
	a := mustNew(t, Options{
		Spc:         Matrix{{1, 2}},
		Wavelengths: []float64{500, 600},
		DataColumns: map[string]interface{}{"id": []int{1}},
		Labels:      LabelPair{"nm", "au"},
		Description: "first",
	})
	b := mustNew(t, Options{
		Spc:         Matrix{{3, 4}, {5, 6}},
		Wavelengths: []float64{500, 600},
		DataColumns: map[string]interface{}{"id": []int{2, 3}},
		Description: "second",
	})

	out, err := Rbind(JoinStrict, a, b)
	if err != nil {
		t.Fatal(err)
	}

	if out.String() != "(3, 2, 1)" {
		t.Fatalf("Expected shape (3, 2, 1), got %s", out)
	}
	for i, want := range [][]float64{{1, 2}, {3, 4}, {5, 6}} {
		testutil.RequireSliceNearlyEqual(t, out.Row(i), want, 0)
	}
	if out.Labels() != a.Labels() || out.Description() != "first" {
		t.Error("Expected the first input's labels and description")
	}
}

func TestRbindStrictErrors(t *testing.T) {
	a := mustNew(t, Options{Spc: Vector{1, 2}, Wavelengths: []float64{500, 600}})
	reordered := mustNew(t, Options{Spc: Vector{1, 2}, Wavelengths: []float64{600, 500}})
	withData := mustNew(t, Options{Spc: Vector{1, 2}, Wavelengths: []float64{500, 600}, DataColumns: map[string]interface{}{"x": []int{1}}})

	if _, err := Rbind(JoinStrict, a, reordered); !errors.Is(err, ErrConfiguration) {
		t.Errorf("Expected different wavelengths to fail, got %v", err)
	}
	if _, err := Rbind(JoinStrict, a, withData); !errors.Is(err, ErrConfiguration) {
		t.Errorf("Expected different data columns to fail, got %v", err)
	}

	// Relaxing only the metadata join lets the columns differ.
	if _, err := RbindWith(BindOptions{Join: JoinStrict, DataJoin: JoinOuter}, a, withData); err != nil {
		t.Errorf("Expected an outer data join to succeed, got %v", err)
	}
}

func TestRbindOuter(t *testing.T) {
	a := mustNew(t, Options{
		Spc:         Matrix{{1, 2}},
		Wavelengths: []float64{500, 600},
		DataColumns: map[string]interface{}{"id": []int{1}, "x": []float64{0.5}},
	})
	b := mustNew(t, Options{
		Spc:         Matrix{{3, 4}},
		Wavelengths: []float64{600, 700},
		DataColumns: map[string]interface{}{"id": []float64{2.5}, "y": []string{"q"}},
	})

	out, err := Rbind(JoinOuter, a, b)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, out.Wavelengths(), []float64{500, 600, 700}, 0)
	testutil.RequireSliceNearlyEqual(t, out.Row(0), []float64{1, 2, math.NaN()}, 0)
	testutil.RequireSliceNearlyEqual(t, out.Row(1), []float64{math.NaN(), 3, 4}, 0)

	data := out.Data()
	names := data.Names()
	if len(names) != 3 || names[0] != "id" || names[1] != "x" || names[2] != "y" {
		t.Fatalf("Expected columns [id x y], got %v", names)
	}

	id, _ := data.Field("id")
	if id.Kind() != frame.Float || id.Value(0) != 1.0 || id.Value(1) != 2.5 {
		t.Errorf("Expected id promoted to float, got %v %v %v", id.Kind(), id.Value(0), id.Value(1))
	}
	y, _ := data.Field("y")
	if !y.IsNull(0) || y.Value(1) != "q" {
		t.Errorf("Expected y to be null then q, got %v %v", y.Value(0), y.Value(1))
	}
}

func TestRbindInner(t *testing.T) {
	a := mustNew(t, Options{
		Spc:         Matrix{{1, 2, 3}},
		Wavelengths: []float64{700, 500, 600},
		DataColumns: map[string]interface{}{"id": []int{1}, "x": []float64{0.5}},
	})
	b := mustNew(t, Options{
		Spc:         Matrix{{4, 5}},
		Wavelengths: []float64{600, 700},
		DataColumns: map[string]interface{}{"id": []int{2}},
	})

	out, err := Rbind(JoinInner, a, b)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, out.Wavelengths(), []float64{700, 600}, 0)
	testutil.RequireSliceNearlyEqual(t, out.Row(0), []float64{1, 3}, 0)
	testutil.RequireSliceNearlyEqual(t, out.Row(1), []float64{5, 4}, 0)

	if names := out.Data().Names(); len(names) != 1 || names[0] != "id" {
		t.Errorf("Expected columns [id], got %v", names)
	}
}

func TestRbindMixedJoins(t *testing.T) {
	a := mustNew(t, Options{Spc: Vector{1, 2}, Wavelengths: []float64{1, 2}, DataColumns: map[string]interface{}{"a": []int{1}}})
	b := mustNew(t, Options{Spc: Vector{3}, Wavelengths: []float64{2}, DataColumns: map[string]interface{}{"b": []int{1}}})

	out, err := RbindWith(BindOptions{SpcJoin: JoinInner, DataJoin: JoinOuter}, a, b)
	if err != nil {
		t.Fatal(err)
	}
	if out.String() != "(2, 1, 2)" {
		t.Errorf("Expected (2, 1, 2), got %s", out)
	}
}

func TestRbindConfigurationErrors(t *testing.T) {
	a := mustNew(t, Options{Spc: Vector{1}, Wavelengths: []float64{1}})

	cases := []struct {
		name string
		opts BindOptions
		objs []*Spectra
	}{
		{"single", BindOptions{Join: JoinOuter}, []*Spectra{a}},
		{"none", BindOptions{Join: JoinOuter}, nil},
		{"bad join", BindOptions{Join: "left"}, []*Spectra{a, a}},
		{"bad data join", BindOptions{DataJoin: "cross"}, []*Spectra{a, a}},
		{"nil input", BindOptions{Join: JoinOuter}, []*Spectra{a, nil}},
	}

	for _, cs := range cases {
		if _, err := RbindWith(cs.opts, cs.objs...); !errors.Is(err, ErrConfiguration) {
			t.Errorf("%s: expected a configuration error, got %v", cs.name, err)
		}
	}
}

func TestRbindEmptyCollections(t *testing.T) {
	a := mustNew(t, Options{Wavelengths: []float64{1, 2}})
	b := mustNew(t, Options{Spc: Vector{5, 6}, Wavelengths: []float64{1, 2}})

	out, err := Rbind(JoinStrict, a, b)
	if err != nil {
		t.Fatal(err)
	}
	if out.String() != "(1, 2, 0)" {
		t.Errorf("Expected (1, 2, 0), got %s", out)
	}
}
