package spectra

import (
	"errors"
	"testing"

	"github.com/carbocation/spectra/frame"
)

func resolveFixture(t *testing.T) *Spectra {
	t.Helper()

	s, err := New(Options{
		Spc:         Matrix{{1, 2}, {3, 4}, {5, 6}},
		Wavelengths: []float64{1, 2},
		DataColumns: map[string]interface{}{
			"group": []string{"a", "b", "a"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestResolve(t *testing.T) {
	s := resolveFixture(t)

	f, err := s.Resolve(ColumnName("group"))
	if err != nil {
		t.Fatal(err)
	}
	if f.Kind() != frame.String || f.Value(1) != "b" {
		t.Errorf("Expected the group column, got %v %v", f.Kind(), f.Value(1))
	}

	f, err = s.Resolve(Floats{0.1, 0.2, 0.3})
	if err != nil {
		t.Fatal(err)
	}
	if f.Kind() != frame.Float || f.Value(2) != 0.3 {
		t.Errorf("Expected floats, got %v %v", f.Kind(), f.Value(2))
	}

	f, err = s.Resolve(Values{1, nil, 3})
	if err != nil {
		t.Fatal(err)
	}
	if !f.IsNull(1) {
		t.Error("Expected a nil value to resolve to null")
	}

	f, err = s.Resolve(Aligned{Field: frame.NewBoolField("flag", []bool{true, false, true})})
	if err != nil {
		t.Fatal(err)
	}
	if f.Kind() != frame.Bool {
		t.Errorf("Expected a bool field, got %v", f.Kind())
	}
}

func TestResolveErrors(t *testing.T) {
	s := resolveFixture(t)

	cases := []struct {
		name string
		p    Param
	}{
		{"nil", nil},
		{"missing column", ColumnName("nope")},
		{"short floats", Floats{1, 2}},
		{"long values", Values{1, 2, 3, 4}},
		{"bad element", Values{1, struct{}{}, 3}},
		{"nil field", Aligned{}},
		{"short field", Aligned{Field: frame.NewIntField("x", []int64{1})}},
	}

	for _, cs := range cases {
		if _, err := s.Resolve(cs.p); !errors.Is(err, ErrType) {
			t.Errorf("%s: expected a type error, got %v", cs.name, err)
		}
	}
}
