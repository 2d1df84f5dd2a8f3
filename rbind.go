package spectra

import (
	"fmt"
	"math"

	"github.com/carbocation/spectra/frame"
)

// Join is a column alignment strategy for Rbind.
type Join string

const (
	// JoinStrict requires every input to have the same columns in the same
	// order.
	JoinStrict Join = "strict"
	// JoinOuter keeps the union of columns, filling gaps with NaN or null.
	JoinOuter Join = "outer"
	// JoinInner keeps only the columns present in every input.
	JoinInner Join = "inner"
)

// BindOptions set the join for the spectra matrix and the metadata
// independently. An empty SpcJoin or DataJoin falls back to Join, and an empty
// Join means JoinStrict.
type BindOptions struct {
	Join     Join
	SpcJoin  Join
	DataJoin Join
}

// Rbind stacks spectra row-wise, aligning both the wavelengths and the
// metadata columns with join.
func Rbind(join Join, objs ...*Spectra) (*Spectra, error) {
	return RbindWith(BindOptions{Join: join}, objs...)
}

// RbindWith stacks spectra row-wise. Rows keep the order of their inputs, and
// the inputs keep the order given. The labels and description of the first
// input are carried over.
func RbindWith(opts BindOptions, objs ...*Spectra) (*Spectra, error) {
	join := opts.Join
	if join == "" {
		join = JoinStrict
	}
	spcJoin, dataJoin := opts.SpcJoin, opts.DataJoin
	if spcJoin == "" {
		spcJoin = join
	}
	if dataJoin == "" {
		dataJoin = join
	}

	for _, j := range []Join{join, spcJoin, dataJoin} {
		if j != JoinStrict && j != JoinOuter && j != JoinInner {
			return nil, fmt.Errorf("%w: incorrect join strategy %q", ErrConfiguration, j)
		}
	}

	if len(objs) <= 1 {
		return nil, fmt.Errorf("%w: no data to bind", ErrConfiguration)
	}
	for i, obj := range objs {
		if obj == nil {
			return nil, fmt.Errorf("%w: spectra %d is nil", ErrConfiguration, i)
		}
	}

	if spcJoin == JoinStrict {
		for _, obj := range objs[1:] {
			if !equalFloats(obj.wl, objs[0].wl) {
				return nil, fmt.Errorf("%w: strict join is not possible, spectra have different wavelengths", ErrConfiguration)
			}
		}
		spcJoin = JoinOuter
	}

	if dataJoin == JoinStrict {
		for _, obj := range objs[1:] {
			if !equalStrings(obj.data.Names(), objs[0].data.Names()) {
				return nil, fmt.Errorf("%w: strict join is not possible, data have different columns", ErrConfiguration)
			}
		}
		dataJoin = JoinOuter
	}

	wl := joinWavelengths(objs, spcJoin == JoinInner)

	nspc := 0
	frames := make([]*frame.Frame, len(objs))
	for i, obj := range objs {
		nspc += obj.nspc
		frames[i] = obj.data
	}

	values := make([]float64, 0, nspc*len(wl))
	for _, obj := range objs {
		pos := make(map[float64]int, len(obj.wl))
		for j, w := range obj.wl {
			pos[w] = j
		}

		for i := 0; i < obj.nspc; i++ {
			for _, w := range wl {
				j, ok := pos[w]
				if !ok {
					values = append(values, math.NaN())
					continue
				}
				values = append(values, obj.spc.At(i, j))
			}
		}
	}

	return New(Options{
		Spc:         packed{rows: nspc, cols: len(wl), values: values},
		Wavelengths: wl,
		Data:        frame.Concat(frames, dataJoin == JoinInner),
		Labels:      objs[0].labels,
		Description: objs[0].description,
	})
}

// joinWavelengths returns the wavelengths shared by every input (inner), in
// the order of the first input, or the union of all wavelengths in order of
// first appearance.
func joinWavelengths(objs []*Spectra, inner bool) []float64 {
	out := make([]float64, 0, len(objs[0].wl))

	if inner {
		counts := make(map[float64]int)
		for _, obj := range objs {
			for _, w := range obj.wl {
				counts[w]++
			}
		}
		for _, w := range objs[0].wl {
			if counts[w] == len(objs) {
				out = append(out, w)
			}
		}
		return out
	}

	seen := make(map[float64]struct{})
	for _, obj := range objs {
		for _, w := range obj.wl {
			if _, exists := seen[w]; exists {
				continue
			}
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}
	return out
}

func equalFloats(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
