// SPDX-License-Identifier: MIT

package csaps

import "golang.org/x/exp/constraints"

// Defaults.
const (
	// DefaultAxis selects the last axis of y.
	DefaultAxis = -1
)

const (
	panicAxisNegative     = "csaps: WithAxis: axis must be non-negative"
	panicGridAxisNegative = "csaps: grid option: axis must be non-negative"
)

// Option configures Make.
type Option func(*options)

// options is the resolved configuration of one Make call.
type options struct {
	weights []float64 // nil ⇒ unit weights
	smooth  *float64  // nil ⇒ automatic
	axis    int       // DefaultAxis ⇒ last axis
}

func gatherOptions(opts []Option) options {
	o := options{axis: DefaultAxis}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithWeights sets per-site weights (len(x) strictly positive values).
// The slice is copied.
func WithWeights[T constraints.Float](w []T) Option {
	cw := toFloat64(w)

	return func(o *options) { o.weights = cw }
}

// WithSmooth fixes the smoothing parameter p ∈ [0, 1] instead of selecting
// it automatically. Out-of-range values are reported by Make as ErrSmoothRange.
func WithSmooth[T constraints.Float](p T) Option {
	v := float64(p)

	return func(o *options) { o.smooth = &v }
}

// WithAxis selects the axis of y that runs along x.
// Panics on a negative axis; an axis beyond y's dimensions is reported by
// Make as ErrAxis.
func WithAxis(axis int) Option {
	if axis < 0 {
		panic(panicAxisNegative)
	}

	return func(o *options) { o.axis = axis }
}

// GridOption configures MakeGrid.
type GridOption func(*gridOptions)

// gridOptions holds per-axis settings keyed by axis index.
type gridOptions struct {
	weights map[int][]float64
	smooth  map[int]float64
}

func gatherGridOptions(opts []GridOption) gridOptions {
	o := gridOptions{weights: map[int][]float64{}, smooth: map[int]float64{}}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithAxisWeights sets the weights of one grid axis; other axes keep unit weights.
func WithAxisWeights[T constraints.Float](axis int, w []T) GridOption {
	if axis < 0 {
		panic(panicGridAxisNegative)
	}
	cw := toFloat64(w)

	return func(o *gridOptions) { o.weights[axis] = cw }
}

// WithAxisSmooth fixes the smoothing parameter of one grid axis; other axes
// select theirs automatically.
func WithAxisSmooth[T constraints.Float](axis int, p T) GridOption {
	if axis < 0 {
		panic(panicGridAxisNegative)
	}
	v := float64(p)

	return func(o *gridOptions) { o.smooth[axis] = v }
}

// resolve lays the per-axis settings out as the slices FitGrid expects.
// nil is returned for a setting no axis uses.
func (o gridOptions) resolve(nd int) ([][]float64, []*float64, error) {
	var weights [][]float64
	var smooth []*float64
	for ax, w := range o.weights {
		if ax >= nd {
			return nil, nil, invalidf(ErrAxis, "weights for axis %d of %d-d grid", ax, nd)
		}
		if weights == nil {
			weights = make([][]float64, nd)
		}
		weights[ax] = w
	}
	for ax, p := range o.smooth {
		if ax >= nd {
			return nil, nil, invalidf(ErrAxis, "smooth for axis %d of %d-d grid", ax, nd)
		}
		if smooth == nil {
			smooth = make([]*float64, nd)
		}
		v := p
		smooth[ax] = &v
	}

	return weights, smooth, nil
}

func toFloat64[T constraints.Float](v []T) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v))
	for i, e := range v {
		out[i] = float64(e)
	}

	return out
}

func fromFloat64[T constraints.Float](v []float64) []T {
	out := make([]T, len(v))
	for i, e := range v {
		out[i] = T(e)
	}

	return out
}
