package dll

import (
	"math"
)

// An Activation is an elementwise nonlinearity applied to the pre-activation
// of each time step. DerivOutput evaluates the derivative at the activated
// output rather than the pre-activation, which restricts the set to
// activations whose derivative has an output-only form.
type Activation interface {
	// Apply writes f(v) into dst elementwise.
	Apply(dst, v []float64)
	// DerivOutput writes f'(x) into dst, given y = f(x).
	DerivOutput(dst, y []float64)
	Name() string
}

var (
	Identity Activation = identity{}
	Sigmoid  Activation = sigmoid{}
	Tanh     Activation = tanhAct{}
	ReLU     Activation = relu{}
)

type identity struct{}

func (identity) Apply(dst, v []float64) {
	copy(dst, v)
}

func (identity) DerivOutput(dst, y []float64) {
	for i := range dst {
		dst[i] = 1
	}
}

func (identity) Name() string { return "identity" }

type sigmoid struct{}

func (sigmoid) Apply(dst, v []float64) {
	for i, x := range v {
		dst[i] = 1.0 / (1 + math.Exp(-x))
	}
}

func (sigmoid) DerivOutput(dst, y []float64) {
	for i, s := range y {
		dst[i] = s * (1 - s)
	}
}

func (sigmoid) Name() string { return "sigmoid" }

type tanhAct struct{}

func (tanhAct) Apply(dst, v []float64) {
	for i, x := range v {
		dst[i] = math.Tanh(x)
	}
}

func (tanhAct) DerivOutput(dst, y []float64) {
	for i, s := range y {
		dst[i] = 1 - s*s
	}
}

func (tanhAct) Name() string { return "tanh" }

type relu struct{}

func (relu) Apply(dst, v []float64) {
	for i, x := range v {
		if x > 0 {
			dst[i] = x
		} else {
			dst[i] = 0
		}
	}
}

func (relu) DerivOutput(dst, y []float64) {
	for i, s := range y {
		if s > 0 {
			dst[i] = 1
		} else {
			dst[i] = 0
		}
	}
}

func (relu) Name() string { return "relu" }
