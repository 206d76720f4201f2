package dll

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestIdentity(t *testing.T) {
	v := []float64{-2, 0, 3.5}
	out := make([]float64, 3)
	Identity.Apply(out, v)
	if !floats.Equal(out, v) {
		t.Errorf("Apply: got %v, want %v", out, v)
	}

	deriv := make([]float64, 3)
	Identity.DerivOutput(deriv, out)
	if !floats.Equal(deriv, []float64{1, 1, 1}) {
		t.Errorf("DerivOutput: got %v, want all ones", deriv)
	}
}

func TestSigmoid(t *testing.T) {
	v := []float64{0, 2, -2}
	out := make([]float64, 3)
	Sigmoid.Apply(out, v)
	for i, x := range v {
		want := 1 / (1 + math.Exp(-x))
		if math.Abs(out[i]-want) > 1e-15 {
			t.Errorf("Apply(%f): got %f, want %f", x, out[i], want)
		}
	}

	deriv := make([]float64, 3)
	Sigmoid.DerivOutput(deriv, out)
	for i, s := range out {
		if math.Abs(deriv[i]-s*(1-s)) > 1e-15 {
			t.Errorf("DerivOutput(%f): got %f, want %f", s, deriv[i], s*(1-s))
		}
	}
}

func TestTanh(t *testing.T) {
	v := []float64{0, 1, -1.5}
	out := make([]float64, 3)
	Tanh.Apply(out, v)
	for i, x := range v {
		if math.Abs(out[i]-math.Tanh(x)) > 1e-15 {
			t.Errorf("Apply(%f): got %f, want %f", x, out[i], math.Tanh(x))
		}
	}

	deriv := make([]float64, 3)
	Tanh.DerivOutput(deriv, out)
	for i, s := range out {
		if math.Abs(deriv[i]-(1-s*s)) > 1e-15 {
			t.Errorf("DerivOutput(%f): got %f, want %f", s, deriv[i], 1-s*s)
		}
	}
}

func TestReLU(t *testing.T) {
	out := make([]float64, 4)
	ReLU.Apply(out, []float64{-1, 0, 0.5, 3})
	if !floats.Equal(out, []float64{0, 0, 0.5, 3}) {
		t.Errorf("Apply: got %v", out)
	}

	deriv := make([]float64, 4)
	ReLU.DerivOutput(deriv, out)
	if !floats.Equal(deriv, []float64{0, 0, 1, 1}) {
		t.Errorf("DerivOutput: got %v", deriv)
	}
}

func TestActivationNames(t *testing.T) {
	for act, want := range map[Activation]string{
		Identity: "identity",
		Sigmoid:  "sigmoid",
		Tanh:     "tanh",
		ReLU:     "relu",
	} {
		if got := act.Name(); got != want {
			t.Errorf("Name: got %q, want %q", got, want)
		}
	}
}
