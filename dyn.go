package dll

import (
	"github.com/pkg/errors"
)

var _ Layer = (*DynRecurrent)(nil)

// DynRecurrent is the runtime-shaped twin of Recurrent. It is constructed
// empty and sized exactly once, either by its caller through InitLayer or by
// a static layer through DynInit. Using an unsized layer is a programming
// error and panics.
type DynRecurrent struct {
	activation Activation
	init       Initializer
	truncate   int

	layer *Recurrent
}

// NewDynRecurrent returns an unsized dynamic recurrent layer. activation and
// init may be nil, defaulting as in RecurrentConfig.
func NewDynRecurrent(activation Activation, init Initializer) *DynRecurrent {
	return &DynRecurrent{activation: activation, init: init}
}

// InitLayer sizes the layer and initializes its weights.
func (d *DynRecurrent) InitLayer(timeSteps, seqLen, hidden int) error {
	if d.layer != nil {
		return errors.New("dll: dynamic recurrent layer already sized")
	}
	conf := RecurrentConfig{
		TimeSteps:      timeSteps,
		SequenceLength: seqLen,
		HiddenUnits:    hidden,
		Activation:     d.activation,
		Init:           d.init,
		Truncate:       d.truncate,
	}
	if !conf.IsValid() {
		return errors.Errorf("dll: invalid dynamic recurrent shape %dx%d -> %dx%d",
			timeSteps, seqLen, timeSteps, hidden)
	}
	d.layer = NewRecurrent(conf)
	return nil
}

func (d *DynRecurrent) base() *Recurrent {
	if d.layer == nil {
		panic("dll: dynamic recurrent layer used before InitLayer")
	}
	return d.layer
}

func (d *DynRecurrent) ForwardBatch(output, x [][][]float64) {
	d.base().ForwardBatch(output, x)
}

func (d *DynRecurrent) BackwardBatch(output [][][]float64, ctx *SGDContext) error {
	return d.base().BackwardBatch(output, ctx)
}

func (d *DynRecurrent) ComputeGradients(ctx *SGDContext) {
	d.base().ComputeGradients(ctx)
}

func (d *DynRecurrent) AdaptErrors(ctx *SGDContext) {
	d.base().AdaptErrors(ctx)
}

func (d *DynRecurrent) PrepareOneOutput() [][]float64 {
	return d.base().PrepareOneOutput()
}

func (d *DynRecurrent) PrepareOutput(samples int) [][][]float64 {
	return d.base().PrepareOutput(samples)
}

func (d *DynRecurrent) NewContext(batchSize int) *SGDContext {
	return d.base().NewContext(batchSize)
}

func (d *DynRecurrent) InputSize() int  { return d.base().InputSize() }
func (d *DynRecurrent) OutputSize() int { return d.base().OutputSize() }
func (d *DynRecurrent) Parameters() int { return d.base().Parameters() }

func (d *DynRecurrent) ShortString() string { return d.base().ShortString() }

func (d *DynRecurrent) Traits() Traits {
	t := Traits{Neural: true, Standard: true, SGDSupported: true}
	t.Dynamic = true
	return t
}

// Weights exposes the sized layer for the optimizer.
func (d *DynRecurrent) Weights() *Recurrent { return d.base() }
