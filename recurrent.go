package dll

import (
	"fmt"
	"time"

	"github.com/gonum/blas"
	"github.com/gonum/blas/blas64"
	"github.com/gonum/floats"
	"github.com/pkg/errors"
)

// ErrBackwardUnsupported is returned by BackwardBatch: propagation of the
// error signal to the previous layer is folded into ComputeGradients and not
// emitted separately.
var ErrBackwardUnsupported = errors.New("dll: recurrent layer does not propagate errors to the previous layer")

// RecurrentConfig configures a recurrent layer.
type RecurrentConfig struct {
	TimeSteps      int // T, positions per sequence
	SequenceLength int // S, input width per time step
	HiddenUnits    int // H

	Activation Activation  // nil means Identity
	Init       Initializer // nil means Gaussian(0, 1)
	Truncate   int         // BPTT depth; 0 means full (TimeSteps)
}

func (conf RecurrentConfig) IsValid() bool {
	return conf.TimeSteps >= 1 &&
		conf.SequenceLength >= 1 &&
		conf.HiddenUnits >= 1 &&
		conf.Truncate >= 0 &&
		conf.Truncate <= conf.TimeSteps
}

var _ Layer = (*Recurrent)(nil)

// Recurrent is a single recurrent layer with fixed shapes:
//
//	h[0] = f(U·x[0])
//	h[t] = f(U·x[t] + W·h[t-1])
//
// Shapes are fixed at construction and never resized. W and U are read-only
// during a forward or gradient pass; an external optimizer mutates them
// between calls.
type Recurrent struct {
	timeSteps int
	seqLen    int
	hidden    int

	activation Activation
	truncate   int

	W blas64.General // H x H, hidden-to-hidden
	U blas64.General // H x S, input-to-hidden

	bakW *blas64.General
	bakU *blas64.General
}

// NewRecurrent constructs a layer and fills W and U via the configured
// initializer, sized on the flattened input and output sizes.
func NewRecurrent(conf RecurrentConfig) *Recurrent {
	if !conf.IsValid() {
		panic(fmt.Sprintf("dll: invalid recurrent config: %+v", conf))
	}
	act := conf.Activation
	if act == nil {
		act = Identity
	}
	init := conf.Init
	if init == nil {
		init = NewGaussian(0, 1, time.Now().UnixNano())
	}
	truncate := conf.Truncate
	if truncate == 0 {
		truncate = conf.TimeSteps
	}

	l := &Recurrent{
		timeSteps:  conf.TimeSteps,
		seqLen:     conf.SequenceLength,
		hidden:     conf.HiddenUnits,
		activation: act,
		truncate:   truncate,
		W:          NewMatrix(conf.HiddenUnits, conf.HiddenUnits),
		U:          NewMatrix(conf.HiddenUnits, conf.SequenceLength),
	}
	init.Init(l.W, l.InputSize(), l.OutputSize())
	init.Init(l.U, l.InputSize(), l.OutputSize())
	return l
}

// InputSize returns the flattened input size, T*S.
func (l *Recurrent) InputSize() int {
	return l.timeSteps * l.seqLen
}

// OutputSize returns the flattened output size, T*H.
func (l *Recurrent) OutputSize() int {
	return l.timeSteps * l.hidden
}

// Parameters returns the number of trainable parameters, H*H + H*S.
func (l *Recurrent) Parameters() int {
	return l.hidden*l.hidden + l.hidden*l.seqLen
}

// ShortString returns a short description of the layer.
func (l *Recurrent) ShortString() string {
	if l.activation == Identity {
		return fmt.Sprintf("RNN: %dx%d -> %dx%d", l.timeSteps, l.seqLen, l.timeSteps, l.hidden)
	}
	return fmt.Sprintf("RNN: %dx%d -> %s -> %dx%d",
		l.timeSteps, l.seqLen, l.activation.Name(), l.timeSteps, l.hidden)
}

func (l *Recurrent) Traits() Traits {
	return Traits{Neural: true, Standard: true, SGDSupported: true}
}

// ForwardBatch computes the hidden-state trajectory of every sample in x into
// output. output is fully overwritten. The recurrence within one sample is
// strictly sequential; samples are independent of each other.
func (l *Recurrent) ForwardBatch(output, x [][][]float64) {
	if len(output) != len(x) {
		panic(fmt.Sprintf("dll: inconsistent batch size: %d outputs for %d inputs", len(output), len(x)))
	}

	for b := range output {
		for t := range output[b] {
			for i := range output[b][t] {
				output[b][t][i] = 0
			}
		}
	}

	pre := make([]float64, l.hidden)
	preVec := asVector(pre)

	// t == 0
	for b := range x {
		blas64.Gemv(blas.NoTrans, 1, l.U, asVector(x[b][0]), 0, preVec)
		l.activation.Apply(output[b][0], pre)
	}

	for b := range x {
		for t := 1; t < l.timeSteps; t++ {
			blas64.Gemv(blas.NoTrans, 1, l.U, asVector(x[b][t]), 0, preVec)
			blas64.Gemv(blas.NoTrans, 1, l.W, asVector(output[b][t-1]), 1, preVec)
			l.activation.Apply(output[b][t], pre)
		}
	}
}

// PrepareOneOutput returns zeroed storage for one output sample.
func (l *Recurrent) PrepareOneOutput() [][]float64 {
	return MakeTensor2(l.timeSteps, l.hidden)
}

// PrepareOutput returns zeroed storage for a batch of output samples.
func (l *Recurrent) PrepareOutput(samples int) [][][]float64 {
	return MakeTensor3(samples, l.timeSteps, l.hidden)
}

// AdaptErrors does nothing for this layer; the activation derivative is
// applied inside ComputeGradients.
func (l *Recurrent) AdaptErrors(ctx *SGDContext) {
}

// BackwardBatch reports that separate error propagation is unsupported.
// Callers stacking this layer after trainable layers must not rely on it.
func (l *Recurrent) BackwardBatch(output [][][]float64, ctx *SGDContext) error {
	return errors.WithStack(ErrBackwardUnsupported)
}

// ComputeGradients runs BPTT over every sample in the batch, summing
// contributions into ctx.WGrad and ctx.UGrad. Both accumulators are zeroed at
// entry. The walk starts at the last time step with
//
//	delta = errors[T-1] ⊙ f'(output[T-1])
//
// and for each step accumulates delta ⊗ output[step-1] into WGrad and
// delta ⊗ input[step-1] into UGrad before carrying delta one step back
// through Wᵀ and the activation derivative. The walk stops after
// min(Truncate, T) - 1 steps, so a single-step sample contributes nothing.
func (l *Recurrent) ComputeGradients(ctx *SGDContext) {
	zeroMatrix(ctx.WGrad)
	zeroMatrix(ctx.UGrad)

	delta := make([]float64, l.hidden)
	back := make([]float64, l.hidden)
	deltaVec := asVector(delta)
	backVec := asVector(back)

	for b := range ctx.Errors {
		step := l.timeSteps - 1
		lastStep := l.timeSteps - l.truncate
		if lastStep < 0 {
			lastStep = 0
		}

		l.activation.DerivOutput(delta, ctx.Output[b][step])
		floats.Mul(delta, ctx.Errors[b][step])

		for step > lastStep {
			blas64.Ger(1, deltaVec, asVector(ctx.Output[b][step-1]), ctx.WGrad)
			blas64.Ger(1, deltaVec, asVector(ctx.Input[b][step-1]), ctx.UGrad)

			blas64.Gemv(blas.Trans, 1, l.W, deltaVec, 0, backVec)
			l.activation.DerivOutput(delta, ctx.Output[b][step-1])
			floats.Mul(delta, back)

			step--
		}
	}
}

// BackupWeights snapshots W and U. Any previous snapshot is replaced.
func (l *Recurrent) BackupWeights() {
	w := cloneMatrix(l.W)
	u := cloneMatrix(l.U)
	l.bakW = &w
	l.bakU = &u
}

// RestoreWeights restores the last snapshot taken by BackupWeights.
func (l *Recurrent) RestoreWeights() {
	if l.bakW == nil || l.bakU == nil {
		panic("dll: RestoreWeights without a prior BackupWeights")
	}
	copy(l.W.Data, l.bakW.Data)
	copy(l.U.Data, l.bakU.Data)
}

// DynInit sizes the dynamic twin from this layer's static shapes. The twin's
// weights are freshly initialized, not copied.
func (l *Recurrent) DynInit(dyn *DynRecurrent) error {
	dyn.activation = l.activation
	dyn.truncate = l.truncate
	return dyn.InitLayer(l.timeSteps, l.seqLen, l.hidden)
}
