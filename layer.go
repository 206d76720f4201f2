package dll

// Layer is the training contract shared by the static and dynamic recurrent
// layers. Batches are ordered collections of samples; one input sample is a
// TimeSteps x SequenceLength trajectory and one output sample is a
// TimeSteps x HiddenUnits trajectory.
type Layer interface {
	// ForwardBatch overwrites output with the hidden-state trajectories of
	// all samples in x.
	ForwardBatch(output, x [][][]float64)
	// BackwardBatch propagates the error signal to the previous layer's
	// output space.
	BackwardBatch(output [][][]float64, ctx *SGDContext) error
	// ComputeGradients accumulates BPTT gradients into ctx.WGrad and
	// ctx.UGrad.
	ComputeGradients(ctx *SGDContext)
	// AdaptErrors adapts ctx.Errors before backpropagation, for layers
	// combining an activation with a separate non-linearity.
	AdaptErrors(ctx *SGDContext)

	PrepareOneOutput() [][]float64
	PrepareOutput(samples int) [][][]float64

	InputSize() int
	OutputSize() int
	Parameters() int
	ShortString() string
	Traits() Traits
}

// Traits describes a layer's capabilities to the enclosing network.
type Traits struct {
	Neural    bool
	Dense     bool
	Conv      bool
	Deconv    bool
	Standard  bool
	RBM       bool
	Pooling   bool
	Unpooling bool
	Transform bool
	Dynamic   bool

	PretrainLast bool
	SGDSupported bool
}
