package dll

import (
	"github.com/gonum/blas/blas64"
)

// SGDContext is the per-batch storage a training loop threads through a
// layer's backward pass. The trajectories are owned by the caller; the layer
// reads them and mutates only the two gradient accumulators.
type SGDContext struct {
	Input  [][][]float64 // B x T x S, as fed to ForwardBatch
	Output [][][]float64 // B x T x H, as produced by ForwardBatch
	Errors [][][]float64 // B x T x H, upstream gradient w.r.t. Output

	WGrad blas64.General // H x H
	UGrad blas64.General // H x S
}

// NewContext allocates consistently shaped per-batch storage for l.
func (l *Recurrent) NewContext(batchSize int) *SGDContext {
	return &SGDContext{
		Input:  MakeTensor3(batchSize, l.timeSteps, l.seqLen),
		Output: MakeTensor3(batchSize, l.timeSteps, l.hidden),
		Errors: MakeTensor3(batchSize, l.timeSteps, l.hidden),
		WGrad:  NewMatrix(l.hidden, l.hidden),
		UGrad:  NewMatrix(l.hidden, l.seqLen),
	}
}
