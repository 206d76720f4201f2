package dll

import (
	"math"

	"github.com/gonum/blas/blas64"
	rng "github.com/leesper/go_rng"
)

// An Initializer fills a weight matrix in place. fanIn and fanOut are the
// layer's flattened input and output sizes, used only as scaling hints.
type Initializer interface {
	Init(m blas64.General, fanIn, fanOut int)
	Name() string
}

// Gaussian draws weights from a normal distribution.
type Gaussian struct {
	Mean   float64
	StdDev float64

	gen *rng.GaussianGenerator
}

func NewGaussian(mean, stddev float64, seed int64) *Gaussian {
	return &Gaussian{
		Mean:   mean,
		StdDev: stddev,
		gen:    rng.NewGaussianGenerator(seed),
	}
}

func (g *Gaussian) Init(m blas64.General, fanIn, fanOut int) {
	for i := range m.Data {
		m.Data[i] = g.gen.Gaussian(g.Mean, g.StdDev)
	}
}

func (g *Gaussian) Name() string { return "gaussian" }

// Xavier draws weights uniformly from [-limit, limit] with
// limit = sqrt(6 / (fanIn + fanOut)).
type Xavier struct {
	gen *rng.UniformGenerator
}

func NewXavier(seed int64) *Xavier {
	return &Xavier{gen: rng.NewUniformGenerator(seed)}
}

func (x *Xavier) Init(m blas64.General, fanIn, fanOut int) {
	limit := math.Sqrt(6 / float64(fanIn+fanOut))
	for i := range m.Data {
		m.Data[i] = x.gen.Float64Range(-limit, limit)
	}
}

func (x *Xavier) Name() string { return "xavier" }

// Zeros fills the matrix with zeros. Useful in tests and for layers whose
// weights are set explicitly after construction.
type Zeros struct{}

func (Zeros) Init(m blas64.General, fanIn, fanOut int) {
	zeroMatrix(m)
}

func (Zeros) Name() string { return "zeros" }
