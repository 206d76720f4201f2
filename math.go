package dll

import (
	"github.com/gonum/blas/blas64"
)

func MakeTensor2(n, m int) [][]float64 {
	t := make([][]float64, n)
	for i := 0; i < len(t); i++ {
		t[i] = make([]float64, m)
	}
	return t
}

func MakeTensor3(n, m, p int) [][][]float64 {
	t := make([][][]float64, n)
	for i := 0; i < len(t); i++ {
		t[i] = MakeTensor2(m, p)
	}
	return t
}

// NewMatrix returns a zeroed dense row-major matrix.
func NewMatrix(rows, cols int) blas64.General {
	return blas64.General{
		Rows:   rows,
		Cols:   cols,
		Stride: cols,
		Data:   make([]float64, rows*cols),
	}
}

func cloneMatrix(m blas64.General) blas64.General {
	data := make([]float64, len(m.Data))
	copy(data, m.Data)
	return blas64.General{Rows: m.Rows, Cols: m.Cols, Stride: m.Stride, Data: data}
}

func zeroMatrix(m blas64.General) {
	for i := range m.Data {
		m.Data[i] = 0
	}
}

func asVector(v []float64) blas64.Vector {
	return blas64.Vector{Inc: 1, Data: v}
}
