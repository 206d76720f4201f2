package main

import (
	"flag"
	"log"
	"math/rand"

	"github.com/ColdsunBruce/dll"
	"github.com/gonum/floats"
)

var (
	iters = flag.Int("iters", 2000, "number of training iterations")
	alpha = flag.Float64("alpha", 0.01, "learning rate")
	seed  = flag.Int64("seed", 1, "random seed")
)

// genSeq returns one input sequence of random bits together with the target
// trajectory that echoes each step's input at the following step.
func genSeq(timeSteps, width int) ([][]float64, [][]float64) {
	input := dll.MakeTensor2(timeSteps, width)
	for t := 0; t < len(input); t++ {
		for j := 0; j < len(input[t]); j++ {
			input[t][j] = float64(rand.Intn(2))
		}
	}

	target := dll.MakeTensor2(timeSteps, width)
	for t := 1; t < len(target); t++ {
		copy(target[t], input[t-1])
	}
	return input, target
}

func main() {
	flag.Parse()
	rand.Seed(*seed)

	const (
		timeSteps = 8
		width     = 4
		batch     = 16
	)

	layer := dll.NewRecurrent(dll.RecurrentConfig{
		TimeSteps:      timeSteps,
		SequenceLength: width,
		HiddenUnits:    width,
		Activation:     dll.Sigmoid,
		Init:           dll.NewGaussian(0, 0.1, *seed),
	})
	log.Printf("%s, %d parameters", layer.ShortString(), layer.Parameters())

	ctx := layer.NewContext(batch)
	targets := dll.MakeTensor3(batch, timeSteps, width)

	for it := 0; it < *iters; it++ {
		for b := 0; b < batch; b++ {
			input, target := genSeq(timeSteps, width)
			for t := 0; t < timeSteps; t++ {
				copy(ctx.Input[b][t], input[t])
				copy(targets[b][t], target[t])
			}
		}

		layer.ForwardBatch(ctx.Output, ctx.Input)

		// Squared-error gradient with respect to the layer output.
		var loss float64
		for b := 0; b < batch; b++ {
			for t := 0; t < timeSteps; t++ {
				for i := 0; i < width; i++ {
					d := ctx.Output[b][t][i] - targets[b][t][i]
					ctx.Errors[b][t][i] = d
					loss += 0.5 * d * d
				}
			}
		}

		layer.ComputeGradients(ctx)
		floats.AddScaled(layer.W.Data, -*alpha/batch, ctx.WGrad.Data)
		floats.AddScaled(layer.U.Data, -*alpha/batch, ctx.UGrad.Data)

		if it%100 == 0 {
			log.Printf("iteration %d, loss %f", it, loss/batch)
		}
	}
}
