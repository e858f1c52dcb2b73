package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/napina/neuralnet-examples/internal/net"
)

// Measures how robust training is to weight initialization: trains one
// independently seeded network per seed on the fixed curve dataset and
// reports the fraction of seeds whose error decreased, plus final-error
// statistics. Each network lives on its own goroutine; nothing is
// shared between them.
var curveInputs = []float64{0.0, 0.2, 0.8, 1.0}
var curveTargets = []float64{1.0, 0.8, 0.2, 0.0}

func main() {
	seeds := flag.Int("seeds", 100, "number of seeds to try")
	hidden := flag.Int("hidden", 8, "hidden layer width")
	epochs := flag.Int("epochs", 41, "training epochs per seed")
	learningRate := flag.Float64("lr", 0.2, "learning rate")
	flag.Parse()

	firstErr := make([]float64, *seeds)
	finalErr := make([]float64, *seeds)

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for seed := 0; seed < *seeds; seed++ {
		seed := seed
		g.Go(func() error {
			rec := &net.Recorder{}
			network := net.New(net.Config{
				Inputs:  1,
				Hidden:  *hidden,
				Outputs: 1,
				Src:     rand.NewSource(uint64(seed) + 1),
			}, rec)

			network.Train(curveInputs, curveTargets, len(curveInputs), *epochs, *learningRate)
			firstErr[seed] = rec.Errors[0]
			finalErr[seed] = rec.Errors[len(rec.Errors)-1]
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	improved := 0
	for seed := 0; seed < *seeds; seed++ {
		if finalErr[seed] < firstErr[seed] {
			improved++
		}
	}

	fmt.Printf("seeds: %d  epochs: %d  lr: %.3f\n", *seeds, *epochs, *learningRate)
	fmt.Printf("improved: %d/%d (%.1f%%)\n", improved, *seeds, 100*float64(improved)/float64(*seeds))
	fmt.Printf("final error: mean %.4f  stddev %.4f\n",
		stat.Mean(finalErr, nil), stat.StdDev(finalErr, nil))
}
