package main

import (
	"flag"

	"golang.org/x/exp/rand"

	"github.com/napina/neuralnet-examples/internal/net"
)

// Curve-fitting demo: learn a descending 1-D curve from four fixed
// examples and print how well each one was reproduced.
var curveInputs = []float64{
	0.0,
	0.2,
	0.8,
	1.0,
}

var curveTargets = []float64{
	1.0,
	0.8,
	0.2,
	0.0,
}

func main() {
	hidden := flag.Int("hidden", 8, "hidden layer width")
	epochs := flag.Int("epochs", 50, "training epochs")
	learningRate := flag.Float64("lr", 0.2, "learning rate")
	seed := flag.Uint64("seed", 1, "weight initialization seed")
	flag.Parse()

	console := net.ConsoleMonitor{}
	network := net.New(net.Config{
		Inputs:  1,
		Hidden:  *hidden,
		Outputs: 1,
		Src:     rand.NewSource(*seed),
	}, console)

	// Learn
	network.Train(curveInputs, curveTargets, len(curveInputs), *epochs, *learningRate)

	// Check if learned; the monitor prints each input/output pair
	for i := range curveInputs {
		network.Evaluate(curveInputs[i : i+1])
	}
}
