// Package net composes two fully connected layers into a trainable
// curve-fitting network.
package net

import (
	"time"

	"golang.org/x/exp/rand"

	"github.com/napina/neuralnet-examples/internal/activations"
	"github.com/napina/neuralnet-examples/internal/layer"
)

// Config describes a two-layer network.
type Config struct {
	Inputs  int
	Hidden  int
	Outputs int

	// Activation applies uniformly to every unit of both layers.
	// nil selects the default (ELU).
	Activation activations.Activation

	// Src drives weight and bias initialization, one draw per value.
	// nil selects a time-seeded source; pass a fixed seed for
	// reproducible runs.
	Src rand.Source
}

// Network is a two-layer fully connected network: a hidden layer of
// Hidden units followed by an output layer of Outputs units.
//
// A Network is not safe for concurrent use. Train mutates layer weights
// and both Train and Evaluate share the scratch buffers allocated at
// construction, so callers must serialize access.
type Network struct {
	hidden *layer.Layer
	output *layer.Layer

	// Scratch for activations and deltas, sized once at construction
	// and reused by every call. Never retained beyond a call.
	hiddenVals   []float64
	hiddenDeltas []float64
	outputVals   []float64
	outputDeltas []float64

	monitors []Monitor
}

// New creates a randomly initialized network. It panics if any
// dimension in cfg is not positive.
func New(cfg Config, monitors ...Monitor) *Network {
	if cfg.Inputs <= 0 || cfg.Hidden <= 0 || cfg.Outputs <= 0 {
		panic("net: layer sizes must be positive")
	}

	act := cfg.Activation
	if act == nil {
		act = activations.Default
	}
	src := cfg.Src
	if src == nil {
		src = rand.NewSource(uint64(time.Now().UnixNano()))
	}

	return &Network{
		hidden:       layer.New(cfg.Inputs, cfg.Hidden, act, src),
		output:       layer.New(cfg.Hidden, cfg.Outputs, act, src),
		hiddenVals:   make([]float64, cfg.Hidden),
		hiddenDeltas: make([]float64, cfg.Hidden),
		outputVals:   make([]float64, cfg.Outputs),
		outputDeltas: make([]float64, cfg.Outputs),
		monitors:     monitors,
	}
}

// Evaluate runs one forward pass and returns the outputs. The returned
// slice is the network's reusable output buffer; callers that keep the
// values must copy them before the next call. Monitors observe the
// input/output pair. Evaluate never mutates weights, so with no
// intervening Train call repeated evaluations of the same input return
// identical values.
func (n *Network) Evaluate(inputs []float64) []float64 {
	n.hidden.Propagate(inputs, n.hiddenVals)
	n.output.Propagate(n.hiddenVals, n.outputVals)

	for _, m := range n.monitors {
		m.SampleEvaluated(inputs, n.outputVals)
	}
	return n.outputVals
}

// Train runs epochs epochs of per-example gradient descent over the
// examples stored flat in inputs and targets (samples examples of
// Inputs and Outputs values each, concatenated example by example).
//
// Each epoch visits every example once in table order. Per example the
// forward pass, the delta computation and the error total all use
// values computed before either layer is updated; the output layer is
// then updated with the hidden activations and output deltas, and the
// hidden layer with the raw inputs and hidden deltas. The per-epoch
// total of summed squared errors is reported to the monitors and has
// no effect on the updates. There is no convergence check: exactly
// epochs epochs run regardless of the error trend.
func (n *Network) Train(inputs, targets []float64, samples, epochs int, learningRate float64) {
	inSize := n.hidden.InSize()
	outSize := n.output.OutSize()

	for _, m := range n.monitors {
		m.TrainBegin(n)
	}

	for epoch := 0; epoch < epochs; epoch++ {
		var totalErr float64

		for s := 0; s < samples; s++ {
			in := inputs[s*inSize : (s+1)*inSize]
			want := targets[s*outSize : (s+1)*outSize]

			n.hidden.Propagate(in, n.hiddenVals)
			n.output.Propagate(n.hiddenVals, n.outputVals)

			totalErr += n.output.ComputeOutputDeltas(n.outputVals, want, n.outputDeltas)
			n.hidden.ComputeDeltas(n.output, n.outputDeltas, n.hiddenVals, n.hiddenDeltas)

			n.output.UpdateWeights(n.hiddenVals, n.outputDeltas, learningRate)
			n.hidden.UpdateWeights(in, n.hiddenDeltas, learningRate)
		}

		for _, m := range n.monitors {
			m.EpochDone(epoch, totalErr)
		}
	}

	for _, m := range n.monitors {
		m.TrainEnd(n)
	}
}

// Fit trains on a Dataset; see Train.
func (n *Network) Fit(ds *Dataset, epochs int, learningRate float64) {
	n.Train(ds.Inputs, ds.Targets, ds.Len(), epochs, learningRate)
}

// Hidden returns the hidden layer.
func (n *Network) Hidden() *layer.Layer {
	return n.hidden
}

// Output returns the output layer.
func (n *Network) Output() *layer.Layer {
	return n.output
}
