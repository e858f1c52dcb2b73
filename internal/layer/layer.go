// Package layer implements the fully connected layer and its share of
// the backpropagation machinery.
package layer

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/napina/neuralnet-examples/internal/activations"
)

// Initial weights and biases are drawn uniformly from [initMin, initMax).
const (
	initMin = 0.5
	initMax = 0.9
)

// Layer is a fully connected layer: an affine transform followed by an
// elementwise transfer function.
//
// Buffer lengths on every method are the caller's contract and are not
// checked; passing wrongly sized slices is a programming error.
type Layer struct {
	// weights is row-major contiguous: the weight from input i to
	// output unit o is at weights[o*inSize+i].
	weights []float64
	biases  []float64
	inSize  int
	outSize int
	act     activations.Activation
}

// New creates a layer with every weight and bias drawn once from the
// uniform range [0.5, 0.9) using src.
func New(in, out int, act activations.Activation, src rand.Source) *Layer {
	if in <= 0 || out <= 0 {
		panic("layer: sizes must be positive")
	}

	dist := distuv.Uniform{Min: initMin, Max: initMax, Src: src}
	weights := make([]float64, in*out)
	for i := range weights {
		weights[i] = dist.Rand()
	}
	biases := make([]float64, out)
	for i := range biases {
		biases[i] = dist.Rand()
	}

	return &Layer{
		weights: weights,
		biases:  biases,
		inSize:  in,
		outSize: out,
		act:     act,
	}
}

// Propagate computes outputs[o] = f(bias_o + sum_i inputs[i]*w(o,i)).
// It reads the current weights and biases without mutating anything.
func (l *Layer) Propagate(inputs, outputs []float64) {
	for o := 0; o < l.outSize; o++ {
		row := l.weights[o*l.inSize : (o+1)*l.inSize]
		outputs[o] = l.act.Activate(l.biases[o] + floats.Dot(row, inputs))
	}
}

// ComputeOutputDeltas fills deltas with the loss gradient at the final
// layer, delta_o = (expected_o - output_o) * f'(output_o), and returns
// the example's summed squared error. The returned total is diagnostic
// only; it never feeds the weight update.
func (l *Layer) ComputeOutputDeltas(outputs, expected, deltas []float64) float64 {
	var total float64
	for o := 0; o < l.outSize; o++ {
		err := expected[o] - outputs[o]
		deltas[o] = err * l.act.Derivative(outputs[o])
		total += err * err
	}
	return total
}

// ComputeDeltas back-propagates next's deltas through next's weight
// matrix into this layer. Unit o of this layer feeds input slot o of
// every unit j in next, hence the transposed indexing. values holds
// this layer's activations from the forward pass. next must be the
// layer fed by this one (next.InSize() == l.OutSize()).
func (l *Layer) ComputeDeltas(next *Layer, nextDeltas, values, deltas []float64) {
	for o := 0; o < l.outSize; o++ {
		var err float64
		for j := 0; j < next.outSize; j++ {
			err += nextDeltas[j] * next.weights[j*next.inSize+o]
		}
		deltas[o] = err * l.act.Derivative(values[o])
	}
}

// UpdateWeights applies one gradient step in place:
// w(o,i) += learningRate*delta_o*input_i and bias_o += learningRate*delta_o.
// The deltas already carry the sign of (expected - output), so the step
// moves the weights to reduce the squared error. Not safe to call
// concurrently with any other method on the same layer.
func (l *Layer) UpdateWeights(inputs, deltas []float64, learningRate float64) {
	for o := 0; o < l.outSize; o++ {
		row := l.weights[o*l.inSize : (o+1)*l.inSize]
		change := deltas[o] * learningRate
		floats.AddScaled(row, change, inputs)
		l.biases[o] += change
	}
}

// InSize returns the number of inputs the layer accepts.
func (l *Layer) InSize() int {
	return l.inSize
}

// OutSize returns the number of units in the layer.
func (l *Layer) OutSize() int {
	return l.outSize
}

// Activation returns the transfer function used by the layer.
func (l *Layer) Activation() activations.Activation {
	return l.act
}

// Weights returns the flat row-major weights slice directly.
func (l *Layer) Weights() []float64 {
	return l.weights
}

// Biases returns the biases slice directly.
func (l *Layer) Biases() []float64 {
	return l.biases
}

// Weight returns the weight from input i to output unit o.
func (l *Layer) Weight(o, i int) float64 {
	return l.weights[o*l.inSize+i]
}

// SetWeight sets the weight from input i to output unit o.
func (l *Layer) SetWeight(o, i int, v float64) {
	l.weights[o*l.inSize+i] = v
}

// Bias returns the bias of output unit o.
func (l *Layer) Bias(o int) float64 {
	return l.biases[o]
}

// SetBias sets the bias of output unit o.
func (l *Layer) SetBias(o int, v float64) {
	l.biases[o] = v
}
