// Package activations provides the transfer functions used by the network.
package activations

import "math"

// Activation is a transfer function with its derivative.
//
// Derivative takes whatever value the variant's formula expects: Sigmoid,
// ReLU and ELU recover the slope from the function's own output, while
// Softplus expects the raw pre-activation input. A caller that keeps only
// post-activation values passes those for every variant.
type Activation interface {
	// Activate computes f(x).
	Activate(x float64) float64

	// Derivative computes f' following the variant's argument convention.
	Derivative(v float64) float64
}

// Default is the variant used when a network is built without an
// explicit choice.
var Default Activation = ELU{}

// Lookup maps a variant name to its implementation.
var Lookup = map[string]Activation{
	"sigmoid":  Sigmoid{},
	"relu":     ReLU{},
	"softplus": Softplus{},
	"elu":      ELU{},
}

// sigmoid computes the logistic function, shared by Sigmoid and Softplus.
func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// Sigmoid activation function.
type Sigmoid struct{}

// Activate computes 1 / (1 + e^-x)
func (Sigmoid) Activate(x float64) float64 {
	return sigmoid(x)
}

// Derivative computes y * (1 - y) given the output y = sigmoid(x).
func (Sigmoid) Derivative(y float64) float64 {
	return y * (1 - y)
}

// ReLU activation function.
type ReLU struct{}

// Activate computes max(0, x)
func (ReLU) Activate(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

// Derivative returns 1 if the output y > 0, else 0.
// The zero plateau at x <= 0 is the standard ReLU subgradient convention.
func (ReLU) Derivative(y float64) float64 {
	if y > 0 {
		return 1
	}
	return 0
}

// Softplus activation function.
type Softplus struct{}

// Activate computes ln(1 + e^x)
func (Softplus) Activate(x float64) float64 {
	return math.Log1p(math.Exp(x))
}

// Derivative computes sigmoid(x) from the raw pre-activation input, not
// the output. This is the one variant whose derivative is not expressed
// in terms of f(x).
func (Softplus) Derivative(x float64) float64 {
	return sigmoid(x)
}

// ELU activation function.
type ELU struct{}

// Activate computes x if x >= 0, else e^x - 1
func (ELU) Activate(x float64) float64 {
	if x >= 0 {
		return x
	}
	return math.Expm1(x)
}

// Derivative returns 1 if the output y >= 0, else y + 1.
// For x < 0 the output is e^x - 1, so e^x = y + 1.
func (ELU) Derivative(y float64) float64 {
	if y >= 0 {
		return 1
	}
	return y + 1
}
