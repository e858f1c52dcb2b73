// Package neuralnet re-exports the public surface of the library for
// easier access.
package neuralnet

import (
	"github.com/napina/neuralnet-examples/internal/activations"
	"github.com/napina/neuralnet-examples/internal/layer"
	"github.com/napina/neuralnet-examples/internal/net"
)

// Re-export common types for easier access
type (
	Network    = net.Network
	Config     = net.Config
	Dataset    = net.Dataset
	Monitor    = net.Monitor
	Layer      = layer.Layer
	Activation = activations.Activation
)

// Activations. ELU is the default when Config.Activation is nil.
var (
	Sigmoid  = activations.Sigmoid{}
	ReLU     = activations.ReLU{}
	Softplus = activations.Softplus{}
	ELU      = activations.ELU{}
)

// ActivationByName returns the activation for a lowercase variant name
// ("sigmoid", "relu", "softplus", "elu") or false if unknown.
func ActivationByName(name string) (Activation, bool) {
	act, ok := activations.Lookup[name]
	return act, ok
}

// New creates a randomly initialized two-layer network.
func New(cfg Config, monitors ...Monitor) *Network {
	return net.New(cfg, monitors...)
}

// LoadCSV loads a dataset from a CSV file.
func LoadCSV(filename string, targetCols []int, hasHeader bool) (*Dataset, error) {
	return net.LoadCSV(filename, targetCols, hasHeader)
}

// Monitors
func Console(interval int) net.ConsoleMonitor {
	return net.ConsoleMonitor{Interval: interval}
}

func CSVFile(filename string, append bool) *net.CSVMonitor {
	return net.NewCSVMonitor(filename, append)
}

func NewRecorder() *net.Recorder {
	return &net.Recorder{}
}
