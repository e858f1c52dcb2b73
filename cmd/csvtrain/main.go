package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"golang.org/x/exp/rand"

	"github.com/napina/neuralnet-examples/internal/activations"
	"github.com/napina/neuralnet-examples/internal/net"
)

// Trains a network on a CSV file of examples and reports per-epoch
// error, optionally mirroring it to a CSV log.
func main() {
	dataFile := flag.String("data", "", "path to training data CSV")
	targetList := flag.String("targets", "", "comma-separated target column indices (default: last column)")
	header := flag.Bool("header", false, "data file has a header row")
	hidden := flag.Int("hidden", 8, "hidden layer width")
	epochs := flag.Int("epochs", 50, "training epochs")
	learningRate := flag.Float64("lr", 0.2, "learning rate")
	actName := flag.String("activation", "elu", "transfer function: sigmoid, relu, softplus or elu")
	seed := flag.Uint64("seed", 1, "weight initialization seed")
	logFile := flag.String("log", "", "optional CSV file for per-epoch error")
	interval := flag.Int("interval", 1, "print every N-th epoch")
	flag.Parse()

	if *dataFile == "" {
		log.Fatal("missing -data file")
	}

	act, ok := activations.Lookup[*actName]
	if !ok {
		log.Fatalf("unknown activation %q", *actName)
	}

	targetCols, err := parseCols(*targetList)
	if err != nil {
		log.Fatalf("bad -targets: %v", err)
	}

	ds, err := loadDataset(*dataFile, targetCols, *header)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("loaded %d examples (%d inputs, %d outputs)\n", ds.Len(), ds.InSize, ds.OutSize)

	monitors := []net.Monitor{net.ConsoleMonitor{Interval: *interval}}
	if *logFile != "" {
		monitors = append(monitors, net.NewCSVMonitor(*logFile, false))
	}

	network := net.New(net.Config{
		Inputs:     ds.InSize,
		Hidden:     *hidden,
		Outputs:    ds.OutSize,
		Activation: act,
		Src:        rand.NewSource(*seed),
	}, monitors...)

	network.Fit(ds, *epochs, *learningRate)

	for s := 0; s < ds.Len(); s++ {
		network.Evaluate(ds.Input(s))
	}
}

// loadDataset defaults to the last column as the single target when no
// column list was given.
func loadDataset(filename string, targetCols []int, header bool) (*net.Dataset, error) {
	if targetCols != nil {
		return net.LoadCSV(filename, targetCols, header)
	}

	probe, err := net.LoadCSV(filename, []int{0}, header)
	if err != nil {
		return nil, err
	}
	return net.LoadCSV(filename, []int{probe.InSize}, header)
}

func parseCols(list string) ([]int, error) {
	if list == "" {
		return nil, nil
	}
	parts := strings.Split(list, ",")
	cols := make([]int, 0, len(parts))
	for _, p := range parts {
		col, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}
	return cols, nil
}
