package net

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Monitor observes training and evaluation. It is purely diagnostic;
// nothing a monitor does feeds back into the weights. Slices passed to
// SampleEvaluated are the network's reusable buffers and must be copied
// if retained.
type Monitor interface {
	TrainBegin(n *Network)
	TrainEnd(n *Network)
	EpochDone(epoch int, totalError float64)
	SampleEvaluated(inputs, outputs []float64)
}

// BaseMonitor provides default empty implementations for Monitor.
type BaseMonitor struct{}

func (BaseMonitor) TrainBegin(n *Network)                     {}
func (BaseMonitor) TrainEnd(n *Network)                       {}
func (BaseMonitor) EpochDone(epoch int, totalError float64)   {}
func (BaseMonitor) SampleEvaluated(inputs, outputs []float64) {}

// ConsoleMonitor prints training progress and evaluations to stdout.
type ConsoleMonitor struct {
	BaseMonitor

	// Interval prints every Interval-th epoch; values below 2 print
	// every epoch.
	Interval int
}

func (c ConsoleMonitor) EpochDone(epoch int, totalError float64) {
	if c.Interval > 1 && epoch%c.Interval != 0 {
		return
	}
	fmt.Printf("epoch: %d  error: %.3f\n", epoch, totalError)
}

func (c ConsoleMonitor) SampleEvaluated(inputs, outputs []float64) {
	fmt.Printf("input %s  outputs %s\n", formatVals(inputs), formatVals(outputs))
}

func formatVals(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatFloat(v, 'f', 3, 64)
	}
	return strings.Join(parts, " ")
}

// Recorder keeps the per-epoch error totals in memory.
type Recorder struct {
	BaseMonitor
	Errors []float64
}

func (r *Recorder) EpochDone(epoch int, totalError float64) {
	r.Errors = append(r.Errors, totalError)
}

// CSVMonitor logs per-epoch error totals to a CSV file.
type CSVMonitor struct {
	BaseMonitor
	Filename string
	Append   bool

	file   *os.File
	writer *csv.Writer
	start  time.Time
}

// NewCSVMonitor creates a new CSVMonitor.
func NewCSVMonitor(filename string, append bool) *CSVMonitor {
	return &CSVMonitor{
		Filename: filename,
		Append:   append,
	}
}

func (c *CSVMonitor) TrainBegin(n *Network) {
	mode := os.O_CREATE | os.O_WRONLY
	if c.Append {
		mode |= os.O_APPEND
	} else {
		mode |= os.O_TRUNC
	}

	file, err := os.OpenFile(c.Filename, mode, 0644)
	if err != nil {
		fmt.Printf("csv monitor: open %s: %v\n", c.Filename, err)
		return
	}
	c.file = file
	c.writer = csv.NewWriter(file)
	c.start = time.Now()

	// The header goes in unless appending to an earlier run
	info, err := file.Stat()
	if err == nil && (info.Size() == 0 || !c.Append) {
		c.writer.Write([]string{"epoch", "error", "time_seconds"})
		c.writer.Flush()
	}
}

func (c *CSVMonitor) EpochDone(epoch int, totalError float64) {
	if c.writer == nil {
		return
	}

	elapsed := time.Since(c.start).Seconds()
	record := []string{
		strconv.Itoa(epoch),
		fmt.Sprintf("%.6f", totalError),
		fmt.Sprintf("%.2f", elapsed),
	}

	if err := c.writer.Write(record); err != nil {
		fmt.Printf("csv monitor: write record for epoch %d: %v\n", epoch, err)
	}
	c.writer.Flush()
}

func (c *CSVMonitor) TrainEnd(n *Network) {
	if c.file != nil {
		c.writer.Flush()
		c.file.Close()
		c.file = nil
		c.writer = nil
	}
}
