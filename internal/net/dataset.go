package net

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// Dataset holds paired training examples as flat sequences: example s
// occupies Inputs[s*InSize:(s+1)*InSize] and
// Targets[s*OutSize:(s+1)*OutSize].
type Dataset struct {
	Inputs  []float64
	Targets []float64
	InSize  int
	OutSize int
}

// Len returns the number of examples.
func (d *Dataset) Len() int {
	if d.InSize == 0 {
		return 0
	}
	return len(d.Inputs) / d.InSize
}

// Input returns the input values of example s.
func (d *Dataset) Input(s int) []float64 {
	return d.Inputs[s*d.InSize : (s+1)*d.InSize]
}

// Target returns the expected output values of example s.
func (d *Dataset) Target(s int) []float64 {
	return d.Targets[s*d.OutSize : (s+1)*d.OutSize]
}

// LoadCSV loads a dataset from a CSV file.
// targetCols specifies the indices of columns to be used as expected
// outputs, in the given order. All other columns are inputs, in file
// order. hasHeader skips the first line if true.
func LoadCSV(filename string, targetCols []int, hasHeader bool) (*Dataset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	startRow := 0
	if hasHeader {
		startRow = 1
	}
	if len(records) <= startRow {
		return nil, fmt.Errorf("csv file has no data rows")
	}

	numCols := len(records[startRow])
	isTargetCol := make(map[int]bool)
	for _, col := range targetCols {
		if col < 0 || col >= numCols {
			return nil, fmt.Errorf("target column %d out of range (file has %d columns)", col, numCols)
		}
		isTargetCol[col] = true
	}
	if len(isTargetCol) == 0 {
		return nil, fmt.Errorf("no target columns given")
	}

	ds := &Dataset{
		InSize:  numCols - len(isTargetCol),
		OutSize: len(isTargetCol),
	}
	if ds.InSize == 0 {
		return nil, fmt.Errorf("no input columns left after taking %d target columns", len(isTargetCol))
	}

	for i := startRow; i < len(records); i++ {
		record := records[i]
		if len(record) != numCols {
			return nil, fmt.Errorf("inconsistent number of columns at row %d", i)
		}

		for col, field := range record {
			if isTargetCol[col] {
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid value at row %d column %d: %w", i, col, err)
			}
			ds.Inputs = append(ds.Inputs, v)
		}
		for _, col := range targetCols {
			v, err := strconv.ParseFloat(record[col], 64)
			if err != nil {
				return nil, fmt.Errorf("invalid value at row %d column %d: %w", i, col, err)
			}
			ds.Targets = append(ds.Targets, v)
		}
	}

	return ds, nil
}
