// Package layer provides unit tests for the fully connected layer.
package layer

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/napina/neuralnet-examples/internal/activations"
)

func newTestLayer(in, out int, act activations.Activation, seed uint64) *Layer {
	return New(in, out, act, rand.NewSource(seed))
}

// TestNewShapes tests the shape invariants at construction.
func TestNewShapes(t *testing.T) {
	l := newTestLayer(3, 5, activations.ELU{}, 1)

	if len(l.Weights()) != 3*5 {
		t.Errorf("weights length = %d, want %d", len(l.Weights()), 3*5)
	}
	if len(l.Biases()) != 5 {
		t.Errorf("biases length = %d, want %d", len(l.Biases()), 5)
	}
	if l.InSize() != 3 || l.OutSize() != 5 {
		t.Errorf("sizes = (%d, %d), want (3, 5)", l.InSize(), l.OutSize())
	}
}

// TestNewPanicsOnBadSize tests that non-positive dimensions are rejected.
func TestNewPanicsOnBadSize(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("New with zero input size did not panic")
		}
	}()
	newTestLayer(0, 4, activations.ELU{}, 1)
}

// TestInitRange tests that every weight and bias is drawn from [0.5, 0.9).
func TestInitRange(t *testing.T) {
	l := newTestLayer(10, 10, activations.ELU{}, 7)

	check := func(name string, vals []float64) {
		for i, v := range vals {
			if v < 0.5 || v >= 0.9 {
				t.Errorf("%s[%d] = %v, want in [0.5, 0.9)", name, i, v)
			}
		}
	}
	check("weights", l.Weights())
	check("biases", l.Biases())
}

// TestInitDeterministic tests that the same seed produces the same layer.
func TestInitDeterministic(t *testing.T) {
	a := newTestLayer(4, 3, activations.ELU{}, 42)
	b := newTestLayer(4, 3, activations.ELU{}, 42)

	for i := range a.Weights() {
		if a.Weights()[i] != b.Weights()[i] {
			t.Fatalf("weights[%d] differ: %v vs %v", i, a.Weights()[i], b.Weights()[i])
		}
	}
	for i := range a.Biases() {
		if a.Biases()[i] != b.Biases()[i] {
			t.Fatalf("biases[%d] differ: %v vs %v", i, a.Biases()[i], b.Biases()[i])
		}
	}
}

// TestPropagateKnownValues tests the affine transform against values
// computed by hand.
func TestPropagateKnownValues(t *testing.T) {
	l := newTestLayer(2, 2, activations.Sigmoid{}, 1)
	// unit 0: w = (1, -1), b = 0.5; unit 1: w = (0.25, 0.75), b = -0.5
	l.SetWeight(0, 0, 1)
	l.SetWeight(0, 1, -1)
	l.SetBias(0, 0.5)
	l.SetWeight(1, 0, 0.25)
	l.SetWeight(1, 1, 0.75)
	l.SetBias(1, -0.5)

	inputs := []float64{0.2, 0.4}
	outputs := make([]float64, 2)
	l.Propagate(inputs, outputs)

	sig := func(x float64) float64 { return 1 / (1 + math.Exp(-x)) }
	want0 := sig(0.5 + 0.2 - 0.4)
	want1 := sig(-0.5 + 0.25*0.2 + 0.75*0.4)

	if math.Abs(outputs[0]-want0) > 1e-12 {
		t.Errorf("outputs[0] = %v, want %v", outputs[0], want0)
	}
	if math.Abs(outputs[1]-want1) > 1e-12 {
		t.Errorf("outputs[1] = %v, want %v", outputs[1], want1)
	}
}

// TestPropagateDeterministic tests that propagation has no hidden state.
func TestPropagateDeterministic(t *testing.T) {
	l := newTestLayer(3, 4, activations.ELU{}, 5)
	inputs := []float64{0.1, -0.2, 0.3}

	first := make([]float64, 4)
	l.Propagate(inputs, first)

	for run := 0; run < 10; run++ {
		again := make([]float64, 4)
		l.Propagate(inputs, again)
		for o := range first {
			if first[o] != again[o] {
				t.Fatalf("run %d: outputs[%d] = %v, first run gave %v", run, o, again[o], first[o])
			}
		}
	}
}

// TestShapesSurviveUpdates tests the shape invariants across many
// weight updates.
func TestShapesSurviveUpdates(t *testing.T) {
	l := newTestLayer(3, 2, activations.ELU{}, 9)
	inputs := []float64{0.5, 0.25, -0.75}
	deltas := []float64{0.1, -0.2}

	for i := 0; i < 100; i++ {
		l.UpdateWeights(inputs, deltas, 0.2)
	}

	if len(l.Weights()) != 3*2 {
		t.Errorf("weights length = %d after updates, want %d", len(l.Weights()), 3*2)
	}
	if len(l.Biases()) != 2 {
		t.Errorf("biases length = %d after updates, want 2", len(l.Biases()))
	}
}

// TestComputeOutputDeltas tests deltas and the squared-error total with
// ELU outputs (derivative 1 for non-negative values).
func TestComputeOutputDeltas(t *testing.T) {
	l := newTestLayer(2, 3, activations.ELU{}, 3)

	outputs := []float64{0.4, 0.9, 0.1}
	expected := []float64{0.5, 0.7, 0.1}
	deltas := make([]float64, 3)

	total := l.ComputeOutputDeltas(outputs, expected, deltas)

	wantDeltas := []float64{0.1, -0.2, 0.0}
	for o := range wantDeltas {
		if math.Abs(deltas[o]-wantDeltas[o]) > 1e-12 {
			t.Errorf("deltas[%d] = %v, want %v", o, deltas[o], wantDeltas[o])
		}
	}

	wantTotal := 0.1*0.1 + 0.2*0.2
	if math.Abs(total-wantTotal) > 1e-12 {
		t.Errorf("total squared error = %v, want %v", total, wantTotal)
	}
}

// TestComputeDeltasSingleConnection tests back-propagation through a
// next layer whose weights are zero except one: only the hidden unit on
// the far end of that weight may receive a delta.
func TestComputeDeltasSingleConnection(t *testing.T) {
	hidden := newTestLayer(1, 4, activations.ELU{}, 11)
	output := newTestLayer(4, 2, activations.ELU{}, 12)

	for j := 0; j < 2; j++ {
		for o := 0; o < 4; o++ {
			output.SetWeight(j, o, 0)
		}
	}
	output.SetWeight(1, 2, 1.0) // unit 1 of the next layer reads hidden unit 2

	nextDeltas := []float64{0.3, 0.5}
	values := []float64{0.5, 0.5, 0.5, 0.5} // non-negative, ELU derivative 1
	deltas := make([]float64, 4)

	hidden.ComputeDeltas(output, nextDeltas, values, deltas)

	for o, d := range deltas {
		if o == 2 {
			if math.Abs(d-0.5) > 1e-12 {
				t.Errorf("deltas[2] = %v, want 0.5", d)
			}
			continue
		}
		if d != 0 {
			t.Errorf("deltas[%d] = %v, want exactly 0", o, d)
		}
	}
}

// TestUpdateWeightsStep tests one gradient step against hand-computed
// values.
func TestUpdateWeightsStep(t *testing.T) {
	l := newTestLayer(2, 1, activations.ELU{}, 13)
	l.SetWeight(0, 0, 0.5)
	l.SetWeight(0, 1, -0.5)
	l.SetBias(0, 0.1)

	inputs := []float64{1.0, 2.0}
	deltas := []float64{0.3}

	l.UpdateWeights(inputs, deltas, 0.5)

	// change = 0.3 * 0.5 = 0.15
	if got, want := l.Weight(0, 0), 0.5+0.15*1.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("weight(0,0) = %v, want %v", got, want)
	}
	if got, want := l.Weight(0, 1), -0.5+0.15*2.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("weight(0,1) = %v, want %v", got, want)
	}
	if got, want := l.Bias(0), 0.1+0.15; math.Abs(got-want) > 1e-12 {
		t.Errorf("bias(0) = %v, want %v", got, want)
	}
}

// TestPropagateDoesNotMutate tests that propagation leaves weights and
// biases untouched.
func TestPropagateDoesNotMutate(t *testing.T) {
	l := newTestLayer(2, 2, activations.ELU{}, 17)

	weightsBefore := append([]float64(nil), l.Weights()...)
	biasesBefore := append([]float64(nil), l.Biases()...)

	outputs := make([]float64, 2)
	l.Propagate([]float64{0.3, 0.6}, outputs)

	for i := range weightsBefore {
		if l.Weights()[i] != weightsBefore[i] {
			t.Fatalf("weights[%d] changed during propagation", i)
		}
	}
	for i := range biasesBefore {
		if l.Biases()[i] != biasesBefore[i] {
			t.Fatalf("biases[%d] changed during propagation", i)
		}
	}
}
