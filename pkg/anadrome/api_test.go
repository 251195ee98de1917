package anadrome

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuilderChainEvaluate(t *testing.T) {
	net, err := NewBuilder().
		AddInputs(2).
		AddNode(Output, Identity).
		AddNormalConnection(0, 2, 1.0).
		AddNormalConnection(1, 2, -1.0).
		Build(Consecutive)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	got := net.Evaluate([]float64{0.5, 1.5})
	if diff := cmp.Diff([]float64{-1.0}, got); diff != "" {
		t.Fatalf("unexpected outputs (-want +got):\n%s", diff)
	}
}

func TestAddInputsPinsIdentity(t *testing.T) {
	// The sigmoid default must not reach input nodes: raw values enter
	// the graph untransformed.
	net, err := NewBuilder().
		SetDefaultActivation(Sigmoid).
		AddInputs(1).
		AddNode(Output, Identity).
		AddNormalConnection(0, 1, 1.0).
		Build(Consecutive)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	got := net.Evaluate([]float64{0.7})
	if diff := cmp.Diff([]float64{0.7}, got); diff != "" {
		t.Fatalf("unexpected outputs (-want +got):\n%s", diff)
	}
}

func TestDefaultActivationAppliesToLaterNodes(t *testing.T) {
	net, err := NewBuilder().
		SetDefaultActivation(Tanh).
		AddInputs(1).
		AddNodes(Output, 1).
		AddNormalConnection(0, 1, 1.0).
		Build(Consecutive)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	got := net.Evaluate([]float64{0.5})
	want := math.Tanh(0.5)
	if len(got) != 1 || got[0] != want {
		t.Fatalf("unexpected outputs: got=%v want=[%f]", got, want)
	}
}

func TestConnectionBeforeNodes(t *testing.T) {
	// Bounds are deferred to Build, so a connection may reference nodes
	// that are declared afterwards.
	net, err := NewBuilder().
		AddNormalConnection(0, 1, 1.0).
		AddInput().
		AddNode(Output, Identity).
		Build(Consecutive)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	got := net.Evaluate([]float64{0.3})
	if diff := cmp.Diff([]float64{0.3}, got); diff != "" {
		t.Fatalf("unexpected outputs (-want +got):\n%s", diff)
	}
}

func TestBuildConnectionLoop(t *testing.T) {
	_, err := NewBuilder().
		AddNodes(Hidden, 2).
		AddNormalConnection(0, 1, 1.0).
		AddNormalConnection(1, 0, 1.0).
		Build(Consecutive)
	if !errors.Is(err, ErrConnectionLoop) {
		t.Fatalf("expected ErrConnectionLoop, got: %v", err)
	}
}

func TestBuildInvalidConnectionIndex(t *testing.T) {
	_, err := NewBuilder().
		AddInput().
		AddNormalConnection(0, 7, 1.0).
		Build(Consecutive)
	if !errors.Is(err, ErrInvalidConnectionIndex) {
		t.Fatalf("expected ErrInvalidConnectionIndex, got: %v", err)
	}
}

func TestBuildTwiceIndependentState(t *testing.T) {
	builder := NewBuilder().
		AddNode(Output, Cos).
		AddRecurrentConnection(0, 0, 1.0)

	first, err := builder.Build(Consecutive)
	if err != nil {
		t.Fatalf("build first: %v", err)
	}
	second, err := builder.Build(Consecutive)
	if err != nil {
		t.Fatalf("build second: %v", err)
	}

	// Advance the first network two rounds, then check the second still
	// starts from the initial state.
	round1 := first.Evaluate(nil)[0]
	round2 := first.Evaluate(nil)[0]
	if round1 == round2 {
		t.Fatal("recurrent state did not advance between rounds")
	}
	if got := second.Evaluate(nil)[0]; got != round1 {
		t.Fatalf("second network not independent: got=%f want=%f", got, round1)
	}
}

func TestRegisterActivationDuplicateBuiltIn(t *testing.T) {
	err := RegisterActivation(Sigmoid, func(x float64) float64 { return x })
	if !errors.Is(err, ErrActivationExists) {
		t.Fatalf("expected ErrActivationExists, got: %v", err)
	}
}

func TestListActivationsIncludesBuiltIns(t *testing.T) {
	names := make(map[Activation]bool)
	for _, name := range ListActivations() {
		names[name] = true
	}
	for _, want := range []Activation{Identity, Sigmoid, Tanh, Relu, Gaussian, Sin, Cos, Abs, Square} {
		if !names[want] {
			t.Fatalf("built-in %s missing from %v", want, ListActivations())
		}
	}
}

func TestNetworkCounts(t *testing.T) {
	net, err := NewBuilder().
		AddNodes(Bias, 1).
		AddInputs(3).
		AddNodes(Output, 2).
		Build(Consecutive)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if got := net.InputCount(); got != 3 {
		t.Fatalf("unexpected input count: got=%d want=3", got)
	}
	if got := net.OutputCount(); got != 2 {
		t.Fatalf("unexpected output count: got=%d want=2", got)
	}
}
