// Package anadrome builds and evaluates small directed computation graphs
// whose nodes carry scalar activation functions and whose edges may feed
// values back into earlier stages of the same evaluation pass.
//
// A Builder collects node and connection templates in declaration order,
// then Build realizes the template against a representation. Realization
// validates connection indices, derives a firing order for the
// connections, and returns a Network whose Evaluate call maps an input
// vector to an output vector. Recurrent state persists across Evaluate
// calls on the same Network.
package anadrome

import (
	"anadrome/internal/model"
	"anadrome/internal/nn"
)

// NodeType is the role of a declared node.
type NodeType string

const (
	Bias   NodeType = NodeType(model.NodeBias)
	Input  NodeType = NodeType(model.NodeInput)
	Output NodeType = NodeType(model.NodeOutput)
	Hidden NodeType = NodeType(model.NodeHidden)
)

// ConnectionKind selects forward or feedback scheduling for a connection.
type ConnectionKind string

const (
	Normal    ConnectionKind = ConnectionKind(model.ConnectionNormal)
	Recurrent ConnectionKind = ConnectionKind(model.ConnectionRecurrent)
)

// Activation names a scalar function from the catalogue. The built-in set
// is below; RegisterActivation extends it.
type Activation string

const (
	Identity Activation = nn.FnIdentity
	Sigmoid  Activation = nn.FnSigmoid
	Tanh     Activation = nn.FnTanh
	Relu     Activation = nn.FnRelu
	Gaussian Activation = nn.FnGaussian
	Sin      Activation = nn.FnSin
	Cos      Activation = nn.FnCos
	Abs      Activation = nn.FnAbs
	Square   Activation = nn.FnSquare
)

// Build failure sentinels, matched with errors.Is.
var (
	ErrConnectionLoop         = nn.ErrConnectionLoop
	ErrInvalidConnectionIndex = nn.ErrInvalidConnectionIndex
	ErrActivationNotFound     = nn.ErrActivationNotFound
	ErrActivationExists       = nn.ErrActivationExists
)

// RegisterActivation adds a custom scalar function to the catalogue under
// name. The function must be pure and defined for all finite inputs.
func RegisterActivation(name Activation, fn func(x float64) float64) error {
	return nn.RegisterActivation(string(name), fn)
}

// ListActivations returns every registered activation name, sorted.
func ListActivations() []Activation {
	names := nn.ListActivations()
	out := make([]Activation, 0, len(names))
	for _, name := range names {
		out = append(out, Activation(name))
	}
	return out
}

// Network is a realized, evaluable graph. Evaluate is synchronous and must
// not be called concurrently on one instance; build separate instances
// from the same Builder when parallel evaluation is needed.
type Network interface {
	// Evaluate runs one round: input values are assigned positionally to
	// input nodes in declaration order, then output node values are
	// returned in declaration order. Extra input values are ignored and
	// extra input nodes keep their previous state.
	Evaluate(inputs []float64) []float64

	// InputCount reports the number of declared input nodes.
	InputCount() int

	// OutputCount reports the number of declared output nodes, which is
	// the length of every Evaluate result.
	OutputCount() int
}

// Representation is a way of realizing a template into a Network. The set
// is sealed; Consecutive is the provided representation.
type Representation interface {
	realize(template model.NetworkTemplate) (Network, error)
}

type consecutiveRepresentation struct{}

func (consecutiveRepresentation) realize(template model.NetworkTemplate) (Network, error) {
	return nn.RealizeConsecutive(template)
}

// Consecutive realizes templates into a network that fires its
// connections one after another in a dependency-derived order computed
// once at build time.
var Consecutive Representation = consecutiveRepresentation{}

// Builder accumulates node and connection templates. Mutators return the
// builder for chaining; none of them validate indices, so connections may
// reference nodes that are appended later. Validation happens in Build.
type Builder struct {
	defaultActivation Activation
	template          model.NetworkTemplate
}

// NewBuilder returns an empty builder whose default activation is sigmoid.
func NewBuilder() *Builder {
	return &Builder{defaultActivation: Sigmoid}
}

// SetDefaultActivation changes the activation used by subsequent AddNodes
// calls. Nodes already added keep their activation.
func (b *Builder) SetDefaultActivation(fn Activation) *Builder {
	b.defaultActivation = fn
	return b
}

// AddNode appends one node with an explicit activation.
func (b *Builder) AddNode(nodeType NodeType, fn Activation) *Builder {
	b.template.Nodes = append(b.template.Nodes, model.NodeTemplate{
		Type:       model.NodeType(nodeType),
		Activation: string(fn),
	})
	return b
}

// AddNodes appends count nodes using the current default activation.
func (b *Builder) AddNodes(nodeType NodeType, count int) *Builder {
	for i := 0; i < count; i++ {
		b.AddNode(nodeType, b.defaultActivation)
	}
	return b
}

// AddInput appends one input node. Input nodes always use identity so raw
// values enter the graph untransformed, regardless of the default.
func (b *Builder) AddInput() *Builder {
	return b.AddNode(Input, Identity)
}

// AddInputs appends count input nodes, identity activation pinned.
func (b *Builder) AddInputs(count int) *Builder {
	for i := 0; i < count; i++ {
		b.AddInput()
	}
	return b
}

// AddConnection appends a connection template between node indices.
func (b *Builder) AddConnection(origin, dest int, weight float64, kind ConnectionKind) *Builder {
	b.template.Connections = append(b.template.Connections, model.ConnectionTemplate{
		Origin: origin,
		Dest:   dest,
		Weight: weight,
		Kind:   model.ConnectionKind(kind),
	})
	return b
}

// AddNormalConnection appends a forward connection.
func (b *Builder) AddNormalConnection(origin, dest int, weight float64) *Builder {
	return b.AddConnection(origin, dest, weight, Normal)
}

// AddRecurrentConnection appends a feedback connection.
func (b *Builder) AddRecurrentConnection(origin, dest int, weight float64) *Builder {
	return b.AddConnection(origin, dest, weight, Recurrent)
}

// Build realizes a snapshot of the template against rep. The builder stays
// usable afterwards, and every Build call produces a Network with its own
// independent state.
func (b *Builder) Build(rep Representation) (Network, error) {
	return rep.realize(b.template.Clone())
}
