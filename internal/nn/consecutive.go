package nn

import (
	"errors"
	"fmt"

	"anadrome/internal/model"
)

// ErrInvalidConnectionIndex reports a connection endpoint outside the node
// range, or a scheduled index that does not resolve against the template
// it was computed from. The latter indicates an internal inconsistency and
// is reported rather than allowed to panic.
var ErrInvalidConnectionIndex = errors.New("invalid connection index")

type valueState uint8

const (
	accumulating valueState = iota
	settled
)

// nodeValue is a two-variant state machine. While accumulating, v is the
// running sum of weighted contributions; once settled, v is the cached
// activation output for the remainder of the round.
type nodeValue struct {
	state valueState
	v     float64
}

type node struct {
	nodeType model.NodeType
	activate ActivationFunc
	value    nodeValue
}

// read settles the node if needed and returns the settled value. The
// activation function runs at most once per settle.
func (n *node) read() float64 {
	if n.value.state == settled {
		return n.value.v
	}
	out := n.activate(n.value.v)
	n.value = nodeValue{state: settled, v: out}
	return out
}

// contribute adds a weighted input. A contribution arriving on a settled
// node discards the cached value and starts a fresh accumulation; it never
// adds to the stale output.
func (n *node) contribute(x float64) {
	if n.value.state == settled {
		n.value = nodeValue{state: accumulating, v: x}
		return
	}
	n.value.v += x
}

// settle forces a value directly, bypassing accumulation and activation.
// Input loading uses this.
func (n *node) settle(x float64) {
	n.value = nodeValue{state: settled, v: x}
}

// connection carries the same payload as its template; the kind only
// matters to scheduling but is kept so a realized graph remains
// self-describing.
type connection struct {
	origin int
	dest   int
	weight float64
	kind   model.ConnectionKind
}

// ConsecutiveNetwork evaluates a realized graph by firing its connections
// one after another in a fixed order computed once at construction.
// Structure is immutable after RealizeConsecutive; only per-node value
// state changes between Evaluate calls, which is what carries recurrent
// state across rounds. Not safe for concurrent Evaluate calls on the same
// instance; realize separate instances from the same template instead.
type ConsecutiveNetwork struct {
	nodes       []node
	connections []connection
	inputCount  int
	outputCount int
}

// RealizeConsecutive validates a template snapshot and materializes it in
// firing order. It fails with ErrActivationNotFound for an unresolvable
// activation name, ErrInvalidConnectionIndex for an out-of-range endpoint,
// and ErrConnectionLoop when no firing order exists.
func RealizeConsecutive(template model.NetworkTemplate) (*ConsecutiveNetwork, error) {
	net := &ConsecutiveNetwork{
		nodes: make([]node, 0, len(template.Nodes)),
	}
	for i, nt := range template.Nodes {
		fn, err := GetActivation(nt.Activation)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		net.nodes = append(net.nodes, node{nodeType: nt.Type, activate: fn})
		switch nt.Type {
		case model.NodeInput:
			net.inputCount++
		case model.NodeOutput:
			net.outputCount++
		}
	}

	for i, ct := range template.Connections {
		if ct.Origin < 0 || ct.Origin >= len(template.Nodes) {
			return nil, fmt.Errorf("%w: connection %d origin %d with %d nodes", ErrInvalidConnectionIndex, i, ct.Origin, len(template.Nodes))
		}
		if ct.Dest < 0 || ct.Dest >= len(template.Nodes) {
			return nil, fmt.Errorf("%w: connection %d dest %d with %d nodes", ErrInvalidConnectionIndex, i, ct.Dest, len(template.Nodes))
		}
	}

	order, err := ConnectionOrder(template.Connections)
	if err != nil {
		return nil, err
	}

	net.connections = make([]connection, 0, len(order))
	for _, idx := range order {
		if idx < 0 || idx >= len(template.Connections) {
			return nil, fmt.Errorf("%w: scheduled index %d with %d connections", ErrInvalidConnectionIndex, idx, len(template.Connections))
		}
		ct := template.Connections[idx]
		net.connections = append(net.connections, connection{
			origin: ct.Origin,
			dest:   ct.Dest,
			weight: ct.Weight,
			kind:   ct.Kind,
		})
	}
	return net, nil
}

// InputCount returns the number of input nodes.
func (c *ConsecutiveNetwork) InputCount() int {
	return c.inputCount
}

// OutputCount returns the number of output nodes, which is the length of
// every Evaluate result.
func (c *ConsecutiveNetwork) OutputCount() int {
	return c.outputCount
}

// Evaluate runs one round: inputs are zipped positionally onto input nodes
// in template order (extra values are dropped, extra input nodes keep
// their prior state), every connection fires in schedule order, and output
// node values are collected in template order.
func (c *ConsecutiveNetwork) Evaluate(inputs []float64) []float64 {
	next := 0
	for i := range c.nodes {
		if c.nodes[i].nodeType != model.NodeInput {
			continue
		}
		if next >= len(inputs) {
			break
		}
		c.nodes[i].settle(inputs[next])
		next++
	}

	for _, conn := range c.connections {
		value := c.nodes[conn.origin].read()
		c.nodes[conn.dest].contribute(value * conn.weight)
	}

	outputs := make([]float64, 0, c.outputCount)
	for i := range c.nodes {
		if c.nodes[i].nodeType == model.NodeOutput {
			outputs = append(outputs, c.nodes[i].read())
		}
	}
	return outputs
}
