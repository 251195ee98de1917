package model

// NodeType labels the role a node plays during evaluation. Input nodes
// receive external values directly, output nodes are read after every
// connection has fired, bias and hidden nodes only participate through
// their connections.
type NodeType string

const (
	NodeBias   NodeType = "bias"
	NodeInput  NodeType = "input"
	NodeOutput NodeType = "output"
	NodeHidden NodeType = "hidden"
)

// ConnectionKind distinguishes forward data dependencies from feedback
// edges. A recurrent connection reads its origin's value from before the
// current round overwrites it.
type ConnectionKind string

const (
	ConnectionNormal    ConnectionKind = "normal"
	ConnectionRecurrent ConnectionKind = "recurrent"
)

// NodeTemplate describes one node of a network under construction.
// Activation is a registry name; it is resolved to a concrete function
// when the template is realized, not before.
type NodeTemplate struct {
	Type       NodeType
	Activation string
}

// ConnectionTemplate describes one weighted directed edge by node index.
// Indices are not bounds-checked here; a template may reference nodes that
// have not been appended yet.
type ConnectionTemplate struct {
	Origin int
	Dest   int
	Weight float64
	Kind   ConnectionKind
}

// NetworkTemplate is the full unvalidated description handed to a
// representation for realization. Node indices are positional: dense,
// zero-based, and stable for the lifetime of the template.
type NetworkTemplate struct {
	Nodes       []NodeTemplate
	Connections []ConnectionTemplate
}

// Clone deep-copies the template so independent realizations never share
// backing arrays.
func (t NetworkTemplate) Clone() NetworkTemplate {
	return NetworkTemplate{
		Nodes:       append([]NodeTemplate(nil), t.Nodes...),
		Connections: append([]ConnectionTemplate(nil), t.Connections...),
	}
}
