package model

// TypeNode is one entry in the resolved supertype/interface graph.
// Supertype is empty at the top of a chain.
type TypeNode struct {
	Supertype  string
	Interfaces []string
}

// Universe is the resolved type graph the capability check walks. Keys
// are fully qualified type names.
type Universe struct {
	Types map[string]*TypeNode
}

// NewUniverse creates an empty universe.
func NewUniverse() *Universe {
	return &Universe{Types: make(map[string]*TypeNode)}
}

// Add registers a node, replacing any previous entry for the same key.
func (u *Universe) Add(key string, node *TypeNode) {
	u.Types[key] = node
}

// Node returns the node for key, or nil when the type is unknown.
func (u *Universe) Node(key string) *TypeNode {
	return u.Types[key]
}
