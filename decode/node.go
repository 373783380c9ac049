package decode

import "github.com/anirudhraja/protopeek/wire"

// Node is one decoded field: the framing record plus its interpretation.
type Node struct {
	wire.Record
	Value Value
}

// Tree is the decoded root span. Nodes keep the byte order of the input.
type Tree struct {
	Nodes []Node
}

// Walk visits every node depth-first in physical order, descending into
// embedded messages. depth is 1 for the root's children.
func (t Tree) Walk(fn func(n Node, depth int)) {
	walk(t.Nodes, 1, fn)
}

func walk(nodes []Node, depth int, fn func(n Node, depth int)) {
	for _, n := range nodes {
		fn(n, depth)
		if m, ok := n.Value.(Message); ok {
			walk(m.Nodes, depth+1, fn)
		}
	}
}
