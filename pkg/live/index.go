package live

// Index maps virtual-node identity to live nodes. It is a side table owned
// exclusively by the Patcher: entries are registered when subtrees are
// materialized and removed, recursively, when subtrees are detached, so a
// lookup can never hand out a node that left the tree.
type Index struct {
	nodes map[uint64]*Node
}

// NewIndex creates an empty identity index.
func NewIndex() *Index {
	return &Index{nodes: make(map[uint64]*Node)}
}

// Resolve returns the live node for a ref.
func (ix *Index) Resolve(ref uint64) (*Node, bool) {
	n, ok := ix.nodes[ref]
	return n, ok
}

// Len returns the number of registered nodes.
func (ix *Index) Len() int {
	return len(ix.nodes)
}

// register adds a single node.
func (ix *Index) register(n *Node) {
	ix.nodes[n.Ref] = n
}

// deregister removes n and every descendant.
func (ix *Index) deregister(n *Node) {
	delete(ix.nodes, n.Ref)
	for _, c := range n.Children {
		ix.deregister(c)
	}
}

// clear drops all entries.
func (ix *Index) clear() {
	ix.nodes = make(map[uint64]*Node)
}
