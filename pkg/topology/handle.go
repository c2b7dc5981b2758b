package topology

import "sync/atomic"

// Handle publishes the current graph to concurrent readers. Rebuilding after
// a reference-data change swaps the whole graph in one atomic store, so a
// reader always sees either the old snapshot or the new one, never a mix.
type Handle struct {
	current atomic.Pointer[Graph]
}

// NewHandle creates a handle over an initial graph.
func NewHandle(g *Graph) *Handle {
	h := &Handle{}
	h.current.Store(g)
	return h
}

// Graph returns the current snapshot.
func (h *Handle) Graph() *Graph {
	return h.current.Load()
}

// Swap publishes a newly built graph.
func (h *Handle) Swap(g *Graph) {
	h.current.Store(g)
}
