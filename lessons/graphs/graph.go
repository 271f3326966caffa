package graphs

import (
	"errors"
	"sort"
	"sync"
)

// Sentinel errors for graph construction and traversal.
var (
	// ErrEmptyVertexID reports an empty string used as a vertex ID.
	ErrEmptyVertexID = errors.New("graphs: vertex ID is empty")

	// ErrVertexNotFound reports an operation on a vertex that was never added.
	ErrVertexNotFound = errors.New("graphs: vertex not found")

	// ErrSelfLoop reports an edge from a vertex to itself.
	ErrSelfLoop = errors.New("graphs: self-loop not allowed")

	// ErrNegativeWeight reports a negative edge weight where the
	// algorithm requires non-negative ones.
	ErrNegativeWeight = errors.New("graphs: negative edge weight")

	// ErrNotDirected reports an algorithm that only makes sense on a
	// directed graph being run on an undirected one.
	ErrNotDirected = errors.New("graphs: directed graph required")

	// ErrCycle reports a cycle where the algorithm requires a DAG.
	ErrCycle = errors.New("graphs: cycle detected")
)

// Graph is an adjacency-map graph, safe for concurrent use. Undirected
// graphs store each edge in both directions; EdgeCount still counts it
// once.
type Graph struct {
	mu       sync.RWMutex
	directed bool
	adj      map[string]map[string]int64
	edges    int
}

// NewGraph returns an empty graph.
func NewGraph(directed bool) *Graph {
	return &Graph{
		directed: directed,
		adj:      make(map[string]map[string]int64),
	}
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// AddVertex registers id, harmlessly if it already exists.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensure(id)
	return nil
}

// ensure creates the adjacency row for id. Callers hold the write lock.
func (g *Graph) ensure(id string) {
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[string]int64)
	}
}

// AddEdge connects from to to with weight, creating missing endpoints
// on the way. Re-adding an existing edge updates its weight.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return ErrSelfLoop
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensure(from)
	g.ensure(to)
	if _, exists := g.adj[from][to]; !exists {
		g.edges++
	}
	g.adj[from][to] = weight
	if !g.directed {
		g.adj[to][from] = weight
	}
	return nil
}

// HasVertex reports whether id was added.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[id]
	return ok
}

// HasEdge reports whether from connects to to.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[from][to]
	return ok
}

// Weight returns the edge weight and whether the edge exists.
func (g *Graph) Weight(from, to string) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.adj[from][to]
	return w, ok
}

// Vertices returns all vertex IDs, sorted. Sorting costs O(V log V)
// but buys deterministic traversal everywhere else.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, 0, len(g.adj))
	for id := range g.adj {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Neighbors returns the IDs reachable from id in one hop, sorted.
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	row, ok := g.adj[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0, len(row))
	for to := range row {
		out = append(out, to)
	}
	sort.Strings(out)
	return out, nil
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.adj)
}

// EdgeCount returns the number of logical edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.edges
}
