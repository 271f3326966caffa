package graphs

// BFS returns the vertices reachable from start in breadth-first
// order: all one-hop vertices before any two-hop vertex. Neighbor
// iteration is sorted, so the order is stable.
func BFS(g *Graph, start string) ([]string, error) {
	if !g.HasVertex(start) {
		return nil, ErrVertexNotFound
	}
	visited := map[string]bool{start: true}
	order := make([]string, 0, g.VertexCount())
	queue := []string{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		order = append(order, cur)
		neighbors, err := g.Neighbors(cur)
		if err != nil {
			return nil, err
		}
		for _, nbr := range neighbors {
			if !visited[nbr] {
				visited[nbr] = true
				queue = append(queue, nbr)
			}
		}
	}
	return order, nil
}

// DFS returns the vertices reachable from start in depth-first order:
// each branch fully explored before its siblings.
func DFS(g *Graph, start string) ([]string, error) {
	if !g.HasVertex(start) {
		return nil, ErrVertexNotFound
	}
	visited := make(map[string]bool, g.VertexCount())
	order := make([]string, 0, g.VertexCount())

	var walk func(id string) error
	walk = func(id string) error {
		visited[id] = true
		order = append(order, id)
		neighbors, err := g.Neighbors(id)
		if err != nil {
			return err
		}
		for _, nbr := range neighbors {
			if !visited[nbr] {
				if err := walk(nbr); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if err := walk(start); err != nil {
		return nil, err
	}
	return order, nil
}

// Vertex visitation states for the topological sort.
const (
	white = iota // untouched
	gray         // on the current path
	black        // fully explored
)

// TopologicalSort returns an order in which every vertex appears
// before the vertices it points at. The graph must be directed and
// acyclic; a gray vertex met twice on one path is a back edge, and the
// sort reports ErrCycle.
func TopologicalSort(g *Graph) ([]string, error) {
	if !g.Directed() {
		return nil, ErrNotDirected
	}
	vertices := g.Vertices()
	state := make(map[string]int, len(vertices))
	order := make([]string, 0, len(vertices))

	var visit func(id string) error
	visit = func(id string) error {
		switch state[id] {
		case gray:
			return ErrCycle
		case black:
			return nil
		}
		state[id] = gray
		neighbors, err := g.Neighbors(id)
		if err != nil {
			return err
		}
		for _, nbr := range neighbors {
			if err := visit(nbr); err != nil {
				return err
			}
		}
		state[id] = black
		order = append(order, id)
		return nil
	}

	for _, v := range vertices {
		if state[v] == white {
			if err := visit(v); err != nil {
				return nil, err
			}
		}
	}

	// Reverse the post-order: dependencies were recorded first.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order, nil
}
