package graphs

import (
	"container/heap"
	"fmt"
)

// pqItem pairs a vertex with its tentative distance from the source.
type pqItem struct {
	id   string
	dist int64
}

// minPQ is a min-heap of pqItems ordered by distance. Shorter paths
// found later are pushed as duplicates; stale entries are skipped when
// popped (lazy decrease-key).
type minPQ []pqItem

func (pq minPQ) Len() int { return len(pq) }

func (pq minPQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

func (pq minPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *minPQ) Push(x any) { *pq = append(*pq, x.(pqItem)) }

func (pq *minPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// ShortestPaths runs Dijkstra from source. It returns the distance to
// every reachable vertex and a predecessor map for path reconstruction;
// unreachable vertices appear in neither. Edge weights must be
// non-negative.
//
// Cost is O((V+E) log V): every vertex is finalized once, every edge
// may push one heap entry, and each heap operation is O(log V).
func ShortestPaths(g *Graph, source string) (map[string]int64, map[string]string, error) {
	if !g.HasVertex(source) {
		return nil, nil, ErrVertexNotFound
	}
	// Fail fast on negative weights; Dijkstra's greedy choice is
	// unsound with them.
	for _, from := range g.Vertices() {
		neighbors, err := g.Neighbors(from)
		if err != nil {
			return nil, nil, err
		}
		for _, to := range neighbors {
			if w, _ := g.Weight(from, to); w < 0 {
				return nil, nil, fmt.Errorf("%w: %s->%s weight=%d", ErrNegativeWeight, from, to, w)
			}
		}
	}

	dist := map[string]int64{source: 0}
	prev := make(map[string]string)
	done := make(map[string]bool)

	pq := minPQ{{id: source, dist: 0}}
	heap.Init(&pq)

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(pqItem)
		if done[item.id] {
			continue // stale duplicate
		}
		done[item.id] = true

		neighbors, err := g.Neighbors(item.id)
		if err != nil {
			return nil, nil, err
		}
		for _, nbr := range neighbors {
			w, _ := g.Weight(item.id, nbr)
			candidate := dist[item.id] + w
			if best, seen := dist[nbr]; seen && candidate >= best {
				continue
			}
			dist[nbr] = candidate
			prev[nbr] = item.id
			heap.Push(&pq, pqItem{id: nbr, dist: candidate})
		}
	}
	return dist, prev, nil
}

// PathTo rebuilds the source-to-target path from a predecessor map
// produced by ShortestPaths. It returns nil when target was not
// reached.
func PathTo(prev map[string]string, source, target string) []string {
	if target == source {
		return []string{source}
	}
	if _, ok := prev[target]; !ok {
		return nil
	}
	path := []string{target}
	for cur := target; cur != source; {
		cur = prev[cur]
		path = append(path, cur)
	}
	// Walked backwards; flip it.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
