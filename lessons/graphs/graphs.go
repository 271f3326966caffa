package graphs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/katalvlaran/golessons/curriculum"
)

// Lesson describes this package to the curriculum.
func Lesson() curriculum.Lesson {
	return curriculum.Lesson{
		Number:   38,
		Slug:     "graphs",
		Title:    "Graphs and traversals",
		Part:     curriculum.PartEngineering,
		Synopsis: "adjacency graph, BFS/DFS, Dijkstra, topological sort",
		Topics:   []string{"adjacency maps", "BFS", "DFS", "container/heap", "Dijkstra", "DAGs"},
		Run:      Run,
	}
}

// metro builds the undirected demo graph for the traversal steps.
func metro() *Graph {
	g := NewGraph(false)
	for _, e := range [][2]string{
		{"central", "museum"},
		{"central", "park"},
		{"museum", "airport"},
		{"park", "harbor"},
		{"airport", "harbor"},
	} {
		if err := g.AddEdge(e[0], e[1], 0); err != nil {
			panic(err) // static demo data
		}
	}
	return g
}

// roads builds the directed weighted demo graph for Dijkstra.
func roads() *Graph {
	g := NewGraph(true)
	type road struct {
		from, to string
		km       int64
	}
	for _, r := range []road{
		{"hub", "north", 4},
		{"hub", "east", 1},
		{"east", "north", 2},
		{"north", "depot", 5},
		{"east", "depot", 8},
	} {
		if err := g.AddEdge(r.from, r.to, r.km); err != nil {
			panic(err)
		}
	}
	_ = g.AddVertex("island") // reachable by nothing
	return g
}

// pipeline builds the build-step DAG for the topological sort.
func pipeline(withCycle bool) *Graph {
	g := NewGraph(true)
	for _, e := range [][2]string{
		{"clone", "deps"},
		{"deps", "build"},
		{"deps", "lint"},
		{"build", "test"},
		{"test", "package"},
		{"lint", "package"},
	} {
		if err := g.AddEdge(e[0], e[1], 0); err != nil {
			panic(err)
		}
	}
	if withCycle {
		_ = g.AddEdge("test", "deps", 0)
	}
	return g
}

// Run prints the annotated demonstration.
func Run(_ context.Context, w io.Writer) error {
	nb := curriculum.NewNotebook(w)
	nb.Heading("Graphs and traversals")

	nb.Step("The representation")
	nb.Say("adjacency as map[from]map[to]weight: O(1) edge lookup, O(V+E)")
	nb.Say("memory, and neighbors of any vertex in one map read. A")
	nb.Say("sync.RWMutex makes builds and queries safe across goroutines.")
	nb.Say("Undirected edges are stored in both directions.")

	nb.Step("BFS visits by distance, DFS by branch")
	m := metro()
	bfsOrder, err := BFS(m, "central")
	if err != nil {
		return err
	}
	dfsOrder, err := DFS(m, "central")
	if err != nil {
		return err
	}
	nb.Show("BFS from central", bfsOrder)
	nb.Show("DFS from central", dfsOrder)
	nb.Say("Same graph, different frontier: BFS trades a queue for")
	nb.Say("level-by-level order (and unweighted shortest paths), DFS a")
	nb.Say("stack for deep-first order (and cycle detection). Both O(V+E).")
	_, err = BFS(m, "atlantis")
	nb.Show("unknown start", errors.Is(err, ErrVertexNotFound))

	nb.Step("Dijkstra: shortest paths by greedy relaxation")
	r := roads()
	dist, prev, err := ShortestPaths(r, "hub")
	if err != nil {
		return err
	}
	nb.Show("dist[north]", dist["north"])
	nb.Show("dist[depot]", dist["depot"])
	nb.Show("PathTo(depot)", PathTo(prev, "hub", "depot"))
	_, reached := dist["island"]
	nb.Show("island reached", reached)
	nb.Say("A min-heap (container/heap) always pops the closest open")
	nb.Say("vertex; each relaxation that improves a distance pushes a new")
	nb.Say("entry and stale ones are skipped on pop. Direct hub->north")
	nb.Say("costs 4, but hub->east->north wins at 3.")

	nb.Step("Topological sort orders dependencies")
	order, err := TopologicalSort(pipeline(false))
	if err != nil {
		return err
	}
	nb.Show("pipeline order", order)
	_, err = TopologicalSort(pipeline(true))
	nb.Show("cycle rejected", errors.Is(err, ErrCycle))
	nb.Say("DFS post-order, reversed. A vertex met while still gray is a")
	nb.Say("back edge, and a graph with a back edge has no valid order.")

	nb.Step("Concurrent construction")
	shared := NewGraph(false)
	var wg sync.WaitGroup
	for worker := 0; worker < 4; worker++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				spoke := fmt.Sprintf("spoke-%d-%02d", worker, i)
				if err := shared.AddEdge("hub", spoke, 1); err != nil {
					return
				}
			}
		}(worker)
	}
	wg.Wait()
	nb.Show("vertices", shared.VertexCount())
	nb.Show("edges", shared.EdgeCount())
	nb.Say("Four goroutines built the star concurrently; the counts come")
	nb.Say("out exact because every mutation holds the write lock.")

	nb.Takeaways(
		"adjacency maps give O(1) edge queries and cheap neighbor iteration",
		"BFS answers \"how far\", DFS answers \"is it reachable / is there a cycle\"",
		"Dijkstra needs non-negative weights and a priority queue",
		"topological sort is reversed DFS post-order, defined only for DAGs",
	)
	return nb.Err()
}
