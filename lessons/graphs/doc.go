// Package graphs is lesson 38: a small thread-safe adjacency graph and
// the four traversals everything else is built from.
//
// The Graph stores adjacency as map[from]map[to]weight behind a
// sync.RWMutex, with sorted vertex and neighbor iteration so every
// traversal is deterministic. On top of it:
//
//	BFS             visit order by increasing hop count
//	DFS             visit order by going deep first
//	ShortestPaths   Dijkstra with a container/heap priority queue
//	TopologicalSort dependency order for directed acyclic graphs
//
// Costs: BFS/DFS are O(V+E), Dijkstra O((V+E) log V), topological sort
// O(V+E). The structures are teaching scale; the shapes are the real
// ones.
package graphs
