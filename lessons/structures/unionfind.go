package structures

// UnionFind tracks disjoint sets over the elements 0..n-1. With path
// compression and union by rank, Find and Union cost amortized
// near-O(1) (inverse Ackermann, below 5 for any input that fits in
// memory).
type UnionFind struct {
	parent     []int
	rank       []int
	components int
}

// NewUnionFind starts with n singleton sets.
func NewUnionFind(n int) *UnionFind {
	u := &UnionFind{
		parent:     make([]int, n),
		rank:       make([]int, n),
		components: n,
	}
	for i := range u.parent {
		u.parent[i] = i
	}
	return u
}

// Find returns the representative of x's set, flattening the path on
// the way up.
func (u *UnionFind) Find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

// Union merges the sets of a and b, reporting whether they were
// previously separate.
func (u *UnionFind) Union(a, b int) bool {
	ra, rb := u.Find(a), u.Find(b)
	if ra == rb {
		return false
	}
	if u.rank[ra] < u.rank[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	if u.rank[ra] == u.rank[rb] {
		u.rank[ra]++
	}
	u.components--
	return true
}

// Connected reports whether a and b share a set.
func (u *UnionFind) Connected(a, b int) bool {
	return u.Find(a) == u.Find(b)
}

// Components returns the number of disjoint sets.
func (u *UnionFind) Components() int { return u.components }
