// File: disjoint_set.go
// Role: Union-find forest over dense vertex indices.
package prim_kruskal

// disjointSet keeps a parent pointer per element plus the size of every root's
// tree. find compresses paths by halving; union attaches the smaller tree
// under the larger one.
type disjointSet struct {
	parent []int
	size   []int
}

// newDisjointSet returns n singleton sets {0}, {1}, ..., {n-1}.
func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{
		parent: make([]int, n),
		size:   make([]int, n),
	}
	var i int
	for i = 0; i < n; i++ {
		ds.parent[i] = i
		ds.size[i] = 1
	}

	return ds
}

// find returns the root of x's set.
// Complexity: amortized O(α(n)).
func (ds *disjointSet) find(x int) int {
	for ds.parent[x] != x {
		ds.parent[x] = ds.parent[ds.parent[x]]
		x = ds.parent[x]
	}

	return x
}

// union merges the sets of a and b. It reports false when they were already joined.
func (ds *disjointSet) union(a, b int) bool {
	ra, rb := ds.find(a), ds.find(b)
	if ra == rb {
		return false
	}
	if ds.size[ra] < ds.size[rb] {
		ra, rb = rb, ra
	}
	ds.parent[rb] = ra
	ds.size[ra] += ds.size[rb]

	return true
}
