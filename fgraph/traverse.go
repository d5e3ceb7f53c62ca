package fgraph

// ReachSet is the result of a bipartite BFS: the RVs and Factors reached,
// keyed by name.
type ReachSet struct {
	RandVars map[string]bool
	Factors  map[string]bool
}

// node is an internal typed bipartite-graph node used only during BFS.
type node struct {
	isFactor bool
	name     string
}

// Reachable runs an ordinary BFS over the bipartite graph starting from
// the RV named start.
func (fg *FactorGraph) Reachable(start string) ReachSet {
	res := ReachSet{RandVars: map[string]bool{}, Factors: map[string]bool{}}
	if !fg.HasRandVar(start) {
		return res
	}

	visited := map[node]bool{}
	queue := []node{{isFactor: false, name: start}}
	visited[queue[0]] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur.isFactor {
			res.Factors[cur.name] = true
			f := fg.factor[cur.name]
			for _, rv := range f.Scope {
				n := node{isFactor: false, name: rv.Name}
				if !visited[n] {
					visited[n] = true
					queue = append(queue, n)
				}
			}
			continue
		}

		res.RandVars[cur.name] = true
		for _, fac := range fg.Neighbors(cur.name) {
			n := node{isFactor: true, name: fac.Name}
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}

	return res
}

// IsConnected reports whether every RV and Factor in fg is reachable from
// an arbitrary starting RV (the first in insertion order). An empty graph
// is trivially connected.
func (fg *FactorGraph) IsConnected() bool {
	if len(fg.rvOrder) == 0 {
		return true
	}
	reach := fg.Reachable(fg.rvOrder[0])
	return len(reach.RandVars) == len(fg.rvOrder) && len(reach.Factors) == len(fg.factorOrder)
}
