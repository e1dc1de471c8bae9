package depgraph

// importGraph is a directed graph over interned file paths. Cycle
// detection runs Kahn's algorithm: if peeling zero-in-degree nodes cannot
// consume the whole graph, the remainder contains a cycle.
type importGraph struct {
	ids      map[string]int
	edges    [][]int
	inDegree []int
}

func newImportGraph() *importGraph {
	return &importGraph{
		ids: make(map[string]int),
	}
}

// node interns name and returns its ID.
func (g *importGraph) node(name string) int {
	if id, ok := g.ids[name]; ok {
		return id
	}

	id := len(g.edges)
	g.ids[name] = id
	g.edges = append(g.edges, nil)
	g.inDegree = append(g.inDegree, 0)

	return id
}

// addEdge records a from -> to import edge, ignoring duplicates.
func (g *importGraph) addEdge(from, to string) {
	u := g.node(from)
	v := g.node(to)

	for _, w := range g.edges[u] {
		if w == v {
			return
		}
	}

	g.edges[u] = append(g.edges[u], v)
	g.inDegree[v]++
}

// hasCycle reports whether the graph contains an import cycle.
func (g *importGraph) hasCycle() bool {
	n := len(g.edges)

	inDegree := make([]int, n)
	copy(inDegree, g.inDegree)

	queue := make([]int, 0, n)

	for id := range n {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	seen := 0

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		seen++

		for _, v := range g.edges[u] {
			inDegree[v]--
			if inDegree[v] == 0 {
				queue = append(queue, v)
			}
		}
	}

	return seen != n
}
