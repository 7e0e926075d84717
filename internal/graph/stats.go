package graph

import "sort"

// NodeDegree pairs a node name with its total degree.
type NodeDegree struct {
	Name   string `json:"name"`
	Degree int    `json:"degree"`
}

// Stats summarizes the shape of a graph.
type Stats struct {
	Nodes          int          `json:"nodes"`
	Edges          int          `json:"edges"`
	WeakComponents int          `json:"weak_components"`
	Density        float64      `json:"density"`
	AverageDegree  float64      `json:"average_degree"`
	TopDegree      []NodeDegree `json:"top_degree"`
}

// ComputeStats returns summary statistics for the graph. topN limits the
// most-connected-nodes list.
func (g *Graph) ComputeStats(topN int) Stats {
	s := Stats{
		Nodes: g.NodeCount(),
		Edges: g.EdgeCount(),
	}
	if s.Nodes == 0 {
		return s
	}

	s.WeakComponents = g.countWeakComponents()
	if s.Nodes > 1 {
		s.Density = float64(s.Edges) / float64(s.Nodes*(s.Nodes-1))
	}
	s.AverageDegree = float64(2*s.Edges) / float64(s.Nodes)

	degrees := make([]NodeDegree, 0, s.Nodes)
	for _, name := range g.Nodes() {
		degrees = append(degrees, NodeDegree{Name: name, Degree: g.Degree(name)})
	}
	sort.SliceStable(degrees, func(i, j int) bool {
		if degrees[i].Degree != degrees[j].Degree {
			return degrees[i].Degree > degrees[j].Degree
		}
		return degrees[i].Name < degrees[j].Name
	})
	if topN > 0 && len(degrees) > topN {
		degrees = degrees[:topN]
	}
	s.TopDegree = degrees

	return s
}

// countWeakComponents counts connected components ignoring edge direction.
func (g *Graph) countWeakComponents() int {
	visited := make(map[string]bool, len(g.nodes))
	components := 0

	for name := range g.nodes {
		if visited[name] {
			continue
		}
		components++
		queue := []string{name}
		visited[name] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for next := range g.out[cur] {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
			for next := range g.in[cur] {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}
	}
	return components
}
