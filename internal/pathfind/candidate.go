// Package pathfind implements the inheritance-aware path engine: bounded
// all-simple-paths enumeration between two tables, candidate ranking, and
// synthesis of the induced subgraph handed to rendering.
package pathfind

import "strings"

// Candidate is one enumerated path. Nodes is the ordered table sequence.
// Ancestor is empty for a direct path; when set, the path actually reaches
// that ancestor and is projected onto the requested target as its final
// element.
type Candidate struct {
	Nodes    []string `json:"nodes"`
	Ancestor string   `json:"ancestor,omitempty"`
}

// Inherited reports whether the candidate reaches the target through one
// of its ancestors.
func (c Candidate) Inherited() bool { return c.Ancestor != "" }

// Len returns the number of tables on the path.
func (c Candidate) Len() int { return len(c.Nodes) }

// String formats the candidate as "a -> b -> c (inherited from x)".
func (c Candidate) String() string {
	s := strings.Join(c.Nodes, " -> ")
	if c.Inherited() {
		s += " (inherited from " + c.Ancestor + ")"
	}
	return s
}

// key returns the node sequence as a single comparable value.
func (c Candidate) key() string {
	return strings.Join(c.Nodes, "\x00")
}
