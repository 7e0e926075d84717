package hierarchy

import (
	"testing"

	"github.com/edgewise-labs/cmdbmap/internal/catalog"
	"github.com/edgewise-labs/cmdbmap/internal/graph"
	"github.com/stretchr/testify/assert"
)

func chainStore() *catalog.Store {
	s := catalog.NewStore()
	s.PutTable(catalog.Table{Name: "cmdb_ci"})
	s.PutTable(catalog.Table{Name: "cmdb_ci_hardware", SuperClass: "cmdb_ci"})
	s.PutTable(catalog.Table{Name: "cmdb_ci_server", SuperClass: "cmdb_ci_hardware"})
	return s
}

func TestResolver_AncestorChain(t *testing.T) {
	r := New(chainStore())

	assert.Equal(t,
		[]string{"cmdb_ci_server", "cmdb_ci_hardware", "cmdb_ci"},
		r.AncestorChain("cmdb_ci_server"))
	assert.Equal(t, []string{"cmdb_ci"}, r.AncestorChain("cmdb_ci"))
}

func TestResolver_AncestorChain_StartsWithTable(t *testing.T) {
	r := New(chainStore())
	for _, name := range []string{"cmdb_ci", "cmdb_ci_hardware", "cmdb_ci_server", "not_a_table"} {
		chain := r.AncestorChain(name)
		assert.Equal(t, name, chain[0], "chain must start with the table itself")
	}
}

func TestResolver_AncestorChain_UnknownTable(t *testing.T) {
	r := New(chainStore())
	assert.Equal(t, []string{"ghost"}, r.AncestorChain("ghost"))
}

func TestResolver_AncestorChain_UnknownParent(t *testing.T) {
	s := catalog.NewStore()
	s.PutTable(catalog.Table{Name: "orphan", SuperClass: "never_loaded"})
	r := New(s)

	// The parent name is appended but the walk ends there: the parent
	// table is unknown so there is nothing further to follow.
	assert.Equal(t, []string{"orphan", "never_loaded"}, r.AncestorChain("orphan"))
}

func TestResolver_AncestorChain_SelfReference(t *testing.T) {
	s := catalog.NewStore()
	s.PutTable(catalog.Table{Name: "weird", SuperClass: "weird"})
	r := New(s)

	assert.Equal(t, []string{"weird"}, r.AncestorChain("weird"))
}

func TestResolver_AncestorChain_CycleTerminates(t *testing.T) {
	s := catalog.NewStore()
	s.PutTable(catalog.Table{Name: "a", SuperClass: "b"})
	s.PutTable(catalog.Table{Name: "b", SuperClass: "c"})
	s.PutTable(catalog.Table{Name: "c", SuperClass: "a"})
	r := New(s)

	chain := r.AncestorChain("a")
	assert.Equal(t, "a", chain[0])
	assert.LessOrEqual(t, len(chain), 4, "chain must stay finite on a super_class cycle")
}

func TestResolver_ApplicableAncestors(t *testing.T) {
	r := New(chainStore())

	g := graph.New()
	g.AddEdge("cmdb_ci_server", "cmdb_ci_hardware", graph.EdgeAttrs{})
	g.AddNode("cmdb_ci", graph.NodeAttrs{}) // in graph, but degree 0

	applicable := r.ApplicableAncestors(g, "cmdb_ci_server")

	assert.True(t, applicable["cmdb_ci_server"])
	assert.True(t, applicable["cmdb_ci_hardware"])
	assert.False(t, applicable["cmdb_ci"], "degree-0 nodes cannot supply relationships")
}
