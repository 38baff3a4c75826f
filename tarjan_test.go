package subsumecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTarjanSCCAcyclic(t *testing.T) {
	graph := map[string][]string{
		"a": {"b"},
		"b": {"c"},
		"c": nil,
	}
	sccs := tarjanSCC(graph)
	for _, scc := range sccs {
		assert.Len(t, scc, 1)
	}
}

func TestTarjanSCCDetectsCycle(t *testing.T) {
	graph := map[string][]string{
		"a": {"b"},
		"b": {"a"},
	}
	sccs := tarjanSCC(graph)
	found := false
	for _, scc := range sccs {
		if len(scc) == 2 {
			found = true
		}
	}
	assert.True(t, found, "expected a two-node strongly connected component")
}

func TestTarjanSCCSelfLoop(t *testing.T) {
	graph := map[string][]string{
		"a": {"a"},
	}
	sccs := tarjanSCC(graph)
	require := assert.New(t)
	require.Len(sccs, 1)
	require.Equal([]string{"a"}, sccs[0])
}
