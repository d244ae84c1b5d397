package munin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trafficGraph() *Graph {
	return &Graph{
		ID:       "mysql_traffic",
		Title:    "MySQL - Network Traffic (bytes/sec)",
		Category: "MySQL",
		Args:     "--base 1000 --lower-limit 0",
		VLabel:   "bytes in (-) / out (+) per second",
		Fields: []Field{
			{ID: "rx", Label: "bytes", Type: Derive, Draw: "LINE2", Min: "0", Hidden: true},
			{ID: "tx", Label: "bytes", Type: Derive, Draw: "LINE2", Min: "0", Negative: "rx"},
		},
	}
}

func TestRegistryAdd(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add(trafficGraph()))

	assert.True(t, r.HasGraph("mysql_traffic"))
	assert.False(t, r.HasGraph("mysql_threads"))
	assert.Equal(t, []string{"rx", "tx"}, r.FieldIDs("mysql_traffic"))
	assert.Nil(t, r.FieldIDs("mysql_threads"))

	err := r.Add(trafficGraph())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate graph id")
}

func TestRegistryAddRejectsDuplicateFieldIDs(t *testing.T) {
	r := NewRegistry()
	err := r.Add(&Graph{
		ID:    "g",
		Title: "g",
		Fields: []Field{
			{ID: "a", Label: "a"},
			{ID: "a", Label: "a again"},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate field id")
}

func TestRegistryAddRejectsDanglingNegative(t *testing.T) {
	r := NewRegistry()
	err := r.Add(&Graph{
		ID:    "g",
		Title: "g",
		Fields: []Field{
			{ID: "tx", Label: "tx", Negative: "rx"},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown field")
}

func TestRegistrySetValue(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add(trafficGraph()))

	// Unassigned fields read as unknown, not zero.
	assert.Equal(t, Unknown(), r.Value("mysql_traffic", "rx"))

	r.SetValue("mysql_traffic", "rx", NewValue(1024))
	assert.Equal(t, NewValue(1024), r.Value("mysql_traffic", "rx"))

	// Overwrites within a cycle keep the last value.
	r.SetValue("mysql_traffic", "rx", NewValue(2048))
	assert.Equal(t, NewValue(2048), r.Value("mysql_traffic", "rx"))

	// Disabled graphs and unknown fields are a no-op, not an error.
	r.SetValue("mysql_threads", "running", NewValue(1))
	r.SetValue("mysql_traffic", "nope", NewValue(1))
	assert.Equal(t, Unknown(), r.Value("mysql_traffic", "nope"))
}

func TestRegistryOrderIsInsertionOrder(t *testing.T) {
	r := NewRegistry()
	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, r.Add(&Graph{ID: id, Title: id}))
	}

	var ids []string
	for _, g := range r.Graphs() {
		ids = append(ids, g.ID)
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}
