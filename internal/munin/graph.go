// Package munin implements the data model and line protocol for
// multigraph munin plugins: graph and field definitions, per-cycle
// sample values with an explicit unknown state, and the config/value
// mode serialization consumed by munin-node.
package munin

import (
	"github.com/pkg/errors"
)

// FieldType is the munin sample type of a field.
type FieldType string

const (
	// Gauge fields report an instantaneous value.
	Gauge FieldType = "GAUGE"
	// Derive fields report a monotonic counter from which munin
	// computes a per-second rate.
	Derive FieldType = "DERIVE"
)

// Field is one time series within a graph.  Immutable after
// construction.
type Field struct {
	ID    string
	Label string
	Type  FieldType
	Draw  string
	// Min is the lower bound in munin syntax, e.g. "0".  Empty means
	// no bound is emitted.
	Min string
	// Negative names another field of the same graph that is drawn
	// mirrored below the axis.
	Negative string
	Colour   string
	// Hidden fields are transmitted but not rendered by munin
	// ("<id>.graph no").
	Hidden bool
	Info   string
}

// Graph is a named group of fields reported together as one unit.
// Immutable after construction; owned by the Registry it is added to.
type Graph struct {
	ID       string
	Title    string
	Category string
	Args     string
	VLabel   string
	Info     string
	Fields   []Field
}

func (g *Graph) validate() error {
	ids := make(map[string]bool, len(g.Fields))
	for _, f := range g.Fields {
		if ids[f.ID] {
			return errors.Errorf("graph %s: duplicate field id %s", g.ID, f.ID)
		}
		ids[f.ID] = true
	}
	for _, f := range g.Fields {
		if f.Negative != "" && !ids[f.Negative] {
			return errors.Errorf("graph %s: field %s pairs with unknown field %s",
				g.ID, f.ID, f.Negative)
		}
	}
	return nil
}

// Registry holds the graphs enabled for the lifetime of the plugin
// process, in the order they were added, together with their
// current-cycle values.
type Registry struct {
	graphs []*Graph
	index  map[string]*Graph
	values map[string]map[string]Value
}

// NewRegistry returns an empty graph registry.
func NewRegistry() *Registry {
	return &Registry{
		index:  make(map[string]*Graph),
		values: make(map[string]map[string]Value),
	}
}

// Add registers a graph.  Graph ids must be unique, field ids must be
// unique within the graph, and negative pairings must resolve within
// the graph.
func (r *Registry) Add(g *Graph) error {
	if _, ok := r.index[g.ID]; ok {
		return errors.Errorf("duplicate graph id %s", g.ID)
	}
	if err := g.validate(); err != nil {
		return err
	}
	r.graphs = append(r.graphs, g)
	r.index[g.ID] = g
	r.values[g.ID] = make(map[string]Value, len(g.Fields))
	return nil
}

// HasGraph returns whether a graph with the given id is registered.
func (r *Registry) HasGraph(id string) bool {
	_, ok := r.index[id]
	return ok
}

// Graphs returns the registered graphs in registration order.
func (r *Registry) Graphs() []*Graph {
	return r.graphs
}

// FieldIDs returns the field ids of a graph in declaration order, or
// nil for an unregistered graph.
func (r *Registry) FieldIDs(graphID string) []string {
	g, ok := r.index[graphID]
	if !ok {
		return nil
	}
	ids := make([]string, len(g.Fields))
	for i, f := range g.Fields {
		ids[i] = f.ID
	}
	return ids
}

// SetValue records the current-cycle value of a field.  Setting a value
// on a graph or field that is not registered is a no-op, so callers may
// iterate over all possibly relevant fields without checking enablement.
func (r *Registry) SetValue(graphID, fieldID string, v Value) {
	g, ok := r.index[graphID]
	if !ok {
		return
	}
	for _, f := range g.Fields {
		if f.ID == fieldID {
			r.values[graphID][fieldID] = v
			return
		}
	}
}

// Value returns the current-cycle value of a field.  Fields that were
// never assigned this cycle read as unknown.
func (r *Registry) Value(graphID, fieldID string) Value {
	v, ok := r.values[graphID][fieldID]
	if !ok {
		return Unknown()
	}
	return v
}
