package plugin

import (
	"github.com/pkg/errors"

	"github.com/munin-contrib/munin-mysqlstats/internal/munin"
)

// Snapshot is an immutable view of the server status counters taken
// once per poll cycle.  A missing counter is a valid state, surfaced as
// an unknown value rather than an error.
type Snapshot map[string]float64

// Get returns the named counter, or the unknown marker when the server
// did not report it.
func (s Snapshot) Get(name string) munin.Value {
	v, ok := s[name]
	if !ok {
		return munin.Unknown()
	}
	return munin.NewValue(v)
}

// valueRule maps one graph field to the raw counter(s) it is computed
// from.  Pass-through fields name a single counter; composite fields
// carry a derivation over the snapshot.  Either way a missing operand
// yields an unknown value, never a substituted number.
type valueRule struct {
	counter string
	derive  func(Snapshot) munin.Value
}

func (r valueRule) resolve(s Snapshot) munin.Value {
	if r.derive != nil {
		return r.derive(s)
	}
	return s.Get(r.counter)
}

func counter(name string) valueRule {
	return valueRule{counter: name}
}

func diff(a, b string) valueRule {
	return valueRule{derive: func(s Snapshot) munin.Value {
		return s.Get(a).Sub(s.Get(b))
	}}
}

func sum(a, b string) valueRule {
	return valueRule{derive: func(s Snapshot) munin.Value {
		return s.Get(a).Add(s.Get(b))
	}}
}

// pagesAsBytes scales a buffer pool page count to bytes.
func pagesAsBytes(pages string) valueRule {
	return valueRule{derive: func(s Snapshot) munin.Value {
		return s.Get(pages).Mul(s.Get("Innodb_page_size"))
	}}
}

// valueRules statically enumerates the value source of every field in
// the graph catalogue.  Completeness against the catalogue is checked
// at startup by validateRules.
var valueRules = map[string]map[string]valueRule{
	"mysql_connections": {
		"conn":         counter("Connections"),
		"abort_conn":   counter("Aborted_connects"),
		"abort_client": counter("Aborted_clients"),
	},
	"mysql_traffic": {
		"rx": counter("Bytes_received"),
		"tx": counter("Bytes_sent"),
	},
	"mysql_slowqueries": {
		"queries": counter("Slow_queries"),
	},
	"mysql_rowmodifications": {
		"insert": counter("Handler_write"),
		"update": counter("Handler_update"),
		"delete": counter("Handler_delete"),
	},
	"mysql_rowreads": {
		"first":    counter("Handler_read_first"),
		"key":      counter("Handler_read_key"),
		"next":     counter("Handler_read_next"),
		"prev":     counter("Handler_read_prev"),
		"rnd":      counter("Handler_read_rnd"),
		"rnd_next": counter("Handler_read_rnd_next"),
	},
	"mysql_tablelocks": {
		"waited":    counter("Table_locks_waited"),
		"immediate": counter("Table_locks_immediate"),
	},
	"mysql_threads": {
		"running": counter("Threads_running"),
		"idle":    diff("Threads_connected", "Threads_running"),
		"cached":  counter("Threads_cached"),
		"total":   sum("Threads_connected", "Threads_cached"),
	},
	"mysql_commits_rollbacks": {
		"commit":   counter("Handler_commit"),
		"rollback": counter("Handler_rollback"),
	},
	"mysql_innodb_buffer_pool_util": {
		"dirty": pagesAsBytes("Innodb_buffer_pool_pages_dirty"),
		"clean": {derive: func(s Snapshot) munin.Value {
			clean := s.Get("Innodb_buffer_pool_pages_data").Sub(s.Get("Innodb_buffer_pool_pages_dirty"))
			return clean.Mul(s.Get("Innodb_page_size"))
		}},
		"misc":  pagesAsBytes("Innodb_buffer_pool_pages_misc"),
		"free":  pagesAsBytes("Innodb_buffer_pool_pages_free"),
		"total": pagesAsBytes("Innodb_buffer_pool_pages_total"),
	},
	"mysql_innodb_buffer_pool_activity": {
		"created": counter("Innodb_pages_created"),
		"read":    counter("Innodb_pages_read"),
		"written": counter("Innodb_pages_written"),
	},
	"mysql_innodb_buffer_pool_read_reqs": {
		"disk":   counter("Innodb_buffer_pool_reads"),
		"buffer": diff("Innodb_buffer_pool_read_requests", "Innodb_buffer_pool_reads"),
	},
	"mysql_innodb_row_ops": {
		"inserted": counter("Innodb_rows_inserted"),
		"updated":  counter("Innodb_rows_updated"),
		"deleted":  counter("Innodb_rows_deleted"),
		"read":     counter("Innodb_rows_read"),
	},
}

// validateRules checks that every field of every registered graph has a
// value rule, so a catalogue/table mismatch fails at startup instead of
// producing silent gaps mid-cycle.
func validateRules(r *munin.Registry) error {
	for _, g := range r.Graphs() {
		rules := valueRules[g.ID]
		for _, f := range g.Fields {
			rule, ok := rules[f.ID]
			if !ok || (rule.counter == "" && rule.derive == nil) {
				return errors.Errorf("no value rule for field %s.%s", g.ID, f.ID)
			}
		}
	}
	return nil
}
