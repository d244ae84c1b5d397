package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/munin-contrib/munin-mysqlstats/internal/munin"
)

func TestSnapshotGet(t *testing.T) {
	snap := Snapshot{"Threads_running": 3, "Slow_queries": 0}

	assert.Equal(t, munin.NewValue(3), snap.Get("Threads_running"))
	// A zero counter is a known zero, not an unknown.
	assert.Equal(t, munin.NewValue(0), snap.Get("Slow_queries"))
	assert.Equal(t, munin.Unknown(), snap.Get("Threads_connected"))
}

func TestThreadDerivations(t *testing.T) {
	snap := Snapshot{
		"Threads_connected": 10,
		"Threads_running":   3,
		"Threads_cached":    2,
	}
	rules := valueRules["mysql_threads"]

	assert.Equal(t, munin.NewValue(3), rules["running"].resolve(snap))
	assert.Equal(t, munin.NewValue(7), rules["idle"].resolve(snap))
	assert.Equal(t, munin.NewValue(2), rules["cached"].resolve(snap))
	assert.Equal(t, munin.NewValue(12), rules["total"].resolve(snap))
}

func TestThreadDerivationsWithMissingOperands(t *testing.T) {
	rules := valueRules["mysql_threads"]

	// Missing Threads_connected poisons both derivations but not the
	// pass-through fields.
	snap := Snapshot{"Threads_running": 3, "Threads_cached": 2}
	assert.Equal(t, munin.NewValue(3), rules["running"].resolve(snap))
	assert.Equal(t, munin.Unknown(), rules["idle"].resolve(snap))
	assert.Equal(t, munin.Unknown(), rules["total"].resolve(snap))

	snap = Snapshot{"Threads_connected": 10}
	assert.Equal(t, munin.Unknown(), rules["idle"].resolve(snap))
	assert.Equal(t, munin.Unknown(), rules["total"].resolve(snap))
}

func TestBufferPoolHitDerivation(t *testing.T) {
	rules := valueRules["mysql_innodb_buffer_pool_read_reqs"]

	snap := Snapshot{
		"Innodb_buffer_pool_read_requests": 1000,
		"Innodb_buffer_pool_reads":         40,
	}
	assert.Equal(t, munin.NewValue(40), rules["disk"].resolve(snap))
	assert.Equal(t, munin.NewValue(960), rules["buffer"].resolve(snap))

	// A missing miss counter must not degrade the hit count to the
	// request count.
	snap = Snapshot{"Innodb_buffer_pool_read_requests": 1000}
	assert.Equal(t, munin.Unknown(), rules["buffer"].resolve(snap))
}

func TestBufferPoolBytesDerivations(t *testing.T) {
	rules := valueRules["mysql_innodb_buffer_pool_util"]

	snap := Snapshot{
		"Innodb_page_size":               16384,
		"Innodb_buffer_pool_pages_data":  100,
		"Innodb_buffer_pool_pages_dirty": 25,
		"Innodb_buffer_pool_pages_misc":  5,
		"Innodb_buffer_pool_pages_free":  20,
		"Innodb_buffer_pool_pages_total": 128,
	}
	assert.Equal(t, munin.NewValue(25*16384), rules["dirty"].resolve(snap))
	assert.Equal(t, munin.NewValue(75*16384), rules["clean"].resolve(snap))
	assert.Equal(t, munin.NewValue(5*16384), rules["misc"].resolve(snap))
	assert.Equal(t, munin.NewValue(20*16384), rules["free"].resolve(snap))
	assert.Equal(t, munin.NewValue(128*16384), rules["total"].resolve(snap))

	// No page size means no byte figure for any category.
	delete(snap, "Innodb_page_size")
	for _, field := range []string{"dirty", "clean", "misc", "free", "total"} {
		assert.Equal(t, munin.Unknown(), rules[field].resolve(snap), field)
	}
}

func TestValueRulesCoverCatalogue(t *testing.T) {
	r := munin.NewRegistry()
	for _, def := range graphCatalogue {
		require.NoError(t, r.Add(def.graph))
	}
	assert.NoError(t, validateRules(r))
}

func TestValidateRulesDetectsMissingRule(t *testing.T) {
	r := munin.NewRegistry()
	require.NoError(t, r.Add(&munin.Graph{
		ID:     "mysql_uptime",
		Title:  "MySQL - Uptime",
		Fields: []munin.Field{{ID: "uptime", Label: "uptime"}},
	}))

	err := validateRules(r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mysql_uptime.uptime")
}
