// Package plugin implements the mysqlstats munin plugin: a fixed
// catalogue of MySQL server graphs, filtered at startup by the
// munin-node configuration, populated once per invocation from a
// single status counter snapshot.
package plugin

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/munin-contrib/munin-mysqlstats/internal/munin"
	"github.com/munin-contrib/munin-mysqlstats/internal/utils/filter"
)

var logger = logrus.WithFields(logrus.Fields{"plugin": "mysqlstats"})

// StatsSource supplies the raw monitoring data for one plugin run.
// Implementations fetch the counter snapshot and the engine set at
// most once per instance.
type StatsSource interface {
	Stats(ctx context.Context) (map[string]float64, error)
	StorageEngines(ctx context.Context) (map[string]bool, error)
	Databases(ctx context.Context) ([]string, error)
}

// Plugin is one configured plugin invocation.  The graph registry is
// built once by New and never changes afterwards.
type Plugin struct {
	source   StatsSource
	registry *munin.Registry
}

// New builds the graph registry for the given configuration.  Graphs
// are considered in catalogue order; engine-specific graphs are only
// built when their engine passes the engine filter and is active on
// the server.  A failure to read the server's engine list disables
// engine-specific graphs instead of failing, so autoconf runs work
// against unreachable servers.
func New(ctx context.Context, conf *Config, source StatsSource) (*Plugin, error) {
	p := &Plugin{
		source:   source,
		registry: munin.NewRegistry(),
	}

	graphFilter := filter.NewNameFilter(conf.IncludeGraphs, conf.ExcludeGraphs)
	engineFilter := filter.NewNameFilter(conf.IncludeEngines, conf.ExcludeEngines)

	for _, def := range graphCatalogue {
		if !graphFilter.Enabled(def.graph.ID) {
			continue
		}
		if def.engine != "" && !p.engineIncluded(ctx, engineFilter, def.engine) {
			continue
		}
		if err := p.registry.Add(def.graph); err != nil {
			return nil, err
		}
	}

	if err := validateRules(p.registry); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Plugin) engineIncluded(ctx context.Context, engineFilter *filter.NameFilter, name string) bool {
	if !engineFilter.Enabled(name) {
		return false
	}
	engines, err := p.source.StorageEngines(ctx)
	if err != nil {
		logger.WithError(err).Debug("Could not determine active storage engines")
		return false
	}
	return engines[name]
}

// Registry exposes the built graph set.
func (p *Plugin) Registry() *munin.Registry {
	return p.registry
}

// Fetch runs one poll cycle: fetch the counter snapshot, assign every
// field of every enabled graph exactly one value, and emit value mode
// output.  A failed snapshot fetch aborts the cycle before anything is
// written.
func (p *Plugin) Fetch(ctx context.Context, w io.Writer) error {
	stats, err := p.source.Stats(ctx)
	if err != nil {
		return errors.Wrap(err, "fetching server status")
	}
	snap := Snapshot(stats)

	for _, g := range p.registry.Graphs() {
		rules := valueRules[g.ID]
		for _, f := range g.Fields {
			p.registry.SetValue(g.ID, f.ID, rules[f.ID].resolve(snap))
		}
	}
	return munin.WriteValues(w, p.registry)
}

// Configure emits configuration mode output for all enabled graphs.
// When dirty is set (munin's dirtyconfig capability), value mode output
// for the same cycle follows the configuration block.
func (p *Plugin) Configure(ctx context.Context, w io.Writer, dirty bool) error {
	if err := munin.WriteConfig(w, p.registry); err != nil {
		return err
	}
	if dirty {
		return p.Fetch(ctx, w)
	}
	return nil
}

// Autoconf reports whether the plugin can be auto-configured: the
// server must be reachable and expose at least one database.  Failures
// are reported as "no", never propagated.
func (p *Plugin) Autoconf(ctx context.Context, w io.Writer) error {
	dbs, err := p.source.Databases(ctx)
	if err != nil {
		logger.WithError(err).Debug("Autoconf connection check failed")
		_, werr := fmt.Fprintf(w, "no (%s)\n", err)
		return werr
	}
	if len(dbs) == 0 {
		_, werr := fmt.Fprintln(w, "no (no databases visible)")
		return werr
	}
	_, werr := fmt.Fprintln(w, "yes")
	return werr
}
