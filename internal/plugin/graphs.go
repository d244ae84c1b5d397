package plugin

import (
	"github.com/munin-contrib/munin-mysqlstats/internal/munin"
)

const (
	graphCategory = "MySQL"
	graphArgs     = "--base 1000 --lower-limit 0"
)

// graphDef declares one graph of the catalogue.  engine, when set,
// names a storage engine that must be active (and pass the engine
// filter) for the graph to be considered at all.
type graphDef struct {
	engine string
	graph  *munin.Graph
}

// graphCatalogue is the full set of graphs this plugin can report,
// in emission order.  Which of them are built into the registry is
// decided once at startup by the graph and engine filters.
var graphCatalogue = []graphDef{
	{graph: &munin.Graph{
		ID:       "mysql_connections",
		Title:    "MySQL - Connections per second",
		Category: graphCategory,
		Args:     graphArgs,
		Info:     "MySQL Database Server new and aborted connections per second.",
		Fields: []munin.Field{
			{ID: "conn", Label: "conn", Type: munin.Derive, Draw: "LINE2", Min: "0",
				Info: "The number of connection attempts to the MySQL server."},
			{ID: "abort_conn", Label: "abort_conn", Type: munin.Derive, Draw: "LINE2", Min: "0",
				Info: "The number of failed attempts to connect to the MySQL server."},
			{ID: "abort_client", Label: "abort_client", Type: munin.Derive, Draw: "LINE2", Min: "0",
				Info: "The number of connections that were aborted, because the client died without closing the connection properly."},
		},
	}},
	{graph: &munin.Graph{
		ID:       "mysql_traffic",
		Title:    "MySQL - Network Traffic (bytes/sec)",
		Category: graphCategory,
		Args:     graphArgs,
		VLabel:   "bytes in (-) / out (+) per second",
		Info:     "MySQL Database Server Network Traffic in bytes per second.",
		Fields: []munin.Field{
			{ID: "rx", Label: "bytes", Type: munin.Derive, Draw: "LINE2", Min: "0", Hidden: true},
			{ID: "tx", Label: "bytes", Type: munin.Derive, Draw: "LINE2", Min: "0", Negative: "rx",
				Info: "Bytes In (-) / Out (+) per second."},
		},
	}},
	{graph: &munin.Graph{
		ID:       "mysql_slowqueries",
		Title:    "MySQL - Slow Queries per second",
		Category: graphCategory,
		Args:     graphArgs,
		Info:     "The number of queries that have taken more than long_query_time seconds.",
		Fields: []munin.Field{
			{ID: "queries", Label: "queries", Type: munin.Derive, Draw: "LINE2", Min: "0"},
		},
	}},
	{graph: &munin.Graph{
		ID:       "mysql_rowmodifications",
		Title:    "MySQL - Row Insert, Delete, Updates per second",
		Category: graphCategory,
		Args:     graphArgs,
		Info:     "MySQL Inserted, Deleted, Updated Rows per second.",
		Fields: []munin.Field{
			{ID: "insert", Label: "insert", Type: munin.Derive, Draw: "AREASTACK", Min: "0",
				Info: "The number of requests to insert rows into tables."},
			{ID: "update", Label: "update", Type: munin.Derive, Draw: "AREASTACK", Min: "0",
				Info: "The number of requests to update rows in tables."},
			{ID: "delete", Label: "delete", Type: munin.Derive, Draw: "AREASTACK", Min: "0",
				Info: "The number of requests to delete rows from tables."},
		},
	}},
	{graph: &munin.Graph{
		ID:       "mysql_rowreads",
		Title:    "MySQL - Row Reads per second",
		Category: graphCategory,
		Args:     graphArgs,
		Info:     "MySQL Row Reads per second.",
		Fields: []munin.Field{
			{ID: "first", Label: "first", Type: munin.Derive, Draw: "AREASTACK", Min: "0",
				Info: "Requests to read first entry in index."},
			{ID: "key", Label: "key", Type: munin.Derive, Draw: "AREASTACK", Min: "0",
				Info: "Requests to read a row based on a key."},
			{ID: "next", Label: "next", Type: munin.Derive, Draw: "AREASTACK", Min: "0",
				Info: "Requests to read the next row in key order."},
			{ID: "prev", Label: "prev", Type: munin.Derive, Draw: "AREASTACK", Min: "0",
				Info: "Requests to read the previous row in key order."},
			{ID: "rnd", Label: "rnd", Type: munin.Derive, Draw: "AREASTACK", Min: "0",
				Info: "Requests to read a row based on a fixed position."},
			{ID: "rnd_next", Label: "rnd_next", Type: munin.Derive, Draw: "AREASTACK", Min: "0",
				Info: "Requests to read the next row in the data file."},
		},
	}},
	{graph: &munin.Graph{
		ID:       "mysql_tablelocks",
		Title:    "MySQL - Table Locks per second",
		Category: graphCategory,
		Args:     graphArgs,
		Info:     "MySQL Table Locks per second.",
		Fields: []munin.Field{
			{ID: "waited", Label: "waited", Type: munin.Derive, Draw: "AREASTACK", Min: "0",
				Info: "The number of times that a request for a table lock could not be granted immediately and a wait was needed."},
			{ID: "immediate", Label: "immediate", Type: munin.Derive, Draw: "AREASTACK", Min: "0",
				Info: "The number of times that a request for a table lock could be granted immediately."},
		},
	}},
	{graph: &munin.Graph{
		ID:       "mysql_threads",
		Title:    "MySQL - Threads",
		Category: graphCategory,
		Args:     graphArgs,
		Info:     "MySQL Database Server threads status.",
		Fields: []munin.Field{
			{ID: "running", Label: "running", Type: munin.Gauge, Draw: "AREASTACK",
				Info: "Number of threads executing queries."},
			{ID: "idle", Label: "idle", Type: munin.Gauge, Draw: "AREASTACK",
				Info: "Number of idle threads with connected clients."},
			{ID: "cached", Label: "cached", Type: munin.Gauge, Draw: "AREASTACK",
				Info: "Number of cached threads without connected clients."},
			{ID: "total", Label: "total", Type: munin.Gauge, Draw: "LINE2", Colour: "000000",
				Info: "Total number of threads."},
		},
	}},
	{graph: &munin.Graph{
		ID:       "mysql_commits_rollbacks",
		Title:    "MySQL - Commits and Rollbacks",
		Category: graphCategory,
		Args:     graphArgs,
		Info:     "MySQL Commits and Rollbacks per second.",
		Fields: []munin.Field{
			{ID: "commit", Label: "commit", Type: munin.Derive, Draw: "LINE2", Min: "0",
				Info: "The number of commits per second."},
			{ID: "rollback", Label: "rollback", Type: munin.Derive, Draw: "LINE2", Min: "0",
				Info: "The number of rollbacks per second."},
		},
	}},
	{engine: "innodb", graph: &munin.Graph{
		ID:       "mysql_innodb_buffer_pool_util",
		Title:    "InnoDB - Buffer Pool Utilization (bytes)",
		Category: graphCategory,
		Args:     graphArgs,
		Info:     "MySQL Database Server InnoDB Buffer Pool Utilization in bytes.",
		Fields: []munin.Field{
			{ID: "dirty", Label: "dirty", Type: munin.Gauge, Draw: "AREASTACK",
				Info: "Buffer pool space used by dirty pages."},
			{ID: "clean", Label: "clean", Type: munin.Gauge, Draw: "AREASTACK",
				Info: "Buffer pool space used by clean pages."},
			{ID: "misc", Label: "misc", Type: munin.Gauge, Draw: "AREASTACK",
				Info: "Buffer pool space used for administrative overhead."},
			{ID: "free", Label: "free", Type: munin.Gauge, Draw: "AREASTACK",
				Info: "Free space in buffer pool."},
			{ID: "total", Label: "total", Type: munin.Gauge, Draw: "LINE2", Colour: "000000"},
		},
	}},
	{engine: "innodb", graph: &munin.Graph{
		ID:       "mysql_innodb_buffer_pool_activity",
		Title:    "InnoDB - Buffer Pool Activity (Pages per second)",
		Category: graphCategory,
		Args:     graphArgs,
		Info:     "Pages read into, written from and created in buffer pool.",
		Fields: []munin.Field{
			{ID: "created", Label: "created", Type: munin.Derive, Draw: "LINE2", Min: "0",
				Info: "Pages created in the buffer pool without reading corresponding disk pages."},
			{ID: "read", Label: "read", Type: munin.Derive, Draw: "LINE2", Min: "0",
				Info: "Pages read into the buffer pool from disk."},
			{ID: "written", Label: "written", Type: munin.Derive, Draw: "LINE2", Min: "0",
				Info: "Pages written to disk from the buffer pool."},
		},
	}},
	{engine: "innodb", graph: &munin.Graph{
		ID:       "mysql_innodb_buffer_pool_read_reqs",
		Title:    "InnoDB - Buffer Pool Read Requests per second",
		Category: graphCategory,
		Args:     graphArgs,
		Info:     "Read requests satisfied from buffer pool (hits) vs. disk (misses).",
		Fields: []munin.Field{
			{ID: "disk", Label: "disk", Type: munin.Derive, Draw: "AREASTACK", Min: "0",
				Info: "Misses - Logical read requests requiring read from disk."},
			{ID: "buffer", Label: "buffer", Type: munin.Derive, Draw: "AREASTACK", Min: "0",
				Info: "Hits - Logical read requests satisfied from buffer pool without requiring read from disk."},
		},
	}},
	{engine: "innodb", graph: &munin.Graph{
		ID:       "mysql_innodb_row_ops",
		Title:    "InnoDB - Row Operations per Second",
		Category: graphCategory,
		Args:     graphArgs,
		Info:     "Inserted, updated, deleted, read rows per second.",
		Fields: []munin.Field{
			{ID: "inserted", Label: "inserted", Type: munin.Derive, Draw: "AREASTACK", Min: "0",
				Info: "Rows inserted per second."},
			{ID: "updated", Label: "updated", Type: munin.Derive, Draw: "AREASTACK", Min: "0",
				Info: "Rows updated per second."},
			{ID: "deleted", Label: "deleted", Type: munin.Derive, Draw: "AREASTACK", Min: "0",
				Info: "Rows deleted per second."},
			{ID: "read", Label: "read", Type: munin.Derive, Draw: "AREASTACK", Min: "0",
				Info: "Rows read per second."},
		},
	}},
}
