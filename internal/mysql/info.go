// Package mysql provides the stats source for the plugin: a thin
// client over database/sql that fetches the server's status counters,
// active storage engines and visible databases.
package mysql

import (
	"context"
	dbsql "database/sql"
	"fmt"
	"strconv"
	"strings"

	driver "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
)

const defaultUnixSocket = "/var/run/mysqld/mysqld.sock"

// Info queries a MySQL server for monitoring data.  The status counter
// snapshot and the storage engine set are each fetched at most once per
// Info instance; subsequent calls return the memoized result so that a
// poll cycle observes one consistent snapshot.
type Info struct {
	db *dbsql.DB

	stats        map[string]float64
	statsFetched bool

	engines        map[string]bool
	enginesFetched bool
}

// NewInfo opens a client for the given server.  An empty host selects
// the local unix socket transport.
func NewInfo(host string, port int, database, user, password string) (*Info, error) {
	db, err := dbsql.Open("mysql", dsn(host, port, database, user, password))
	if err != nil {
		return nil, errors.Wrap(err, "opening mysql connection")
	}
	return &Info{db: db}, nil
}

func dsn(host string, port int, database, user, password string) string {
	cfg := driver.NewConfig()
	cfg.User = user
	cfg.Passwd = password
	cfg.DBName = database
	if host != "" {
		cfg.Net = "tcp"
		cfg.Addr = fmt.Sprintf("%s:%d", host, port)
	} else {
		cfg.Net = "unix"
		cfg.Addr = defaultUnixSocket
	}
	return cfg.FormatDSN()
}

// Stats returns the server status counters.  Counters with non-numeric
// values are omitted; a missing counter name is a valid state for
// callers, not an error.  The snapshot is fetched once and memoized.
func (m *Info) Stats(ctx context.Context) (map[string]float64, error) {
	if m.statsFetched {
		return m.stats, nil
	}

	rows, err := m.db.QueryContext(ctx, "SHOW /*!50002 GLOBAL */ STATUS")
	if err != nil {
		return nil, errors.Wrap(err, "querying server status")
	}
	defer rows.Close()

	stats := map[string]float64{}
	for rows.Next() {
		var name string
		var value dbsql.NullString
		if err := rows.Scan(&name, &value); err != nil {
			return nil, errors.Wrap(err, "scanning status row")
		}
		if !value.Valid {
			continue
		}
		if f, err := strconv.ParseFloat(value.String, 64); err == nil {
			stats[name] = f
		}
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "reading status rows")
	}

	m.stats = stats
	m.statsFetched = true
	return m.stats, nil
}

// StorageEngines returns the set of active storage engines, lower-cased.
// Engines reported with support NO or DISABLED are excluded.  The set
// is fetched once and memoized.
func (m *Info) StorageEngines(ctx context.Context) (map[string]bool, error) {
	if m.enginesFetched {
		return m.engines, nil
	}

	rows, err := m.db.QueryContext(ctx, "SHOW STORAGE ENGINES")
	if err != nil {
		return nil, errors.Wrap(err, "querying storage engines")
	}
	defer rows.Close()

	// The column set varies across server versions, so scan whatever
	// comes back and use the two leading columns.
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	engines := map[string]bool{}
	for rows.Next() {
		scan := make([]interface{}, len(cols))
		for i := range scan {
			scan[i] = &dbsql.NullString{}
		}
		if err := rows.Scan(scan...); err != nil {
			return nil, errors.Wrap(err, "scanning storage engine row")
		}

		name := scan[0].(*dbsql.NullString)
		support := scan[1].(*dbsql.NullString)
		if !name.Valid || !support.Valid {
			continue
		}
		switch strings.ToUpper(support.String) {
		case "YES", "DEFAULT":
			engines[strings.ToLower(name.String)] = true
		}
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "reading storage engine rows")
	}

	m.engines = engines
	m.enginesFetched = true
	return m.engines, nil
}

// Databases returns the names of databases visible to the configured
// user.
func (m *Info) Databases(ctx context.Context) ([]string, error) {
	rows, err := m.db.QueryContext(ctx, "SHOW DATABASES")
	if err != nil {
		return nil, errors.Wrap(err, "querying databases")
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errors.Wrap(err, "scanning database row")
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "reading database rows")
	}
	return names, nil
}

// Close releases the underlying connection pool.
func (m *Info) Close() error {
	return m.db.Close()
}
