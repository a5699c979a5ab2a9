// Package dbmetrics wraps *sql.DB so that catalog reads are timed through the
// shared metrics collectors, and exposes the executor interface repositories
// depend on.
package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/framelight/FLS-BookingService/pkg/metrics"
)

// DBExecutor is the read surface repositories use. Satisfied by *sql.DB and
// *DB; the catalog store never writes.
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

// DB wraps *sql.DB with query timing.
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

const poolSampleInterval = 15 * time.Second

// WrapWithDefault wraps db and starts a goroutine sampling connection pool
// stats until stopCh is closed.
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, serviceName string, stopCh <-chan struct{}) *DB {
	wrapped := &DB{db: db, metrics: m}

	go func() {
		ticker := time.NewTicker(poolSampleInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				stats := db.Stats()
				m.SetDBConnections(stats.OpenConnections, stats.InUse, stats.Idle)
			case <-stopCh:
				return
			}
		}
	}()

	return wrapped
}

func (d *DB) observe(operation string, start time.Time) {
	d.metrics.ObserveDBQuery(operation, time.Since(start).Seconds())
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer d.observe("query", time.Now())
	return d.db.QueryContext(ctx, query, args...)
}
