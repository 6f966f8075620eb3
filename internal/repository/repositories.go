// Package repository owns every SQL statement of the application.
//
// Repositories run parameterized queries on the shared pgx pool and return
// model rows; classifying errors into HTTP responses is left to the service
// layer.
package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/deppfellow/catalog-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Notes    *NoteRepository
	Products *ProductRepository
}

// NewRepositories builds every repository on the server's pool.
func NewRepositories(s *server.Server) *Repositories {
	var threshold time.Duration
	if s.Config.Observability != nil {
		threshold = s.Config.Observability.Logging.SlowQueryThreshold
	}

	q := newQuerier(s.DB.Pool, s.Logger, threshold)

	return &Repositories{
		Notes:    NewNoteRepository(q),
		Products: NewProductRepository(q),
	}
}

// querier is the pool plus the slow query log shared by the repositories.
type querier struct {
	pool          *pgxpool.Pool
	logger        *zerolog.Logger
	slowThreshold time.Duration
}

func newQuerier(pool *pgxpool.Pool, logger *zerolog.Logger, slowThreshold time.Duration) *querier {
	return &querier{pool: pool, logger: logger, slowThreshold: slowThreshold}
}

// observe logs statements that ran longer than the slow query threshold.
// It is deferred with the start time of the statement.
func (q *querier) observe(ctx context.Context, name string, start time.Time) {
	if q.slowThreshold <= 0 || q.logger == nil {
		return
	}

	if elapsed := time.Since(start); elapsed > q.slowThreshold {
		q.logger.Warn().
			Ctx(ctx).
			Str("query", name).
			Dur("duration", elapsed).
			Dur("threshold", q.slowThreshold).
			Msg("slow query")
	}
}
