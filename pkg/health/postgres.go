package health

import (
	"context"

	"disputeresolver/pkg/postgres"
)

// PostgresChecker checks PostgreSQL connectivity.
type PostgresChecker struct {
	pg *postgres.Postgres
}

// NewPostgresChecker creates a PostgreSQL health checker.
func NewPostgresChecker(pg *postgres.Postgres) *PostgresChecker {
	return &PostgresChecker{pg: pg}
}

// Name returns "postgres".
func (c *PostgresChecker) Name() string {
	return "postgres"
}

// Check pings the database.
func (c *PostgresChecker) Check(ctx context.Context) Result {
	if err := c.pg.Pool.Ping(ctx); err != nil {
		return Result{Status: StatusDown, Message: err.Error()}
	}
	return Result{Status: StatusUp}
}
