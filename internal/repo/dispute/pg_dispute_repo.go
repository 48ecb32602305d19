// Package dispute_repo implements the dispute persistence port on PostgreSQL.
package dispute_repo

import (
	"context"
	"database/sql"
	"fmt"

	"disputeresolver/internal/domain/dispute"
	"disputeresolver/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var disputeColumns = []string{
	"id", "transaction_ref", "counterparty", "amount", "filer_phone",
	"reason", "status", "settlement_ref", "remarks", "created_at", "resolved_at",
}

type PgDisputeRepo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func NewPgDisputeRepo(pg *postgres.Postgres) dispute.DisputeRepo {
	return &PgDisputeRepo{db: pg.Pool, builder: pg.Builder}
}

// newRepo is used by tests to inject a mock executor.
func newRepo(db postgres.Executor, builder squirrel.StatementBuilderType) *PgDisputeRepo {
	return &PgDisputeRepo{db: db, builder: builder}
}

func (r *PgDisputeRepo) CreateDispute(ctx context.Context, newDispute dispute.NewDispute) (*dispute.Dispute, error) {
	query, args, err := r.builder.Insert("disputes").
		Columns("transaction_ref", "counterparty", "amount", "filer_phone",
			"reason", "status", "settlement_ref", "remarks", "created_at", "resolved_at").
		Values(newDispute.TransactionRef, newDispute.Counterparty, newDispute.Amount,
			newDispute.FilerPhone, nullable(newDispute.Reason), newDispute.Status,
			nullable(newDispute.SettlementRef), newDispute.Remarks,
			newDispute.CreatedAt, newDispute.ResolvedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, query, args...).Scan(&id)
	if postgres.IsPgErrorUniqueViolation(err) {
		return nil, dispute.ErrAlreadyExists
	}
	if err != nil {
		return nil, fmt.Errorf("insert dispute: %w", err)
	}

	return &dispute.Dispute{
		ID:            id,
		Status:        newDispute.Status,
		DisputeInfo:   newDispute.DisputeInfo,
		SettlementRef: newDispute.SettlementRef,
		Remarks:       newDispute.Remarks,
		CreatedAt:     newDispute.CreatedAt,
		ResolvedAt:    newDispute.ResolvedAt,
	}, nil
}

func (r *PgDisputeRepo) GetDisputeByID(ctx context.Context, id int64) (*dispute.Dispute, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

func (r *PgDisputeRepo) GetDisputeByTransactionRef(ctx context.Context, transactionRef string) (*dispute.Dispute, error) {
	return r.getOne(ctx, squirrel.Eq{"transaction_ref": transactionRef})
}

func (r *PgDisputeRepo) GetDisputesByFiler(ctx context.Context, filerPhone string) ([]dispute.Dispute, error) {
	return r.getAll(ctx, squirrel.Eq{"filer_phone": filerPhone})
}

func (r *PgDisputeRepo) GetDisputesInStatus(ctx context.Context, status dispute.Status) ([]dispute.Dispute, error) {
	return r.getAll(ctx, squirrel.Eq{"status": status})
}

func (r *PgDisputeRepo) UpdateDispute(ctx context.Context, d dispute.Dispute) error {
	query, args, err := r.builder.Update("disputes").
		Set("status", d.Status).
		Set("settlement_ref", nullable(d.SettlementRef)).
		Set("remarks", d.Remarks).
		Set("resolved_at", d.ResolvedAt).
		Where(squirrel.Eq{"id": d.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	if _, err = r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update dispute: %w", err)
	}
	return nil
}

func (r *PgDisputeRepo) DeleteDisputesByFiler(ctx context.Context, filerPhone string) (int64, error) {
	query, args, err := r.builder.Delete("disputes").
		Where(squirrel.Eq{"filer_phone": filerPhone}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete query: %w", err)
	}

	ct, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete disputes: %w", err)
	}
	return ct.RowsAffected(), nil
}

func (r *PgDisputeRepo) getOne(ctx context.Context, where squirrel.Eq) (*dispute.Dispute, error) {
	disputes, err := r.getAll(ctx, where)
	if err != nil {
		return nil, err
	}
	if len(disputes) == 0 {
		return nil, nil
	}
	return &disputes[0], nil
}

func (r *PgDisputeRepo) getAll(ctx context.Context, where squirrel.Eq) ([]dispute.Dispute, error) {
	query, args, err := r.builder.Select(disputeColumns...).
		From("disputes").
		Where(where).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query disputes: %w", err)
	}
	defer rows.Close()

	return parseDisputeRows(rows)
}

func parseDisputeRows(rows pgx.Rows) ([]dispute.Dispute, error) {
	var disputes []dispute.Dispute
	for rows.Next() {
		var (
			d             dispute.Dispute
			rawStatus     string
			reason        sql.NullString
			settlementRef sql.NullString
			resolvedAt    sql.NullTime
		)
		err := rows.Scan(&d.ID, &d.TransactionRef, &d.Counterparty, &d.Amount,
			&d.FilerPhone, &reason, &rawStatus, &settlementRef, &d.Remarks,
			&d.CreatedAt, &resolvedAt)
		if err != nil {
			return nil, fmt.Errorf("scan dispute row: %w", err)
		}

		status, err := dispute.ParseStatus(rawStatus)
		if err != nil {
			return nil, fmt.Errorf("parse dispute row: %w", err)
		}
		d.Status = status
		d.Reason = reason.String
		d.SettlementRef = settlementRef.String
		if resolvedAt.Valid {
			d.ResolvedAt = &resolvedAt.Time
		}

		disputes = append(disputes, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dispute rows: %w", err)
	}

	return disputes, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
