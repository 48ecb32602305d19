// Package user_repo implements the user persistence port on PostgreSQL.
package user_repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"disputeresolver/internal/domain/auth"
	"disputeresolver/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var userColumns = []string{"id", "phone", "name", "password_hash", "created_at"}

type PgUserRepo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func NewPgUserRepo(pg *postgres.Postgres) auth.UserRepo {
	return &PgUserRepo{db: pg.Pool, builder: pg.Builder}
}

func (r *PgUserRepo) CreateUser(ctx context.Context, newUser auth.NewUser) (*auth.User, error) {
	query, args, err := r.builder.Insert("users").
		Columns("phone", "name", "password_hash").
		Values(newUser.Phone, newUser.Name, newUser.PasswordHash).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if postgres.IsPgErrorUniqueViolation(err) {
		return nil, auth.ErrPhoneTaken
	}
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (r *PgUserRepo) GetUserByPhone(ctx context.Context, phone string) (*auth.User, error) {
	return r.getOne(ctx, squirrel.Eq{"phone": phone})
}

func (r *PgUserRepo) GetUserByID(ctx context.Context, id int64) (*auth.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

func (r *PgUserRepo) getOne(ctx context.Context, where squirrel.Eq) (*auth.User, error) {
	query, args, err := r.builder.Select(userColumns...).
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	return user, nil
}

func scanUser(row pgx.Row) (*auth.User, error) {
	var u auth.User
	err := row.Scan(&u.ID, &u.Phone, &u.Name, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
