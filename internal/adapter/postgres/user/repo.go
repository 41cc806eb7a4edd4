// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/pokeranch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/pokeranch-backend/internal/domain"
)

const table = "users"

var columns = []string{
	"id", "email", "username", "role",
	"balance", "egg_vouchers",
	"money_multi", "happiness_multi", "trail_multi",
	"created_at", "updated_at",
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	u, err := r.getOne(ctx, q)
	if err != nil {
		return nil, postgres.MapError(err, domain.EntityUser, id)
	}
	return u, nil
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"email": email})

	u, err := r.getOne(ctx, q)
	if err != nil {
		return nil, postgres.MapError(err, domain.EntityUser, email)
	}
	return u, nil
}

// ApplyRewards atomically adds currency and vouchers to the user's wallet
// and returns the updated user.
func (r *Repo) ApplyRewards(ctx context.Context, id uuid.UUID, currency int64, vouchers int) (*domain.User, error) {
	q := postgres.Builder().
		Update(table).
		Set("balance", squirrel.Expr("balance + ?", currency)).
		Set("egg_vouchers", squirrel.Expr("egg_vouchers + ?", vouchers)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build apply rewards: %w", err)
	}

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, domain.EntityUser, id)
	}
	return u, nil
}

// SetRole changes the role of the user with the given email. Returns
// domain.ErrNotFound when no user has that email or the role is unchanged.
func (r *Repo) SetRole(ctx context.Context, email string, role domain.UserRole) error {
	q := postgres.Builder().
		Update(table).
		Set("role", string(role)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.And{
			squirrel.Eq{"email": email},
			squirrel.NotEq{"role": string(role)},
		})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build set role: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, domain.EntityUser, email)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError(domain.EntityUser, email)
	}
	return nil
}

func (r *Repo) getOne(ctx context.Context, q squirrel.SelectBuilder) (*domain.User, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user: %w", err)
	}
	return scanUser(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	err := row.Scan(
		&u.ID, &u.Email, &u.Username, &role,
		&u.Balance, &u.EggVouchers,
		&u.MoneyMulti, &u.HappinessMulti, &u.TrailMulti,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	u.Role = domain.UserRole(role)
	return &u, nil
}
