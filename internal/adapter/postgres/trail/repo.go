// Package trail implements the Trail definition and roster repository using
// PostgreSQL.
package trail

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/pokeranch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/pokeranch-backend/internal/domain"
)

const (
	table       = "trails"
	rosterTable = "trail_roster"
)

var columns = []string{
	"id", "title", "buffed_types", "base_duration_ms", "created_at", "updated_at",
}

// rosterColumn aggregates the creatures currently out on a trail, oldest first.
const rosterColumn = "ARRAY(SELECT r.creature_id FROM trail_roster r WHERE r.trail_id = trails.id ORDER BY r.added_at, r.creature_id) AS roster"

// Repo provides trail persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new trail repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByTitle returns a trail definition with its roster.
func (r *Repo) GetByTitle(ctx context.Context, title string) (*domain.Trail, error) {
	sql, args, err := selectTrails().
		Where(squirrel.Eq{"title": title}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select trail: %w", err)
	}

	t, err := scanTrail(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, domain.EntityTrail, title)
	}
	return t, nil
}

// List returns all trail definitions ordered by title.
func (r *Repo) List(ctx context.Context) ([]domain.Trail, error) {
	sql, args, err := selectTrails().
		OrderBy("title").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list trails: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list trails: %w", err)
	}
	defer rows.Close()

	trails := make([]domain.Trail, 0)
	for rows.Next() {
		t, err := scanTrail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan trail: %w", err)
		}
		trails = append(trails, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list trails: %w", err)
	}
	return trails, nil
}

// Create inserts a trail definition. A duplicate title yields
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, t *domain.Trail) (*domain.Trail, error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "title", "buffed_types", "base_duration_ms").
		Values(t.ID, t.Title, typeStrings(t.BuffedTypes), t.BaseDuration.Milliseconds()).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert trail: %w", err)
	}

	created := *t
	created.Roster = []uuid.UUID{}
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, domain.EntityTrail, t.Title)
	}
	return &created, nil
}

// Update applies the non-nil fields of params to the trail with the given
// title and returns the updated definition.
func (r *Repo) Update(ctx context.Context, title string, params domain.TrailUpdateParams) (*domain.Trail, error) {
	q := postgres.Builder().
		Update(table).
		Set("updated_at", squirrel.Expr("now()"))

	if params.BuffedTypes != nil {
		q = q.Set("buffed_types", typeStrings(*params.BuffedTypes))
	}
	if params.BaseDuration != nil {
		q = q.Set("base_duration_ms", params.BaseDuration.Milliseconds())
	}

	sql, args, err := q.
		Where(squirrel.Eq{"title": title}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update trail: %w", err)
	}

	var id uuid.UUID
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return nil, postgres.MapError(err, domain.EntityTrail, title)
	}
	return r.GetByTitle(ctx, title)
}

// Delete removes the trail with the given title and returns it as it was.
// Roster rows go with it.
func (r *Repo) Delete(ctx context.Context, title string) (*domain.Trail, error) {
	t, err := r.GetByTitle(ctx, title)
	if err != nil {
		return nil, err
	}

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": t.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build delete trail: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, domain.EntityTrail, title)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.NewNotFoundError(domain.EntityTrail, title)
	}
	return t, nil
}

// AddToRoster puts a creature on a trail's roster. A creature already on
// this roster is left alone; one listed on another roster is moved.
func (r *Repo) AddToRoster(ctx context.Context, trailID, creatureID uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Insert(rosterTable).
		Columns("creature_id", "trail_id").
		Values(creatureID, trailID).
		Suffix("ON CONFLICT (creature_id) DO UPDATE SET trail_id = EXCLUDED.trail_id, added_at = now() WHERE trail_roster.trail_id <> EXCLUDED.trail_id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build add to roster: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, domain.EntityTrail, trailID)
	}
	return nil
}

// RemoveFromRoster takes a creature off whichever roster lists it. Removing
// a creature that is on no roster is not an error.
func (r *Repo) RemoveFromRoster(ctx context.Context, creatureID uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(rosterTable).
		Where(squirrel.Eq{"creature_id": creatureID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build remove from roster: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, domain.EntityCreature, creatureID)
	}
	return nil
}

func selectTrails() squirrel.SelectBuilder {
	return postgres.Builder().
		Select(columns...).
		Column(rosterColumn).
		From(table)
}

func scanTrail(row pgx.Row) (*domain.Trail, error) {
	var (
		t          domain.Trail
		buffed     []string
		durationMs int64
		roster     []uuid.UUID
	)

	err := row.Scan(&t.ID, &t.Title, &buffed, &durationMs, &t.CreatedAt, &t.UpdatedAt, &roster)
	if err != nil {
		return nil, err
	}

	t.BaseDuration = time.Duration(durationMs) * time.Millisecond
	t.BuffedTypes = make([]domain.CreatureType, 0, len(buffed))
	for _, b := range buffed {
		t.BuffedTypes = append(t.BuffedTypes, domain.CreatureType(b))
	}
	t.Roster = roster
	if t.Roster == nil {
		t.Roster = []uuid.UUID{}
	}
	return &t, nil
}

func typeStrings(types []domain.CreatureType) []string {
	out := make([]string, 0, len(types))
	for _, ct := range types {
		out = append(out, string(ct))
	}
	return out
}
