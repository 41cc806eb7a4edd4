// Package creature implements the Creature repository using PostgreSQL.
package creature

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/pokeranch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/pokeranch-backend/internal/domain"
)

const table = "creatures"

var columns = []string{
	"id", "user_id", "species", "nickname", "sprite", "egg_hatched",
	"current_happiness", "target_happiness",
	"trail_id", "trail_title", "trail_started_at", "trail_duration_ms", "trail_finishes_at",
	"trail_log", "trail_completions",
	"version", "created_at", "updated_at",
}

// Repo provides creature persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new creature repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a creature with its trail state.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Creature, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select creature: %w", err)
	}

	c, err := scanCreature(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, domain.EntityCreature, id)
	}
	return c, nil
}

// Save writes the mutable fields of c if its version still matches the
// stored one. On success c.Version and c.UpdatedAt are refreshed. A stale or
// missing row yields domain.ErrConflict.
func (r *Repo) Save(ctx context.Context, c *domain.Creature) error {
	q := postgres.Builder().
		Update(table).
		Set("current_happiness", c.CurrentHappiness).
		Set("trail_completions", completionsOf(c)).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("now()"))

	if a := c.Trail; a != nil {
		q = q.
			Set("trail_id", a.TrailID).
			Set("trail_title", a.TrailTitle).
			Set("trail_started_at", a.StartedAt).
			Set("trail_duration_ms", a.Duration.Milliseconds()).
			Set("trail_finishes_at", a.FinishesAt).
			Set("trail_log", encodeLog(a.Log))
	} else {
		q = q.
			Set("trail_id", nil).
			Set("trail_title", nil).
			Set("trail_started_at", nil).
			Set("trail_duration_ms", nil).
			Set("trail_finishes_at", nil).
			Set("trail_log", []string{})
	}

	sql, args, err := q.
		Where(squirrel.Eq{"id": c.ID, "version": c.Version}).
		Suffix("RETURNING version, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build save creature: %w", err)
	}

	var (
		version   int64
		updatedAt time.Time
	)
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&version, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("creature %s at version %d: %w", c.ID, c.Version, domain.ErrConflict)
	}
	if err != nil {
		return postgres.MapError(err, domain.EntityCreature, c.ID)
	}

	c.Version = version
	c.UpdatedAt = updatedAt
	return nil
}

func scanCreature(row pgx.Row) (*domain.Creature, error) {
	var (
		c           domain.Creature
		trailID     *uuid.UUID
		trailTitle  *string
		startedAt   *time.Time
		durationMs  *int64
		finishesAt  *time.Time
		log         []string
		completions map[string]int
	)

	err := row.Scan(
		&c.ID, &c.UserID, &c.Species, &c.Nickname, &c.Sprite, &c.EggHatched,
		&c.CurrentHappiness, &c.TargetHappiness,
		&trailID, &trailTitle, &startedAt, &durationMs, &finishesAt,
		&log, &completions,
		&c.Version, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.TrailCompletions = completions
	if c.TrailCompletions == nil {
		c.TrailCompletions = make(map[string]int)
	}

	if trailID == nil || finishesAt == nil {
		return &c, nil
	}

	entries, err := decodeLog(log)
	if err != nil {
		return nil, fmt.Errorf("creature %s: %w", c.ID, err)
	}

	a := &domain.TrailAssignment{
		TrailID:    *trailID,
		FinishesAt: finishesAt.UTC(),
		Log:        entries,
	}
	if trailTitle != nil {
		a.TrailTitle = *trailTitle
	}
	if startedAt != nil {
		a.StartedAt = startedAt.UTC()
	}
	if durationMs != nil {
		a.Duration = time.Duration(*durationMs) * time.Millisecond
	}
	c.Trail = a

	return &c, nil
}

func encodeLog(entries []domain.TrailLogEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.String())
	}
	return out
}

func decodeLog(raw []string) ([]domain.TrailLogEntry, error) {
	entries := make([]domain.TrailLogEntry, 0, len(raw))
	for _, s := range raw {
		e, err := domain.ParseTrailLogEntry(s)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func completionsOf(c *domain.Creature) map[string]int {
	if c.TrailCompletions == nil {
		return map[string]int{}
	}
	return c.TrailCompletions
}
