package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/pokeranch-backend/internal/domain"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with unit multipliers and an empty wallet.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	u := domain.User{
		ID:             uuid.New(),
		Email:          "trainer-" + suffix + "@example.com",
		Username:       "trainer_" + suffix,
		Role:           domain.UserRoleUser,
		MoneyMulti:     1,
		HappinessMulti: 1,
		TrailMulti:     1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, username, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID, u.Email, u.Username, string(u.Role), u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed user: %v", err)
	}

	return u
}

// SeedCreature inserts a hatched creature owned by userID, off trail.
func SeedCreature(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Creature {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.Creature{
		ID:               uuid.New(),
		UserID:           userID,
		Species:          "eevee",
		Nickname:         "Eevee " + uniqueSuffix(),
		Sprite:           "https://sprites.example/eevee.png",
		EggHatched:       true,
		CurrentHappiness: 20,
		TargetHappiness:  100,
		TrailCompletions: map[string]int{},
		Version:          1,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO creatures (id, user_id, species, nickname, sprite, egg_hatched,
		                        current_happiness, target_happiness, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		c.ID, c.UserID, c.Species, c.Nickname, c.Sprite, c.EggHatched,
		c.CurrentHappiness, c.TargetHappiness, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed creature: %v", err)
	}

	return c
}

// SeedTrail inserts a trail definition with a unique title.
func SeedTrail(t *testing.T, pool *pgxpool.Pool, baseDuration time.Duration) domain.Trail {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	tr := domain.Trail{
		ID:           uuid.New(),
		Title:        "Test Trail " + uniqueSuffix(),
		BaseDuration: baseDuration,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO trails (id, title, base_duration_ms, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		tr.ID, tr.Title, tr.BaseDuration.Milliseconds(), tr.CreatedAt, tr.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed trail: %v", err)
	}

	return tr
}
