package trail

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/pokeranch-backend/internal/domain"
	"github.com/heartmarshall/pokeranch-backend/pkg/ctxutil"
)

// fakeClock is a settable clock for the service.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

// world is an in-memory backing store wired into the repository mocks.
// Creature saves are compare-and-swap on Version like the real repository.
type world struct {
	mu       sync.Mutex
	user     domain.User
	creature domain.Creature
	trails   map[string]*domain.Trail
	roster   map[uuid.UUID]uuid.UUID

	users     *userRepoMock
	creatures *creatureRepoMock
	trailRepo *trailRepoMock
	tx        *txManagerMock
	clock     *fakeClock
}

var testStart = time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)

func newWorld(t *testing.T) *world {
	t.Helper()

	userID := uuid.New()
	w := &world{
		user: domain.User{
			ID:             userID,
			Username:       "ash",
			Role:           domain.UserRoleUser,
			MoneyMulti:     1,
			HappinessMulti: 1,
			TrailMulti:     1,
		},
		creature: domain.Creature{
			ID:               uuid.New(),
			UserID:           userID,
			Species:          "eevee",
			Sprite:           "eevee.png",
			EggHatched:       true,
			CurrentHappiness: 20,
			TargetHappiness:  100,
			TrailCompletions: map[string]int{},
			Version:          1,
		},
		trails: map[string]*domain.Trail{
			domain.TrailTitleWild: {ID: uuid.New(), Title: domain.TrailTitleWild, BaseDuration: time.Hour},
			domain.TrailTitleWet:  {ID: uuid.New(), Title: domain.TrailTitleWet, BaseDuration: 10 * time.Second},
		},
		roster: map[uuid.UUID]uuid.UUID{},
		clock:  &fakeClock{t: testStart},
	}

	w.users = &userRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			w.mu.Lock()
			defer w.mu.Unlock()
			if id != w.user.ID {
				return nil, domain.ErrNotFound
			}
			u := w.user
			return &u, nil
		},
		ApplyRewardsFunc: func(ctx context.Context, id uuid.UUID, currency int64, vouchers int) (*domain.User, error) {
			w.mu.Lock()
			defer w.mu.Unlock()
			w.user.Balance += currency
			w.user.EggVouchers += vouchers
			u := w.user
			return &u, nil
		},
	}

	w.creatures = &creatureRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Creature, error) {
			w.mu.Lock()
			defer w.mu.Unlock()
			if id != w.creature.ID {
				return nil, domain.ErrNotFound
			}
			return cloneCreature(&w.creature), nil
		},
		SaveFunc: func(ctx context.Context, c *domain.Creature) error {
			w.mu.Lock()
			defer w.mu.Unlock()
			if c.Version != w.creature.Version {
				return domain.ErrConflict
			}
			c.Version++
			w.creature = *cloneCreature(c)
			return nil
		},
	}

	w.trailRepo = &trailRepoMock{
		GetByTitleFunc: func(ctx context.Context, title string) (*domain.Trail, error) {
			w.mu.Lock()
			defer w.mu.Unlock()
			tr, ok := w.trails[title]
			if !ok {
				return nil, domain.ErrNotFound
			}
			cp := *tr
			return &cp, nil
		},
		AddToRosterFunc: func(ctx context.Context, trailID, creatureID uuid.UUID) error {
			w.mu.Lock()
			w.roster[creatureID] = trailID
			w.mu.Unlock()
			return nil
		},
		RemoveFromRosterFunc: func(ctx context.Context, creatureID uuid.UUID) error {
			w.mu.Lock()
			delete(w.roster, creatureID)
			w.mu.Unlock()
			return nil
		},
	}

	w.tx = &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}

	return w
}

func (w *world) service(opts Options) *Service {
	if opts.Now == nil {
		opts.Now = w.clock.Now
	}
	if opts.Rand == nil {
		opts.Rand = NewRand(7)
	}
	return NewService(slog.Default(), w.users, w.creatures, w.trailRepo, w.tx, opts)
}

func (w *world) ownerCtx() context.Context {
	return ctxutil.WithUserID(context.Background(), w.user.ID)
}

func (w *world) stored() *domain.Creature {
	w.mu.Lock()
	defer w.mu.Unlock()
	return cloneCreature(&w.creature)
}

func (w *world) wallet() (int64, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.user.Balance, w.user.EggVouchers
}

// putOnTrail stores the creature as out on title with the given log, finishing at finish.
func (w *world) putOnTrail(title string, finish time.Time, keys ...string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	tr := w.trails[title]
	log := make([]domain.TrailLogEntry, 0, len(keys))
	for i, k := range keys {
		log = append(log, domain.TrailLogEntry{ScheduledAt: finish.Add(-time.Duration(len(keys)-i) * time.Second), EventKey: k})
	}
	w.creature.Trail = &domain.TrailAssignment{
		TrailID:    tr.ID,
		TrailTitle: title,
		StartedAt:  finish.Add(-tr.BaseDuration),
		Duration:   tr.BaseDuration,
		FinishesAt: finish,
		Log:        log,
	}
	w.roster[w.creature.ID] = tr.ID
}

func cloneCreature(c *domain.Creature) *domain.Creature {
	cp := *c
	cp.TrailCompletions = maps.Clone(c.TrailCompletions)
	if c.Trail != nil {
		a := *c.Trail
		a.Log = slices.Clone(c.Trail.Log)
		cp.Trail = &a
	}
	return &cp
}
