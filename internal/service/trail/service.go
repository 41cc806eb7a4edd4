package trail

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/pokeranch-backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ApplyRewards(ctx context.Context, id uuid.UUID, currency int64, vouchers int) (*domain.User, error)
}

type creatureRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Creature, error)
	Save(ctx context.Context, c *domain.Creature) error
}

type trailRepo interface {
	GetByTitle(ctx context.Context, title string) (*domain.Trail, error)
	List(ctx context.Context) ([]domain.Trail, error)
	Create(ctx context.Context, t *domain.Trail) (*domain.Trail, error)
	Update(ctx context.Context, title string, params domain.TrailUpdateParams) (*domain.Trail, error)
	Delete(ctx context.Context, title string) (*domain.Trail, error)

	AddToRoster(ctx context.Context, trailID, creatureID uuid.UUID) error
	RemoveFromRoster(ctx context.Context, creatureID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Options tunes the service. Zero values select the defaults.
type Options struct {
	// CollectMaxAttempts bounds how often Collect retries after losing a
	// concurrent update of the same creature. Default 1.
	CollectMaxAttempts int
	Catalog            *Catalog
	Rand               RandSource
	Now                func() time.Time
}

// Service implements dispatching creatures on trails, settling finished
// trails and managing trail definitions.
type Service struct {
	users     userRepo
	creatures creatureRepo
	trails    trailRepo
	tx        txManager
	log       *slog.Logger

	catalog     *Catalog
	rng         RandSource
	now         func() time.Time
	maxAttempts int
}

// NewService creates a new Trail service.
func NewService(
	log *slog.Logger,
	users userRepo,
	creatures creatureRepo,
	trails trailRepo,
	tx txManager,
	opts Options,
) *Service {
	s := &Service{
		users:       users,
		creatures:   creatures,
		trails:      trails,
		tx:          tx,
		log:         log.With("service", "trail"),
		catalog:     opts.Catalog,
		rng:         opts.Rand,
		now:         opts.Now,
		maxAttempts: max(opts.CollectMaxAttempts, 1),
	}
	if s.catalog == nil {
		s.catalog = DefaultCatalog()
	}
	if s.rng == nil {
		s.rng = NewRand(0)
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *Service) clock() time.Time {
	return s.now().UTC()
}
