package trail

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/pokeranch-backend/internal/domain"
	"github.com/heartmarshall/pokeranch-backend/pkg/ctxutil"
)

// GetTrail returns the trail definition for a URL slug such as "wettrail".
func (s *Service) GetTrail(ctx context.Context, slug string) (*domain.Trail, error) {
	title, err := titleForSlug(slug)
	if err != nil {
		return nil, err
	}

	t, err := s.trails.GetByTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("get trail: %w", err)
	}
	return t, nil
}

// ListTrails returns every trail definition.
func (s *Service) ListTrails(ctx context.Context) ([]domain.Trail, error) {
	trails, err := s.trails.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list trails: %w", err)
	}
	return trails, nil
}

// CreateTrail adds a trail definition. Requires the trail management
// capability.
func (s *Service) CreateTrail(ctx context.Context, input CreateTrailInput) (*domain.Trail, error) {
	if err := requireManageTrails(ctx); err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	t, err := s.trails.Create(ctx, &domain.Trail{
		Title:        domain.ResolveTrailTitle(input.Title),
		BuffedTypes:  toCreatureTypes(input.BuffedTypes),
		BaseDuration: input.BaseDuration,
	})
	if err != nil {
		return nil, fmt.Errorf("create trail: %w", err)
	}

	s.log.InfoContext(ctx, "trail created",
		slog.String("trail", t.Title),
		slog.Duration("base_duration", t.BaseDuration),
	)
	return t, nil
}

// EditTrail updates the buffed types or base duration of a trail. The
// title cannot change. Requires the trail management capability.
func (s *Service) EditTrail(ctx context.Context, input EditTrailInput) (*domain.Trail, error) {
	if err := requireManageTrails(ctx); err != nil {
		return nil, err
	}

	title, err := titleForSlug(input.Slug)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.TrailUpdateParams{BaseDuration: input.BaseDuration}
	if input.BuffedTypes != nil {
		types := toCreatureTypes(*input.BuffedTypes)
		params.BuffedTypes = &types
	}

	t, err := s.trails.Update(ctx, title, params)
	if err != nil {
		return nil, fmt.Errorf("update trail: %w", err)
	}

	s.log.InfoContext(ctx, "trail edited", slog.String("trail", t.Title))
	return t, nil
}

// DeleteTrail removes a trail definition and returns it. Creatures out on
// the trail keep their assignment and can still collect. Requires the trail
// management capability.
func (s *Service) DeleteTrail(ctx context.Context, slug string) (*domain.Trail, error) {
	if err := requireManageTrails(ctx); err != nil {
		return nil, err
	}

	title, err := titleForSlug(slug)
	if err != nil {
		return nil, err
	}

	t, err := s.trails.Delete(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("delete trail: %w", err)
	}

	s.log.InfoContext(ctx, "trail deleted",
		slog.String("trail", t.Title),
		slog.Int("roster", len(t.Roster)),
	)
	return t, nil
}

func requireManageTrails(ctx context.Context) error {
	if !ctxutil.HasCapability(ctx, domain.CapabilityManageTrails.String()) {
		return domain.ErrUnauthorized
	}
	return nil
}

func titleForSlug(slug string) (string, error) {
	title, ok := domain.TrailTitleFromSlug(domain.TrailSlug(slug))
	if !ok {
		return "", domain.NewNotFoundError(domain.EntityTrail, slug)
	}
	return title, nil
}
