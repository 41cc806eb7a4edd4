package trail

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/pokeranch-backend/internal/domain"
	"github.com/heartmarshall/pokeranch-backend/pkg/ctxutil"
)

// Dispatch sends the caller's creature on a trail and pre-generates the
// events it will find there. A creature that is already out yields a
// DispatchAlreadyOnTrail result, not an error.
func (s *Service) Dispatch(ctx context.Context, input DispatchInput) (*DispatchResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	title := domain.ResolveTrailTitle(input.Title)

	var result *DispatchResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		trail, err := s.trails.GetByTitle(txCtx, title)
		if err != nil {
			return fmt.Errorf("get trail: %w", err)
		}

		creature, err := s.loadOwnedCreature(txCtx, userID, input.CreatureID)
		if err != nil {
			return err
		}
		if !creature.EggHatched {
			return domain.ErrEggNotHatched
		}
		if creature.OnTrail() {
			result = s.alreadyOnTrail(creature)
			return nil
		}

		user, err := s.users.GetByID(txCtx, userID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		if err := s.trails.AddToRoster(txCtx, trail.ID, creature.ID); err != nil {
			return fmt.Errorf("add to roster: %w", err)
		}

		events, ok := domain.EventRangeFor(trail.Title)
		if !ok {
			s.log.WarnContext(txCtx, "trail has no event range, using fallback",
				slog.String("trail", trail.Title),
			)
			events = fallbackEvents
		}

		now := s.clock()
		duration := trail.EffectiveDuration(user.EffectiveTrailMulti())
		creature.Trail = &domain.TrailAssignment{
			TrailID:    trail.ID,
			TrailTitle: trail.Title,
			StartedAt:  now,
			Duration:   duration,
			FinishesAt: now.Add(duration),
			Log:        generateLog(s.rng, s.catalog, events, now, now.Add(duration)),
		}

		if err := s.creatures.Save(txCtx, creature); err != nil {
			return fmt.Errorf("save creature: %w", err)
		}

		result = &DispatchResult{
			Status:   DispatchStarted,
			Message:  MsgDispatched,
			TimeLeft: duration,
			Sprite:   creature.Sprite,
			Trail:    creature.Trail,
		}
		return nil
	})

	// A concurrent dispatch got there first.
	if errors.Is(err, domain.ErrConflict) {
		creature, getErr := s.creatures.GetByID(ctx, input.CreatureID)
		if getErr == nil && creature.OnTrail() {
			return s.alreadyOnTrail(creature), nil
		}
	}
	if err != nil {
		return nil, err
	}

	if result.Status == DispatchStarted {
		s.log.InfoContext(ctx, "creature dispatched",
			slog.String("user_id", userID.String()),
			slog.String("creature_id", input.CreatureID.String()),
			slog.String("trail", title),
			slog.Duration("duration", result.TimeLeft),
			slog.Int("events", len(result.Trail.Log)),
		)
	}

	return result, nil
}

func (s *Service) alreadyOnTrail(c *domain.Creature) *DispatchResult {
	return &DispatchResult{
		Status:   DispatchAlreadyOnTrail,
		Message:  MsgAlreadyOnTrail,
		TimeLeft: c.TimeLeft(s.clock()),
		Sprite:   c.Sprite,
		Trail:    c.Trail,
	}
}

// loadOwnedCreature returns the creature if it exists and belongs to userID.
func (s *Service) loadOwnedCreature(ctx context.Context, userID, creatureID uuid.UUID) (*domain.Creature, error) {
	creature, err := s.creatures.GetByID(ctx, creatureID)
	if err != nil {
		return nil, fmt.Errorf("get creature: %w", err)
	}
	if !creature.OwnedBy(userID) {
		return nil, domain.ErrNotOwned
	}
	return creature, nil
}
