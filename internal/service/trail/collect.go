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

// Collect settles the caller's creature's trail. Rewards are applied only
// when the trail has finished, its log is non-empty and the creature is
// still flagged as out; every other case is a result, not an error.
//
// A collect that loses a concurrent update of the same creature is retried
// and then observes the already-settled state, so rewards are paid once.
func (s *Service) Collect(ctx context.Context, creatureID uuid.UUID) (*CollectResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := validateCreatureID(creatureID); err != nil {
		return nil, err
	}

	for attempt := 1; ; attempt++ {
		result, err := s.collectOnce(ctx, userID, creatureID)
		if errors.Is(err, domain.ErrConflict) && attempt < s.maxAttempts {
			s.log.DebugContext(ctx, "collect lost a concurrent update, retrying",
				slog.String("creature_id", creatureID.String()),
				slog.Int("attempt", attempt),
			)
			continue
		}
		if err != nil {
			return nil, err
		}

		if result.Status == CollectRewarded {
			s.log.InfoContext(ctx, "trail collected",
				slog.String("user_id", userID.String()),
				slog.String("creature_id", creatureID.String()),
				slog.String("trail", result.TrailTitle),
				slog.Int64("currency", result.Running.Currency),
				slog.Int("vouchers", result.Running.Vouchers),
				slog.Int("happiness", result.Running.Happiness),
			)
		}
		return result, nil
	}
}

func (s *Service) collectOnce(ctx context.Context, userID, creatureID uuid.UUID) (*CollectResult, error) {
	var result *CollectResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		creature, err := s.loadOwnedCreature(txCtx, userID, creatureID)
		if err != nil {
			return err
		}

		now := s.clock()
		remaining := creature.TimeLeft(now)
		if remaining > 0 {
			result = &CollectResult{
				Status:     CollectStillOnTrail,
				Message:    MsgStillOnTrail,
				TimeLeft:   remaining,
				TrailTitle: creature.Trail.TrailTitle,
				Sprite:     creature.Sprite,
			}
			return nil
		}

		if err := s.trails.RemoveFromRoster(txCtx, creature.ID); err != nil {
			return fmt.Errorf("remove from roster: %w", err)
		}

		if !creature.OnTrail() || len(creature.Trail.Log) == 0 {
			if creature.OnTrail() {
				creature.ClearTrail()
				if err := s.creatures.Save(txCtx, creature); err != nil {
					return fmt.Errorf("reset trail: %w", err)
				}
			}
			result = &CollectResult{
				Status:  CollectNothingToCollect,
				Message: MsgNothingToCollect,
				Sprite:  creature.Sprite,
			}
			return nil
		}

		user, err := s.users.GetByID(txCtx, userID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		title := creature.Trail.TrailTitle
		rewards, err := settle(s.catalog, user, creature, creature.Trail.Log)
		if err != nil {
			return fmt.Errorf("settle creature %s: %w", creature.ID, err)
		}

		creature.ClearTrail()
		creature.RecordCompletion(title)
		if err := s.creatures.Save(txCtx, creature); err != nil {
			return fmt.Errorf("save creature: %w", err)
		}

		updated, err := s.users.ApplyRewards(txCtx, userID, rewards.Currency, rewards.Vouchers)
		if err != nil {
			return fmt.Errorf("apply rewards: %w", err)
		}

		result = &CollectResult{
			Status:     CollectRewarded,
			Message:    MsgCollected,
			TrailTitle: title,
			Balance:    updated.Balance,
			Vouchers:   updated.EggVouchers,
			Happiness:  creature.CurrentHappiness,
			Running:    rewards,
			Sprite:     creature.Sprite,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
