package trail

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/pokeranch-backend/internal/domain"
	"github.com/heartmarshall/pokeranch-backend/pkg/ctxutil"
)

// VisibleLog returns the events the caller's creature has already run into
// on its current trail. Events scheduled after now stay hidden.
func (s *Service) VisibleLog(ctx context.Context, creatureID uuid.UUID) (*LogResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := validateCreatureID(creatureID); err != nil {
		return nil, err
	}

	creature, err := s.loadOwnedCreature(ctx, userID, creatureID)
	if err != nil {
		return nil, err
	}

	result := &LogResult{
		OnTrail: creature.OnTrail(),
		Species: creature.Species,
	}
	if !result.OnTrail {
		result.Message = MsgNothingToCollect
		return result, nil
	}

	result.Entries = creature.Trail.VisibleLog(s.clock())
	if len(result.Entries) == 0 {
		result.Message = creature.Species + " has not found anything yet in the trail. Please check back later."
	}
	return result, nil
}
