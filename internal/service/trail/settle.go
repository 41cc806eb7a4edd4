package trail

import (
	"github.com/heartmarshall/pokeranch-backend/internal/domain"
)

// settle replays a finished trail log in order. Currency is scaled by the
// user's money multiplier, happiness by the happiness multiplier and is
// clamped to the creature's target after every event, including events
// without a happiness effect; vouchers are not
// scaled. The creature's happiness is updated in place, the wallet deltas
// are returned for the caller to persist.
//
// Every key is resolved before anything is applied, so an unknown key leaves
// the creature untouched.
func settle(catalog *Catalog, user *domain.User, c *domain.Creature, log []domain.TrailLogEntry) (Rewards, error) {
	effects := make([]domain.EventEffect, 0, len(log))
	for _, e := range log {
		effect, err := catalog.Effect(e.EventKey)
		if err != nil {
			return Rewards{}, err
		}
		effects = append(effects, effect)
	}

	var (
		rewards        Rewards
		happinessTotal int
		headroom       = c.HappinessHeadroom()
		moneyMulti     = user.EffectiveMoneyMulti()
		happinessMulti = user.EffectiveHappinessMulti()
	)
	for _, effect := range effects {
		rewards.Currency += effect.Currency * moneyMulti
		rewards.Vouchers += effect.Vouchers
		delta := effect.Happiness * happinessMulti
		c.AddHappiness(delta)
		if delta > 0 {
			happinessTotal += delta
		}
	}
	rewards.Happiness = min(happinessTotal, headroom)

	return rewards, nil
}
