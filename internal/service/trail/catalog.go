package trail

import (
	"fmt"
	"maps"
	"slices"

	"github.com/heartmarshall/pokeranch-backend/internal/domain"
)

// Event keys of the default catalog. Stored trail logs reference these
// strings, so existing keys must not be renamed or removed.
const (
	EventFoundBerry         = "foundBerry"
	EventFoundNugget        = "foundNugget"
	EventFoundPokeDollars   = "foundPokeDollars"
	EventFoundEggVoucher    = "foundEggVoucher"
	EventBattledTrainer     = "battledTrainer"
	EventBattledWildPokemon = "battledWildPokemon"
	EventMadeFriend         = "madeFriend"
	EventRestedByStream     = "restedByStream"
)

// Catalog maps trail event keys to their rewards. It is immutable.
type Catalog struct {
	effects map[string]domain.EventEffect
	keys    []string
}

// NewCatalog builds a catalog from the given effects. Keys are kept in
// sorted order so that seeded draws are reproducible.
func NewCatalog(effects map[string]domain.EventEffect) *Catalog {
	c := &Catalog{effects: maps.Clone(effects)}
	c.keys = slices.Sorted(maps.Keys(c.effects))
	return c
}

// DefaultCatalog returns the catalog used by the game.
func DefaultCatalog() *Catalog {
	return NewCatalog(map[string]domain.EventEffect{
		EventFoundBerry:         {Currency: 50},
		EventFoundNugget:        {Currency: 200},
		EventFoundPokeDollars:   {Currency: 100},
		EventFoundEggVoucher:    {Vouchers: 1},
		EventBattledTrainer:     {Happiness: 10},
		EventBattledWildPokemon: {Currency: 25, Happiness: 5},
		EventMadeFriend:         {Happiness: 15},
		EventRestedByStream:     {Happiness: 5},
	})
}

// Keys returns the event keys in sorted order.
func (c *Catalog) Keys() []string {
	return slices.Clone(c.keys)
}

// Len returns the number of events in the catalog.
func (c *Catalog) Len() int { return len(c.keys) }

// Effect returns the reward of an event key. Unknown keys yield
// domain.ErrUnknownEvent.
func (c *Catalog) Effect(key string) (domain.EventEffect, error) {
	e, ok := c.effects[key]
	if !ok {
		return domain.EventEffect{}, fmt.Errorf("%w: %q", domain.ErrUnknownEvent, key)
	}
	return e, nil
}

func (c *Catalog) keyAt(i int) string { return c.keys[i] }
