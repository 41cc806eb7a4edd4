package domain

import (
	"time"

	"github.com/google/uuid"
)

// Creature is a player-owned creature. Trail is nil unless the creature is
// out on a trail; Version is the optimistic-concurrency token checked on save.
type Creature struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Species          string
	Nickname         string
	Sprite           string
	EggHatched       bool
	CurrentHappiness int
	TargetHappiness  int
	Trail            *TrailAssignment
	TrailCompletions map[string]int
	Version          int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// OnTrail reports whether the creature is currently out on a trail.
func (c *Creature) OnTrail() bool { return c.Trail != nil }

// OwnedBy reports whether userID owns the creature.
func (c *Creature) OwnedBy(userID uuid.UUID) bool { return c.UserID == userID }

// TimeLeft returns the remaining trail time, or zero when not on a trail.
func (c *Creature) TimeLeft(now time.Time) time.Duration {
	if c.Trail == nil {
		return 0
	}
	return c.Trail.Remaining(now)
}

// ClearTrail drops all trail state. Safe to call when not on a trail.
func (c *Creature) ClearTrail() { c.Trail = nil }

// RecordCompletion increments the completion counter for a trail title.
func (c *Creature) RecordCompletion(title string) {
	if c.TrailCompletions == nil {
		c.TrailCompletions = make(map[string]int)
	}
	c.TrailCompletions[title]++
}

// AddHappiness applies delta and clamps the result to TargetHappiness, so a
// creature above its target is brought down to it.
func (c *Creature) AddHappiness(delta int) {
	c.CurrentHappiness = min(c.CurrentHappiness+delta, c.TargetHappiness)
}

// HappinessHeadroom is how much happiness can still be gained.
func (c *Creature) HappinessHeadroom() int {
	return max(c.TargetHappiness-c.CurrentHappiness, 0)
}
