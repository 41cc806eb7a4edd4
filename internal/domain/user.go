package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the player account as seen by the trail subsystem: wallet,
// voucher stock and the shop-bought multipliers.
type User struct {
	ID             uuid.UUID
	Email          string
	Username       string
	Role           UserRole
	Balance        int64
	EggVouchers    int
	MoneyMulti     int
	HappinessMulti int
	TrailMulti     int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// EffectiveMoneyMulti returns MoneyMulti, treating non-positive values as 1.
func (u *User) EffectiveMoneyMulti() int64 {
	return int64(atLeastOne(u.MoneyMulti))
}

// EffectiveHappinessMulti returns HappinessMulti, treating non-positive values as 1.
func (u *User) EffectiveHappinessMulti() int {
	return atLeastOne(u.HappinessMulti)
}

// EffectiveTrailMulti returns TrailMulti, treating non-positive values as 1.
func (u *User) EffectiveTrailMulti() int {
	return atLeastOne(u.TrailMulti)
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
