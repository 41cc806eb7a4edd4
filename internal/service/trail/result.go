package trail

import (
	"time"

	"github.com/heartmarshall/pokeranch-backend/internal/domain"
)

// Messages returned with trail outcomes.
const (
	MsgDispatched       = "Pokemon sent on trail"
	MsgAlreadyOnTrail   = "Pokemon is already on trail"
	MsgStillOnTrail     = "Pokemon is still on trail"
	MsgNothingToCollect = "Pokemon not on trail"
	MsgCollected        = "Trail completed"
)

// DispatchStatus is the outcome of a dispatch request.
type DispatchStatus int

const (
	DispatchStarted DispatchStatus = iota + 1
	DispatchAlreadyOnTrail
)

// DispatchResult describes a dispatch. TimeLeft is the remaining trail time
// in either case.
type DispatchResult struct {
	Status   DispatchStatus
	Message  string
	TimeLeft time.Duration
	Sprite   string
	Trail    *domain.TrailAssignment
}

// CollectStatus is the outcome of a collect request.
type CollectStatus int

const (
	CollectRewarded CollectStatus = iota + 1
	CollectStillOnTrail
	CollectNothingToCollect
)

// Rewards are the gains applied by one settlement.
type Rewards struct {
	Currency  int64
	Vouchers  int
	Happiness int
}

// CollectResult describes a collect. Balance, Vouchers, Happiness and
// Running are set only for CollectRewarded; TimeLeft only for
// CollectStillOnTrail.
type CollectResult struct {
	Status     CollectStatus
	Message    string
	TimeLeft   time.Duration
	TrailTitle string
	Balance    int64
	Vouchers   int
	Happiness  int
	Running    Rewards
	Sprite     string
}

// LogResult is the part of a creature's trail log that has already happened.
// OnTrail is false when the creature is not out on a trail; Message is set
// when nothing has happened yet.
type LogResult struct {
	OnTrail bool
	Species string
	Entries []domain.TrailLogEntry
	Message string
}
