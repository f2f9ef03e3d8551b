package limit

import (
	"github.com/jt0/quantity/gomerr"
)

// Limited is implemented by anything whose use is metered. LimitAmount is how
// much one use consumes and DefaultLimit the maximum absent an override.
type Limited interface {
	DefaultLimit() Amount
	LimitAmount() Amount
}

type Limiter interface {
	Dirtyable
	Current(limited Limited) Amount
	SetCurrent(limited Limited, current Amount)
	Override(limited Limited) Amount
	SetOverride(limited Limited, override Amount)
	Maximum(limited Limited) Amount
}

type Dirtyable interface {
	IsDirty() bool
	ClearDirty()
}

// CheckThenIncrement records one more use of limited, failing with an
// ExceededError if that would take the current amount past the maximum.
func CheckThenIncrement(limiter Limiter, limited Limited) gomerr.Gomerr {
	current := limiter.Current(limited)
	maximum := limiter.Maximum(limited)

	attempted, ge := current.Increment(limited.LimitAmount())
	if ge != nil {
		return ge
	}

	if attempted.Equals(current) {
		return nil
	}

	if attempted.Exceeds(maximum) {
		return Exceeded(limited, maximum, current, attempted)
	}

	limiter.SetCurrent(limited, attempted)

	return nil
}

// Decrement releases one use of limited.
func Decrement(limiter Limiter, limited Limited) gomerr.Gomerr {
	current := limiter.Current(limited)

	updated, ge := current.Decrement(limited.LimitAmount())
	if ge != nil {
		return ge
	}

	if updated.Equals(current) {
		return nil
	}

	limiter.SetCurrent(limited, updated)

	return nil
}
