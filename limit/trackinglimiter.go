package limit

import (
	"reflect"
	"strings"

	"github.com/jt0/quantity/logs"
)

// TrackingLimiter keeps the current amount and any override for each Limited
// type, keyed by the type's unqualified name. It is not safe for concurrent
// use.
type TrackingLimiter struct {
	Currents  map[string]tracked `dynamodbav:",omitempty"`
	Overrides map[string]tracked `dynamodbav:",omitempty"`
	dirty     bool
}

// tracked is an amount together with the measure it was recorded in.
type tracked struct {
	Measure Measure
	Amount  amount
}

func track(a Amount) tracked {
	return tracked{Measure: a.Measure(), Amount: a.amount()}
}

func (l *TrackingLimiter) Current(limited Limited) Amount {
	zero := limited.LimitAmount().Zero()

	current, ok := l.lookup(l.Currents, "current", limited)
	if !ok {
		return zero
	}

	return zero.convert(current)
}

func (l *TrackingLimiter) SetCurrent(limited Limited, current Amount) {
	if l.Currents == nil {
		l.Currents = make(map[string]tracked)
	}
	l.Currents[key(limited)] = track(current)

	l.dirty = true
}

// Override returns the override for limited, or nil if there is none.
func (l *TrackingLimiter) Override(limited Limited) Amount {
	override, ok := l.lookup(l.Overrides, "override", limited)
	if !ok {
		return nil
	}

	return limited.LimitAmount().convert(override)
}

// SetOverride raises limited's maximum above its default. An override that
// does not exceed the default removes any existing one.
func (l *TrackingLimiter) SetOverride(limited Limited, override Amount) {
	name := key(limited)
	if override.Exceeds(limited.DefaultLimit()) {
		if l.Overrides == nil {
			l.Overrides = make(map[string]tracked)
		}
		l.Overrides[name] = track(override)
	} else {
		if _, ok := l.Overrides[name]; ok {
			logs.Warn.Printf("Override %v for %s does not exceed default %v; removing", override, name, limited.DefaultLimit())
		}
		delete(l.Overrides, name)
	}

	l.dirty = true
}

// lookup returns the stored amount for limited. An amount recorded in a
// different measure than limited now uses is discarded.
func (l *TrackingLimiter) lookup(amounts map[string]tracked, kind string, limited Limited) (amount, bool) {
	name := key(limited)
	stored, ok := amounts[name]
	if !ok {
		return 0, false
	}

	if measure := limited.LimitAmount().Measure(); stored.Measure != measure {
		logs.Warn.Printf("Discarding %s %d for %s: recorded as %s, expected %s", kind, stored.Amount, name, stored.Measure, measure)
		delete(amounts, name)
		l.dirty = true
		return 0, false
	}

	return stored.Amount, true
}

func (l *TrackingLimiter) Maximum(limited Limited) Amount {
	defaultLimit := limited.DefaultLimit()

	if override := l.Override(limited); override != nil && override.Exceeds(defaultLimit) {
		return override
	}
	return defaultLimit
}

func (l *TrackingLimiter) IsDirty() bool {
	return l.dirty
}

func (l *TrackingLimiter) ClearDirty() {
	l.dirty = false
}

func key(limited Limited) string {
	return unqualifiedTypeName(reflect.TypeOf(limited))
}

func unqualifiedTypeName(t reflect.Type) string {
	s := t.String()
	return s[strings.Index(s, ".")+1:]
}
