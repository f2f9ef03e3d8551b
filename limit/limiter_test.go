package limit_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/jt0/quantity/_test/assert"
	"github.com/jt0/quantity/datasize"
	"github.com/jt0/quantity/gomerr"
	"github.com/jt0/quantity/limit"
	"github.com/jt0/quantity/logs"
)

type upload struct {
	size datasize.DataSize
}

func (upload) DefaultLimit() limit.Amount  { return limit.Size(datasize.Megabytes(1)) }
func (u upload) LimitAmount() limit.Amount { return limit.Size(u.size) }

type widget struct{}

func (widget) DefaultLimit() limit.Amount { return limit.Count(2) }
func (widget) LimitAmount() limit.Amount  { return limit.Count(1) }

// quota is metered by count or by size depending on how it is configured.
type quota struct {
	sized bool
}

func (q quota) DefaultLimit() limit.Amount {
	if q.sized {
		return limit.Size(datasize.Kilobytes(1))
	}
	return limit.Count(10)
}

func (q quota) LimitAmount() limit.Amount {
	if q.sized {
		return limit.Size(datasize.Bytes(1))
	}
	return limit.Count(1)
}

func captureWarnings(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	logs.Warn.SetOutput(&buf)
	t.Cleanup(func() { logs.Warn.SetOutput(os.Stderr) })
	return &buf
}

func TestCheckThenIncrementCount(t *testing.T) {
	l := &limit.TrackingLimiter{}

	assert.Success(t, limit.CheckThenIncrement(l, widget{}))
	assert.Success(t, limit.CheckThenIncrement(l, widget{}))
	assert.ErrorType(t, limit.CheckThenIncrement(l, widget{}), new(limit.ExceededError), "Should have failed on increment past limit")
	assert.Equals(t, limit.Count(2), l.Current(widget{}))

	assert.Success(t, limit.Decrement(l, widget{}))
	assert.Success(t, limit.CheckThenIncrement(l, widget{}))
}

func TestCheckThenIncrementSize(t *testing.T) {
	l := &limit.TrackingLimiter{}
	half := upload{datasize.Kilobytes(512)}

	assert.Success(t, limit.CheckThenIncrement(l, half))
	assert.Success(t, limit.CheckThenIncrement(l, upload{datasize.Bits(4096 * 1024)}))
	assert.Equals(t, limit.Size(datasize.Megabytes(1)), l.Current(half))

	ge := limit.CheckThenIncrement(l, upload{datasize.Bits(1)})
	assert.ErrorType(t, ge, new(limit.ExceededError))

	ee := ge.(*limit.ExceededError)
	assert.Equals(t, "upload", ee.Limited)
	assert.Equals(t, limit.Size(datasize.Megabytes(1)), ee.Limit)
	assert.Equals(t, limit.Size(datasize.Must(datasize.Megabytes(1).Add(datasize.Bits(1)))), ee.Attempted)

	l.SetOverride(half, limit.Size(datasize.Megabytes(2)))
	assert.Equals(t, limit.Size(datasize.Megabytes(2)), l.Maximum(half))
	assert.Success(t, limit.CheckThenIncrement(l, upload{datasize.Bits(1)}))
}

func TestZeroIncrementIsNoop(t *testing.T) {
	l := &limit.TrackingLimiter{}

	assert.Success(t, limit.CheckThenIncrement(l, upload{}))
	assert.Assert(t, !l.IsDirty(), "a zero-sized use should not change the limiter")
}

func TestDecrementBelowZero(t *testing.T) {
	l := &limit.TrackingLimiter{}

	assert.ErrorType(t, limit.Decrement(l, upload{datasize.Bytes(1)}), new(datasize.UnderflowError))
	assert.ErrorType(t, limit.Decrement(l, widget{}), new(gomerr.BadValueError))
}

func TestIncrementOverflow(t *testing.T) {
	l := &limit.TrackingLimiter{}
	l.SetCurrent(upload{}, limit.Size(datasize.Exabytes(1)))

	assert.ErrorType(t, limit.CheckThenIncrement(l, upload{datasize.Exabytes(1)}), new(datasize.OverflowError))
}

func TestSetOverride(t *testing.T) {
	l := &limit.TrackingLimiter{}
	assert.Equals(t, nil, l.Override(widget{}))

	l.SetOverride(widget{}, limit.Count(5))
	assert.Equals(t, limit.Count(5), l.Override(widget{}))
	assert.Equals(t, limit.Count(5), l.Maximum(widget{}))

	// At or below the default removes the override
	l.SetOverride(widget{}, limit.Count(2))
	assert.Equals(t, nil, l.Override(widget{}))
	assert.Equals(t, limit.Count(2), l.Maximum(widget{}))
}

func TestDirty(t *testing.T) {
	l := &limit.TrackingLimiter{}
	assert.Assert(t, !l.IsDirty())

	assert.Success(t, limit.CheckThenIncrement(l, widget{}))
	assert.Assert(t, l.IsDirty())

	l.ClearDirty()
	assert.Assert(t, !l.IsDirty())
}

func TestMeasureMismatch(t *testing.T) {
	_, ge := limit.Count(1).Increment(limit.Size(datasize.Bits(1)))
	assert.ErrorType(t, ge, new(gomerr.BadValueError))

	_, ge = limit.Size(datasize.Bits(1)).Decrement(limit.Count(1))
	assert.ErrorType(t, ge, new(gomerr.BadValueError))

	assert.Assert(t, !limit.Size(datasize.Bits(8)).Equals(limit.Count(8)))
	assert.Assert(t, !limit.Count(9).Exceeds(limit.Size(datasize.Bits(8))))
}

func TestSentinels(t *testing.T) {
	for _, a := range []limit.Amount{limit.Unknown, limit.NotApplicable} {
		next, ge := a.Increment(limit.Count(1))
		assert.Success(t, ge)
		assert.Equals(t, a, next)
		assert.Assert(t, !a.Equals(a))
		assert.Assert(t, !a.Exceeds(limit.Count(0)))
		assert.Equals(t, a, a.Zero())
	}

	ee := limit.UnquantifiedExcess(widget{})
	assert.Equals(t, limit.Unknown, ee.Limit)
	assert.Equals(t, "widget", ee.Limited)
}

func TestCurrentDiscardsMismatchedMeasure(t *testing.T) {
	warnings := captureWarnings(t)
	l := &limit.TrackingLimiter{}

	l.SetCurrent(quota{}, limit.Count(5))
	l.ClearDirty()

	assert.Equals(t, limit.Size(datasize.Zero), l.Current(quota{sized: true}))
	assert.Assert(t, strings.Contains(warnings.String(), "Discarding current 5 for quota"), "unexpected log: %q", warnings.String())
	assert.Assert(t, l.IsDirty(), "discarding should mark the limiter dirty")

	// The stale count is gone for good
	assert.Equals(t, limit.Count(0), l.Current(quota{}))
}

func TestOverrideDiscardsMismatchedMeasure(t *testing.T) {
	warnings := captureWarnings(t)
	l := &limit.TrackingLimiter{}

	l.SetOverride(quota{}, limit.Count(50))
	assert.Equals(t, limit.Count(50), l.Maximum(quota{}))

	assert.Equals(t, nil, l.Override(quota{sized: true}))
	assert.Equals(t, limit.Size(datasize.Kilobytes(1)), l.Maximum(quota{sized: true}))
	assert.Assert(t, strings.Contains(warnings.String(), "Discarding override 50 for quota"), "unexpected log: %q", warnings.String())

	assert.Success(t, limit.CheckThenIncrement(l, quota{sized: true}))
	assert.Equals(t, limit.Size(datasize.Bytes(1)), l.Current(quota{sized: true}))
}
