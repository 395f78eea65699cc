package mine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLockPeriodTables(t *testing.T) {
	cases := []struct {
		lock     LockPeriod
		duration int64
		boost    string
		text     string
	}{
		{LockTwoWeeks, 1209600, "0.1", "2 weeks"},
		{LockOneMonth, 2592000, "0.25", "1 month"},
		{LockThreeMonths, 7776000, "0.8", "3 months"},
		{LockSixMonths, 15552000, "1.8", "6 months"},
		{LockTwelveMonths, 31536000, "4", "12 months"},
	}
	for _, c := range cases {
		assert.Equal(t, c.duration, c.lock.DurationSeconds())
		assert.True(t, c.lock.BoostMultiplier().Equal(decimal.RequireFromString(c.boost)),
			"boost of lock %d", c.lock)
		assert.Equal(t, c.text, c.lock.DisplayText())
	}
}

func TestLockPeriodUnknownCodes(t *testing.T) {
	for _, lock := range []LockPeriod{LockUnknown, 5, 42, -7} {
		assert.Equal(t, int64(0), lock.DurationSeconds())
		assert.True(t, lock.BoostMultiplier().IsZero())
		assert.Equal(t, "Unknown", lock.DisplayText())
	}
}

func TestLockPeriodTablesSameLength(t *testing.T) {
	assert.Equal(t, len(lockDurations), len(lockBoosts))
	assert.Equal(t, len(lockDurations), len(lockDisplayTexts))
}
