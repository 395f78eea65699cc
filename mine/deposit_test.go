package mine

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int { return &i }

func TestNormalizeDeposit(t *testing.T) {
	raw := RawDeposit{
		ID:           "0xdeposit-1",
		Amount:       "1000000000000000000000",
		Lock:         intPtr(2),
		User:         &RawUser{ID: "0xholder"},
		EndTimestamp: "1700000000000",
	}
	p := NormalizeDeposit(raw)
	assert.Equal(t, "0xdeposit-1", p.ID)
	assert.Equal(t, "0xholder", p.Address)
	assert.True(t, p.Amount.Equal(decimal.NewFromInt(1000)), "got %s", p.Amount)
	assert.Equal(t, LockThreeMonths, p.Lock)
	assert.Equal(t, time.UnixMilli(1700000000000).UTC(), p.UnlockTime)
}

func TestNormalizeDepositMissingFields(t *testing.T) {
	p := NormalizeDeposit(RawDeposit{ID: "0xdeposit-2", Amount: "0"})
	assert.Empty(t, p.Address)
	assert.Equal(t, LockUnknown, p.Lock)
	assert.True(t, p.Amount.IsZero())
	assert.Equal(t, time.UnixMilli(0).UTC(), p.UnlockTime)
	assert.True(t, p.Lock.BoostMultiplier().IsZero())
	assert.Equal(t, "Unknown", p.Lock.DisplayText())
}

func TestNormalizeDepositRoundTrip(t *testing.T) {
	raw := RawDeposit{ID: "0xdeposit-3", Amount: "123450000000000000000", Lock: intPtr(4)}
	p := NormalizeDeposit(raw)
	// no lossy transformation besides the defined base-unit division
	assert.Equal(t, "123450000000000000000", p.Amount.Mul(decimal.New(1, 18)).String())
	assert.Equal(t, LockTwelveMonths, p.Lock)
	assert.Equal(t, p, NormalizeDeposit(raw), "normalization is idempotent")
}

func TestFromBaseUnits(t *testing.T) {
	assert.Equal(t, "1000", FromBaseUnits("1000000000000000000000").String())
	assert.Equal(t, "0.5", FromBaseUnits("500000000000000000").String())
	assert.True(t, FromBaseUnits("").IsZero())
	assert.True(t, FromBaseUnits("not-a-number").IsZero())
}

func TestParseMillis(t *testing.T) {
	assert.Equal(t, int64(1700000000000), parseMillis("1700000000000"))
	assert.Equal(t, int64(1700), parseMillis(" 1700ms "))
	assert.Equal(t, int64(-5), parseMillis("-5"))
	assert.Equal(t, int64(0), parseMillis(""))
	assert.Equal(t, int64(0), parseMillis("soon"))
}
