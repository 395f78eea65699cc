package mine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMiningPower(t *testing.T) {
	p := Position{Amount: decimal.NewFromInt(1000), Lock: LockThreeMonths}
	power := MiningPower(p, decimal.RequireFromString("0.05"))
	// 1000 + 0.8*1000 + 1000*0.05
	assert.True(t, power.Equal(decimal.NewFromInt(1850)), "got %s", power)
}

func TestMiningPowerUnknownLock(t *testing.T) {
	p := Position{Amount: decimal.NewFromInt(100), Lock: LockUnknown}
	power := MiningPower(p, decimal.Zero)
	assert.True(t, power.Equal(decimal.NewFromInt(100)), "got %s", power)
}

func TestTotalMiningPower(t *testing.T) {
	positions := []Position{
		{Amount: decimal.NewFromInt(1000), Lock: LockThreeMonths},
		{Amount: decimal.NewFromInt(500), Lock: LockTwoWeeks},
	}
	boost := decimal.RequireFromString("0.05")
	total := TotalMiningPower(positions, boost)
	want := MiningPower(positions[0], boost).Add(MiningPower(positions[1], boost))
	assert.True(t, total.Equal(want), "got %s want %s", total, want)

	assert.True(t, TotalMiningPower(nil, boost).IsZero())
}

func TestTotalDeposited(t *testing.T) {
	positions := []Position{
		{Amount: decimal.NewFromInt(1)},
		{Amount: decimal.RequireFromString("2.5")},
	}
	assert.Equal(t, "3.5", TotalDeposited(positions).String())
}
