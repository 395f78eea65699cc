package chain

import "github.com/shopspring/decimal"

// MockPool serves a fixed pool total for tests.
type MockPool struct {
	Total decimal.Decimal
	Err   error
}

func (m *MockPool) GetTotalMiningPower() (decimal.Decimal, error) {
	if m.Err != nil {
		return decimal.Zero, m.Err
	}
	return m.Total, nil
}
