package mine

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RawUser is the nested user reference on a subgraph deposit.
type RawUser struct {
	ID string `json:"id"`
}

// RawDeposit mirrors one deposit entity returned by the subgraph. Amount is
// an 18-decimal base-unit integer string. Lock and User can be absent.
type RawDeposit struct {
	ID           string   `json:"id"`
	Amount       string   `json:"amount"`
	Lock         *int     `json:"lock"`
	User         *RawUser `json:"user"`
	EndTimestamp string   `json:"endTimestamp"`
}

// Position is the canonical form of one deposit.
type Position struct {
	ID         string
	Address    string
	Amount     decimal.Decimal
	Lock       LockPeriod
	UnlockTime time.Time
}

// one token in base units
var baseUnit = decimal.New(1, 18)

// FromBaseUnits converts an 18-decimal base-unit integer string into a token
// amount. Unparseable input yields zero.
func FromBaseUnits(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return d.Div(baseUnit)
}

// NormalizeDeposit converts a raw subgraph deposit into a Position. Missing
// nested fields default rather than fail: no user leaves the address empty,
// no lock code yields LockUnknown, an empty end timestamp is epoch 0.
func NormalizeDeposit(raw RawDeposit) Position {
	p := Position{
		ID:     raw.ID,
		Amount: FromBaseUnits(raw.Amount),
		Lock:   LockUnknown,
	}
	if raw.User != nil {
		p.Address = raw.User.ID
	}
	if raw.Lock != nil {
		p.Lock = LockPeriod(*raw.Lock)
	}
	p.UnlockTime = time.UnixMilli(parseMillis(raw.EndTimestamp)).UTC()
	return p
}

// NormalizeDeposits converts a batch of raw deposits, keeping input order.
func NormalizeDeposits(raws []RawDeposit) []Position {
	positions := make([]Position, 0, len(raws))
	for _, raw := range raws {
		positions = append(positions, NormalizeDeposit(raw))
	}
	return positions
}

// parseMillis reads the leading integer of s the way parseInt does: an
// optional sign followed by digits, trailing junk ignored. Anything else is 0.
func parseMillis(s string) int64 {
	s = strings.TrimSpace(s)
	var value int64
	var negative bool
	start := 0
	if start < len(s) && (s[start] == '+' || s[start] == '-') {
		negative = s[start] == '-'
		start++
	}
	digits := 0
	for i := start; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			break
		}
		value = value*10 + int64(s[i]-'0')
		digits++
	}
	if digits == 0 {
		return 0
	}
	if negative {
		return -value
	}
	return value
}
