package contractform

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Contract amount bounds in won.
var (
	minAmount = decimal.NewFromInt(10_000)
	maxAmount = decimal.NewFromInt(1_000_000)
)

// ErrNotANumber is returned when amount input contains non-digit characters.
var ErrNotANumber = errors.New("amount must contain only digits")

// ParseAmount parses user amount input, tolerating thousands separators.
// It rejects any other non-digit character.
func ParseAmount(text string) (int64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	if cleaned == "" {
		return 0, ErrNotANumber
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return 0, ErrNotANumber
		}
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, ErrNotANumber
	}
	return d.IntPart(), nil
}

// FormatAmount renders an amount with thousands separators, e.g. 1000000
// becomes "1,000,000".
func FormatAmount(amount int64) string {
	digits := decimal.NewFromInt(amount).Abs().String()
	var b strings.Builder
	if amount < 0 {
		b.WriteByte('-')
	}
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// amountInRange reports whether an amount is within the contract bounds.
func amountInRange(amount int64) bool {
	d := decimal.NewFromInt(amount)
	return d.GreaterThanOrEqual(minAmount) && d.LessThanOrEqual(maxAmount)
}
