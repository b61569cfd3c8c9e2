package utils

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FormatTokenAmount converts a raw on-chain amount to a human-readable string,
// considering the given number of decimals.
// Example: value="1234500000000000000", decimals=18 => "1.2345"
// A nil decimals (typical for NFTs) leaves the value as an integer count.
func FormatTokenAmount(value string, decimals *int) (string, error) {
	if value == "" {
		return "0", nil
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return "", fmt.Errorf("failed to parse amount %q: %w", value, err)
	}
	if amount.IsNegative() {
		return "", fmt.Errorf("amount %q is negative", value)
	}
	if decimals == nil || *decimals <= 0 {
		return amount.String(), nil
	}

	// decimal.String() уже обрезает хвостовые нули
	return amount.Shift(-int32(*decimals)).String(), nil
}
