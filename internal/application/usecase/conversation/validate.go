package conversation

import (
	"strings"

	"github.com/shopspring/decimal"
)

// minInputLength is the minimum trimmed length of any typed name.
const minInputLength = 2

// validName trims the input and reports whether it is long enough.
// Invalid names are a silent no-op for the wizard.
func validName(input string) (string, bool) {
	name := strings.TrimSpace(input)
	return name, len([]rune(name)) >= minInputLength
}

// parseQuantity parses a typed quantity. A comma is accepted as the
// decimal separator. Non-numeric or non-positive input is rejected.
func parseQuantity(input string) (decimal.Decimal, bool) {
	normalized := strings.ReplaceAll(strings.TrimSpace(input), ",", ".")
	q, err := decimal.NewFromString(normalized)
	if err != nil || !q.IsPositive() {
		return decimal.Decimal{}, false
	}
	return q, true
}
