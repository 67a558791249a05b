package validation

import (
	"strconv"
	"time"
)

// IsExpired reports whether a card expiry (month, year) is no longer valid
// relative to ref. The card is accepted only when its year-month is strictly
// after ref's year-month: a card expiring in the current calendar month is
// already treated as expired. Malformed month/year counts as expired rather
// than an error.
func IsExpired(month, year string, ref time.Time) bool {
	expMonth, err := strconv.Atoi(month)
	if err != nil {
		return true
	}
	expYear, err := strconv.Atoi(year)
	if err != nil {
		return true
	}

	if expYear != ref.Year() {
		return expYear < ref.Year()
	}
	return expMonth <= int(ref.Month())
}
