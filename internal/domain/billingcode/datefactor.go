package billingcode

import (
	"errors"
	"fmt"
	"time"
)

// The due-date factor counts days since the fixed epoch and is carried
// as a 4-digit field. Once the count passes 9999 it wraps mod 10000, so
// a factor alone is only unambiguous inside a ~27-year window; decoding
// needs a reference date to pick the right cycle.

var factorEpoch = time.Date(1997, time.October, 7, 0, 0, 0, 0, time.UTC)

const factorCycle = 10000

var ErrDateBeforeEpoch = errors.New("due date precedes the factor epoch")

// DateFactor returns the wrapped day count for a due date.
func DateFactor(dueDate time.Time) (int, error) {
	days := daysSinceEpoch(dueDate)
	if days < 0 {
		return 0, ErrDateBeforeEpoch
	}
	return days % factorCycle, nil
}

// DateFactorString renders the factor zero-padded to its 4-digit slot.
func DateFactorString(dueDate time.Time) (string, error) {
	f, err := DateFactor(dueDate)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d", f), nil
}

// DateFromFactor reconstructs the calendar date for a factor, resolving
// the mod-10000 ambiguity by choosing the candidate closest to the
// reference date. Only used for validation and tests.
func DateFromFactor(factor int, reference time.Time) time.Time {
	refDays := daysSinceEpoch(reference)
	best := factor
	bestDist := abs(refDays - best)
	for days := factor + factorCycle; ; days += factorCycle {
		d := abs(refDays - days)
		if d >= bestDist {
			break
		}
		best, bestDist = days, d
	}
	return factorEpoch.AddDate(0, 0, best)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func daysSinceEpoch(t time.Time) int {
	u := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(u.Sub(factorEpoch).Hours() / 24)
}
