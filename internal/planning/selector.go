package planning

import "partnerplan/pkg/domain"

// SelectStartDate returns the date with the highest count, preferring the
// earliest date among equal counts. ok is false for an empty map.
func SelectStartDate(counts FrequencyMap) (best domain.Date, ok bool) {
	bestCount := 0
	for d, n := range counts {
		switch {
		case !ok, n > bestCount, n == bestCount && d.Before(best):
			best, bestCount, ok = d, n, true
		}
	}
	return best, ok
}
