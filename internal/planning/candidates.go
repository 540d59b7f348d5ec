package planning

import "partnerplan/pkg/domain"

// CandidateStartDates keeps the dates whose following calendar day is also
// available. The last day of every run of consecutive dates drops out, so a
// lone date yields nothing.
func CandidateStartDates(available domain.DateSet) domain.DateSet {
	candidates := domain.NewDateSet()
	for d := range available {
		if available.Contains(d.Next()) {
			candidates[d] = struct{}{}
		}
	}
	return candidates
}
