package planning

import (
	"sort"

	"partnerplan/pkg/domain"
)

// BuildRoster assembles the result for one country. Only partners whose
// candidate dates contain start attend; with ok false nobody does.
// Attendee emails are sorted byte-wise and the slice is never nil.
func BuildRoster(country string, candidates []Partner, start domain.Date, ok bool) CountryResult {
	attendees := make([]string, 0, len(candidates))
	if ok {
		for _, p := range candidates {
			if p.AvailableDates.Contains(start) {
				attendees = append(attendees, p.Email)
			}
		}
	}
	sort.Strings(attendees)

	result := CountryResult{
		Name:          country,
		AttendeeCount: len(attendees),
		Attendees:     attendees,
	}
	if ok {
		result.StartDate = &start
	}
	return result
}
