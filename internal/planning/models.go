package planning

import "partnerplan/pkg/domain"

// Partner is one invitee as received from the partner source.
type Partner struct {
	FirstName      string
	LastName       string
	Email          string
	Country        string
	AvailableDates domain.DateSet
}

// WithAvailableDates returns a copy of p whose availability is replaced by
// dates. The receiver is left untouched.
func (p Partner) WithAvailableDates(dates domain.DateSet) Partner {
	p.AvailableDates = dates
	return p
}

// CountryGroup holds the partners of one country in input order.
type CountryGroup struct {
	Country  string
	Partners []Partner
}

// FrequencyMap counts, per date, how many partners can start on it.
type FrequencyMap map[domain.Date]int

// CountryResult is the outcome for one country. StartDate is nil when no
// partner in the country has two consecutive free days.
type CountryResult struct {
	Name          string
	AttendeeCount int
	Attendees     []string
	StartDate     *domain.Date
}

// HasStartDate reports whether a consensus date was found.
func (r CountryResult) HasStartDate() bool {
	return r.StartDate != nil
}

// ResultSet lists country results in the order countries were first seen.
type ResultSet []CountryResult

// Scheduled counts results that have a start date.
func (rs ResultSet) Scheduled() int {
	n := 0
	for _, r := range rs {
		if r.HasStartDate() {
			n++
		}
	}
	return n
}
