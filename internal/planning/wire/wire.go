// Package wire defines the JSON documents exchanged with the partner dataset
// API and the result API.
package wire

import (
	"partnerplan/internal/planning"
	"partnerplan/pkg/domain"
)

// PartnersDocument is the dataset payload: {"partners":[...]}.
type PartnersDocument struct {
	Partners []Partner `json:"partners" yaml:"partners"`
}

type Partner struct {
	FirstName      string        `json:"firstName" yaml:"firstName"`
	LastName       string        `json:"lastName" yaml:"lastName"`
	Email          string        `json:"email" yaml:"email"`
	Country        string        `json:"country" yaml:"country"`
	AvailableDates []domain.Date `json:"availableDates" yaml:"availableDates"`
}

// ToPartners converts the document into planner input. Repeated dates for
// one partner collapse.
func (d PartnersDocument) ToPartners() []planning.Partner {
	out := make([]planning.Partner, 0, len(d.Partners))
	for _, p := range d.Partners {
		out = append(out, planning.Partner{
			FirstName:      p.FirstName,
			LastName:       p.LastName,
			Email:          p.Email,
			Country:        p.Country,
			AvailableDates: domain.NewDateSet(p.AvailableDates...),
		})
	}
	return out
}

// ResultsDocument is the result payload: {"countries":[...]}.
type ResultsDocument struct {
	Countries []Country `json:"countries"`
}

// Country serialises StartDate as null when no date was chosen and
// Attendees as [] when nobody attends.
type Country struct {
	AttendeeCount int          `json:"attendeeCount"`
	Attendees     []string     `json:"attendees"`
	Name          string       `json:"name"`
	StartDate     *domain.Date `json:"startDate"`
}

func FromResults(results planning.ResultSet) ResultsDocument {
	doc := ResultsDocument{Countries: make([]Country, 0, len(results))}
	for _, r := range results {
		attendees := r.Attendees
		if attendees == nil {
			attendees = []string{}
		}
		doc.Countries = append(doc.Countries, Country{
			AttendeeCount: r.AttendeeCount,
			Attendees:     attendees,
			Name:          r.Name,
			StartDate:     r.StartDate,
		})
	}
	return doc
}
