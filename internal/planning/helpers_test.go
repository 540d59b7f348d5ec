package planning

import "partnerplan/pkg/domain"

func dates(values ...string) domain.DateSet {
	set := domain.NewDateSet()
	for _, v := range values {
		set[domain.MustParseDate(v)] = struct{}{}
	}
	return set
}

func partner(email, country string, available ...string) Partner {
	return Partner{
		FirstName:      "First",
		LastName:       "Last",
		Email:          email,
		Country:        country,
		AvailableDates: dates(available...),
	}
}

func day(v string) domain.Date {
	return domain.MustParseDate(v)
}
