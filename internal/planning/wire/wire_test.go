package wire

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partnerplan/internal/planning"
	"partnerplan/pkg/domain"
)

func TestPartnersDocument_Decode(t *testing.T) {
	body := `{"partners":[{
		"firstName":"Darin","lastName":"Daignault","email":"ddaignault@example.com",
		"country":"United States","availableDates":["2017-05-03","2017-05-06","2017-05-03"]
	}]}`

	var doc PartnersDocument
	require.NoError(t, json.Unmarshal([]byte(body), &doc))

	partners := doc.ToPartners()
	require.Len(t, partners, 1)
	p := partners[0]
	assert.Equal(t, "Darin", p.FirstName)
	assert.Equal(t, "Daignault", p.LastName)
	assert.Equal(t, "ddaignault@example.com", p.Email)
	assert.Equal(t, "United States", p.Country)
	assert.Equal(t, domain.NewDateSet(domain.MustParseDate("2017-05-03"), domain.MustParseDate("2017-05-06")), p.AvailableDates)
}

func TestPartnersDocument_RejectsBadDates(t *testing.T) {
	var doc PartnersDocument
	err := json.Unmarshal([]byte(`{"partners":[{"availableDates":["05/03/2017"]}]}`), &doc)
	assert.Error(t, err)
}

func TestFromResults_Encode(t *testing.T) {
	start := domain.MustParseDate("2017-04-28")
	doc := FromResults(planning.ResultSet{
		{Name: "Ireland", AttendeeCount: 2, Attendees: []string{"a@ie.com", "b@ie.com"}, StartDate: &start},
		{Name: "Spain", AttendeeCount: 0},
	})

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"countries":[
		{"attendeeCount":2,"attendees":["a@ie.com","b@ie.com"],"name":"Ireland","startDate":"2017-04-28"},
		{"attendeeCount":0,"attendees":[],"name":"Spain","startDate":null}
	]}`, string(out))
}

func TestFromResults_EmptySet(t *testing.T) {
	out, err := json.Marshal(FromResults(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"countries":[]}`, string(out))
}
