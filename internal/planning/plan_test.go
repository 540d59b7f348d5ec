package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partnerplan/pkg/testutil"
)

func TestPlan_Examples(t *testing.T) {
	testutil.Given(t, "country X with overlapping two-day windows", func(t *testing.T) {
		partners := []Partner{
			partner("p1@x.com", "X", "2024-01-01", "2024-01-02"),
			partner("p2@x.com", "X", "2024-01-02", "2024-01-03"),
			partner("p3@x.com", "X", "2024-01-05"),
		}

		testutil.When(t, "planning", func(t *testing.T) {
			results := Plan(partners)

			testutil.Then(t, "the earliest tied date wins and only p1 attends", func(t *testing.T) {
				require.Len(t, results, 1)
				res := results[0]
				assert.Equal(t, "X", res.Name)
				require.NotNil(t, res.StartDate)
				assert.Equal(t, day("2024-01-01"), *res.StartDate)
				assert.Equal(t, 1, res.AttendeeCount)
				assert.Equal(t, []string{"p1@x.com"}, res.Attendees)
			})
		})
	})

	testutil.Given(t, "country Y with a single lone date", func(t *testing.T) {
		partners := []Partner{partner("p@y.com", "Y", "2024-03-10")}

		testutil.When(t, "planning", func(t *testing.T) {
			results := Plan(partners)

			testutil.Then(t, "no start date is chosen", func(t *testing.T) {
				require.Len(t, results, 1)
				assert.Equal(t, CountryResult{Name: "Y", AttendeeCount: 0, Attendees: []string{}}, results[0])
			})
		})
	})
}

func TestPlan(t *testing.T) {
	t.Run("empty input yields an empty result set", func(t *testing.T) {
		results := Plan(nil)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	})

	t.Run("countries keep discovery order", func(t *testing.T) {
		results := Plan([]Partner{
			partner("a@z.com", "Zambia", "2024-01-01", "2024-01-02"),
			partner("a@b.com", "Brazil", "2024-01-01", "2024-01-02"),
			partner("b@z.com", "Zambia", "2024-01-01", "2024-01-02"),
			partner("a@c.com", "Chile"),
		})

		names := make([]string, 0, len(results))
		for _, r := range results {
			names = append(names, r.Name)
		}
		assert.Equal(t, []string{"Zambia", "Brazil", "Chile"}, names)
		assert.Equal(t, []string{"a@z.com", "b@z.com"}, results[0].Attendees)
		assert.Equal(t, 2, results.Scheduled())
	})

	t.Run("country keys are not normalised", func(t *testing.T) {
		results := Plan([]Partner{
			partner("a@x.com", "Spain"),
			partner("b@x.com", "spain"),
			partner("c@x.com", "Spain "),
		})
		assert.Len(t, results, 3)
	})

	t.Run("roster uses candidate dates, not raw availability", func(t *testing.T) {
		// b is free on 01-02 but 01-02 is the end of b's run, so b cannot start then.
		results := Plan([]Partner{
			partner("a@x.com", "X", "2024-01-02", "2024-01-03"),
			partner("c@x.com", "X", "2024-01-02", "2024-01-03"),
			partner("b@x.com", "X", "2024-01-01", "2024-01-02"),
		})
		require.Len(t, results, 1)
		assert.Equal(t, day("2024-01-02"), *results[0].StartDate)
		assert.Equal(t, []string{"a@x.com", "c@x.com"}, results[0].Attendees)
	})

	t.Run("every result is internally consistent", func(t *testing.T) {
		partners := []Partner{
			partner("a@x.com", "X", "2024-01-01", "2024-01-02", "2024-01-03"),
			partner("b@x.com", "X", "2024-01-02", "2024-01-03", "2024-01-04"),
			partner("c@y.com", "Y", "2024-02-01"),
			partner("d@y.com", "Y", "2024-02-10", "2024-02-11"),
			partner("e@z.com", "Z"),
		}
		candidates := make(map[string]Partner)
		derived, _ := Aggregate(partners)
		for _, p := range derived {
			candidates[p.Email] = p
		}

		for _, res := range Plan(partners) {
			assert.Equal(t, len(res.Attendees), res.AttendeeCount, res.Name)
			assert.IsIncreasing(t, append([]string(nil), res.Attendees...), res.Name)
			for _, email := range res.Attendees {
				require.NotNil(t, res.StartDate)
				assert.True(t, candidates[email].AvailableDates.Contains(*res.StartDate), email)
			}
		}
	})
}

func TestPlanGroups(t *testing.T) {
	t.Run("duplicate country groups keep the first", func(t *testing.T) {
		results := PlanGroups([]CountryGroup{
			{Country: "X", Partners: []Partner{partner("first@x.com", "X", "2024-01-01", "2024-01-02")}},
			{Country: "X", Partners: []Partner{partner("second@x.com", "X", "2024-01-05", "2024-01-06")}},
		})
		require.Len(t, results, 1)
		assert.Equal(t, []string{"first@x.com"}, results[0].Attendees)
	})

	t.Run("zero-partner country has no date and no attendees", func(t *testing.T) {
		res := PlanCountry(CountryGroup{Country: "Empty"})
		assert.Equal(t, "Empty", res.Name)
		assert.Equal(t, 0, res.AttendeeCount)
		assert.Empty(t, res.Attendees)
		assert.Nil(t, res.StartDate)
	})
}

func TestGroupByCountry(t *testing.T) {
	groups := GroupByCountry([]Partner{
		partner("a@x.com", "X"),
		partner("b@y.com", "Y"),
		partner("c@x.com", "X"),
	})
	require.Len(t, groups, 2)
	assert.Equal(t, "X", groups[0].Country)
	assert.Equal(t, "a@x.com", groups[0].Partners[0].Email)
	assert.Equal(t, "c@x.com", groups[0].Partners[1].Email)
	assert.Equal(t, "Y", groups[1].Country)
	assert.Empty(t, GroupByCountry(nil))
}
