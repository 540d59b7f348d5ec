package planning

// GroupByCountry splits partners by exact country string. Groups are
// returned in the order their country first appears.
func GroupByCountry(partners []Partner) []CountryGroup {
	index := make(map[string]int)
	var groups []CountryGroup
	for _, p := range partners {
		i, seen := index[p.Country]
		if !seen {
			i = len(groups)
			index[p.Country] = i
			groups = append(groups, CountryGroup{Country: p.Country})
		}
		groups[i].Partners = append(groups[i].Partners, p)
	}
	return groups
}

// PlanCountry runs aggregation, selection and roster building for a single
// country.
func PlanCountry(group CountryGroup) CountryResult {
	candidates, counts := Aggregate(group.Partners)
	start, ok := SelectStartDate(counts)
	return BuildRoster(group.Country, candidates, start, ok)
}

// Plan computes one result per country. If the same country name shows up in
// more than one group only the first result is kept.
func Plan(partners []Partner) ResultSet {
	return PlanGroups(GroupByCountry(partners))
}

// PlanGroups plans pre-grouped partners, keeping the first group of any
// repeated country name.
func PlanGroups(groups []CountryGroup) ResultSet {
	results := make(ResultSet, 0, len(groups))
	seen := make(map[string]struct{}, len(groups))
	for _, g := range groups {
		if _, dup := seen[g.Country]; dup {
			continue
		}
		seen[g.Country] = struct{}{}
		results = append(results, PlanCountry(g))
	}
	return results
}
