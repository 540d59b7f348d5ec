package planning

// Aggregate reduces each partner to its candidate start dates and counts,
// per date, the partners that could start on it.
//
// The returned partners are derived copies carrying only their candidate
// dates; the input slice and its partners are not modified. Partners with no
// candidates stay in the returned slice but add nothing to the counts.
func Aggregate(partners []Partner) ([]Partner, FrequencyMap) {
	derived := make([]Partner, 0, len(partners))
	counts := make(FrequencyMap)
	for _, p := range partners {
		candidates := CandidateStartDates(p.AvailableDates)
		derived = append(derived, p.WithAvailableDates(candidates))
		for d := range candidates {
			counts[d]++
		}
	}
	return derived, counts
}
