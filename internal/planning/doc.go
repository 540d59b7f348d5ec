// Package planning picks, for every country, the start date of a two-day
// partner event and the roster of partners who can attend from that date.
//
// The pipeline is pure and runs per country:
//
//	CandidateStartDates  availability -> dates whose next day is also free
//	Aggregate            candidate sets -> per-date partner counts
//	SelectStartDate      counts -> best date, earliest on ties
//	BuildRoster          candidates + date -> CountryResult
//
// Plan groups partners by country and runs the pipeline for each group.
package planning
