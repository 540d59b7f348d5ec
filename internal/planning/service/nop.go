package service

import (
	"context"

	"partnerplan/internal/planning"
)

// NopSource returns no partners. It lets serve mode build a Service that is
// only driven through Plan.
type NopSource struct{}

func (NopSource) FetchPartners(context.Context) ([]planning.Partner, error) {
	return nil, nil
}

// NopSink discards results.
type NopSink struct{}

func (NopSink) Submit(context.Context, planning.ResultSet) error {
	return nil
}
