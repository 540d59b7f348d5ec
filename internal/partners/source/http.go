package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"partnerplan/internal/planning"
	"partnerplan/internal/planning/wire"
	"partnerplan/pkg/platform/sentinel"
)

const maxDatasetBytes = 32 << 20

// HTTPSource fetches the dataset with GET {baseURL}dataset?userKey={apiKey}.
type HTTPSource struct {
	endpoint string
	client   *http.Client
}

type HTTPOption func(*HTTPSource)

// WithHTTPClient replaces the default client, e.g. for tests.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(s *HTTPSource) {
		s.client = client
	}
}

// NewHTTPSource builds the dataset endpoint from baseURL and apiKey.
func NewHTTPSource(baseURL, apiKey string, timeout time.Duration, opts ...HTTPOption) (*HTTPSource, error) {
	endpoint, err := wire.Endpoint(baseURL, "dataset", apiKey)
	if err != nil {
		return nil, err
	}
	s := &HTTPSource{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *HTTPSource) FetchPartners(ctx context.Context) ([]planning.Partner, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return nil, newError(ErrorInternal, "http", "build request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		if isTimeout(ctx, err) {
			return nil, newError(ErrorTimeout, "http", "dataset request timed out", err)
		}
		return nil, newError(ErrorOutage, "http", "dataset request failed", fmt.Errorf("%w: %v", sentinel.ErrUnavailable, err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDatasetBytes))
	if err != nil {
		return nil, newError(ErrorOutage, "http", "read dataset body", err)
	}
	return parseDataset(resp.StatusCode, body)
}

func parseDataset(status int, body []byte) ([]planning.Partner, error) {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return nil, newError(ErrorAuthentication, "http", fmt.Sprintf("dataset API returned %d", status), sentinel.ErrRejected)
	case status == http.StatusNotFound:
		return nil, newError(ErrorNotFound, "http", "dataset API returned 404", sentinel.ErrNotFound)
	case status >= 500:
		return nil, newError(ErrorOutage, "http", fmt.Sprintf("dataset API returned %d", status), sentinel.ErrUnavailable)
	case status < 200 || status > 299:
		return nil, newError(ErrorBadData, "http", fmt.Sprintf("unexpected status %d", status), sentinel.ErrRejected)
	}

	var doc wire.PartnersDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, newError(ErrorBadData, "http", "decode dataset", err)
	}
	return doc.ToPartners(), nil
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
