// Package sink delivers planning results to the result API or to a writer.
package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"partnerplan/internal/planning"
	"partnerplan/internal/planning/wire"
	"partnerplan/pkg/platform/sentinel"
)

const maxErrorExcerpt = 512

// StatusError reports a non-2xx answer from the result API.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("result API returned %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	if e.StatusCode >= 500 {
		return sentinel.ErrUnavailable
	}
	return sentinel.ErrRejected
}

// HTTPSink posts results with POST {baseURL}result?userKey={apiKey}.
type HTTPSink struct {
	endpoint string
	client   *http.Client
}

type HTTPOption func(*HTTPSink)

func WithHTTPClient(client *http.Client) HTTPOption {
	return func(s *HTTPSink) {
		s.client = client
	}
}

func NewHTTPSink(baseURL, apiKey string, timeout time.Duration, opts ...HTTPOption) (*HTTPSink, error) {
	endpoint, err := wire.Endpoint(baseURL, "result", apiKey)
	if err != nil {
		return nil, err
	}
	s := &HTTPSink{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *HTTPSink) Submit(ctx context.Context, results planning.ResultSet) error {
	payload, err := json.Marshal(wire.FromResults(results))
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build result request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("post results: %w: %v", sentinel.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorExcerpt))
		return &StatusError{StatusCode: resp.StatusCode, Body: string(bytes.TrimSpace(excerpt))}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
