package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"partnerplan/internal/planning"
	"partnerplan/internal/planning/wire"
)

// WriterSink prints the result document as indented JSON. It backs dry runs.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Submit(_ context.Context, results planning.ResultSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	enc := json.NewEncoder(s.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(wire.FromResults(results)); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
