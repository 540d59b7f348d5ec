package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"partnerplan/internal/planning"
	"partnerplan/internal/planning/wire"
	"partnerplan/pkg/platform/sentinel"
)

// FileSource reads the dataset document from a local .json, .yaml or .yml
// file.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) FetchPartners(ctx context.Context) ([]planning.Partner, error) {
	if err := ctx.Err(); err != nil {
		return nil, newError(ErrorTimeout, "file", "context done before read", err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, newError(ErrorNotFound, "file", s.path, fmt.Errorf("%w: %v", sentinel.ErrNotFound, err))
		}
		return nil, newError(ErrorInternal, "file", "read "+s.path, err)
	}

	var doc wire.PartnersDocument
	switch ext := strings.ToLower(filepath.Ext(s.path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	case ".json":
		err = json.Unmarshal(data, &doc)
	default:
		return nil, newError(ErrorBadData, "file", fmt.Sprintf("unsupported extension %q", ext), nil)
	}
	if err != nil {
		return nil, newError(ErrorBadData, "file", "decode "+s.path, err)
	}
	return doc.ToPartners(), nil
}
