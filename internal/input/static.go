package input

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dkovalev/fittrack/internal/model"
)

// StaticSource loads workout packages from a local JSON file.
// Used for offline runs and tests.
type StaticSource struct {
	filePath string
}

// NewStaticSource creates a source that reads from a JSON file.
func NewStaticSource(filePath string) *StaticSource {
	return &StaticSource{filePath: filePath}
}

func (s *StaticSource) Name() string { return s.filePath }

// Packages loads the package list from the JSON file. An empty list is
// an error: a run with nothing to report is almost certainly a mistake.
func (s *StaticSource) Packages(ctx context.Context) ([]model.Package, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return nil, fmt.Errorf("reading packages file: %w", err)
	}

	var packages []model.Package
	if err := json.Unmarshal(data, &packages); err != nil {
		return nil, fmt.Errorf("parsing packages file: %w", err)
	}

	if len(packages) == 0 {
		return nil, ErrNoPackages
	}

	return packages, nil
}
