package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/dkovalev/fittrack/internal/model"
)

// JSONReporter outputs summaries as JSON.
type JSONReporter struct {
	w io.Writer
}

type jsonOutput struct {
	Meta      ReportMeta      `json:"meta"`
	Summaries []model.Summary `json:"summaries"`
}

func (r *JSONReporter) Report(ctx context.Context, summaries []model.Summary, meta ReportMeta) error {
	output := jsonOutput{
		Meta:      meta,
		Summaries: summaries,
	}

	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	return nil
}
