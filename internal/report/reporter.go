package report

import (
	"context"
	"io"
	"time"

	"github.com/dkovalev/fittrack/internal/model"
)

// Reporter formats and writes workout summaries to an output destination.
type Reporter interface {
	Report(ctx context.Context, summaries []model.Summary, meta ReportMeta) error
}

// ReportMeta contains contextual metadata for the report.
type ReportMeta struct {
	GeneratedAt  time.Time `json:"generated_at"`
	Source       string    `json:"source"`
	PackageCount int       `json:"package_count"`
}

// NewReporter creates a reporter for the given format writing to w.
func NewReporter(format string, w io.Writer) Reporter {
	switch format {
	case "json":
		return &JSONReporter{w: w}
	case "table":
		return &TableReporter{w: w}
	default:
		return &TextReporter{w: w}
	}
}
