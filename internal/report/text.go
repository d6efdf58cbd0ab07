package report

import (
	"context"
	"fmt"
	"io"

	"github.com/dkovalev/fittrack/internal/model"
)

// summaryTemplate is the canonical one-line rendering of a workout
// summary. All numeric fields print with exactly three decimal places.
const summaryTemplate = "Workout type: %s; Duration: %.3f h.; Distance: %.3f km; Avg. speed: %.3f km/h; Calories burned: %.3f."

// FormatSummary renders one summary as the canonical template line.
func FormatSummary(s model.Summary) string {
	return fmt.Sprintf(summaryTemplate,
		s.TrainingType, s.Duration, s.Distance, s.Speed, s.Calories)
}

// TextReporter prints one canonical template line per summary.
type TextReporter struct {
	w io.Writer
}

func (r *TextReporter) Report(ctx context.Context, summaries []model.Summary, meta ReportMeta) error {
	for _, s := range summaries {
		if _, err := fmt.Fprintln(r.w, FormatSummary(s)); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}
	return nil
}
