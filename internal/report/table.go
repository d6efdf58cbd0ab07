package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dkovalev/fittrack/internal/model"
)

// TableReporter outputs summaries as a formatted terminal table.
type TableReporter struct {
	w io.Writer
}

func (r *TableReporter) Report(ctx context.Context, summaries []model.Summary, meta ReportMeta) error {
	// Header
	fmt.Fprintf(r.w, "\n")
	fmt.Fprintf(r.w, "Fittrack Workout Report\n")
	fmt.Fprintf(r.w, "%s\n", strings.Repeat("=", 64))
	fmt.Fprintf(r.w, "Source:     %s\n", meta.Source)
	fmt.Fprintf(r.w, "Packages:   %d\n", meta.PackageCount)
	fmt.Fprintf(r.w, "Generated:  %s\n", meta.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(r.w, "%s\n\n", strings.Repeat("=", 64))

	if len(summaries) == 0 {
		fmt.Fprintf(r.w, "No workouts to report.\n")
		return nil
	}

	// Column headers
	fmt.Fprintf(r.w, "%-10s %11s %12s %12s %12s\n",
		"Type", "Duration h", "Distance km", "Speed km/h", "Calories")
	fmt.Fprintf(r.w, "%s\n", strings.Repeat("-", 62))

	for _, s := range summaries {
		fmt.Fprintf(r.w, "%-10s %11.3f %12.3f %12.3f %12.3f\n",
			s.TrainingType, s.Duration, s.Distance, s.Speed, s.Calories)
	}

	fmt.Fprintf(r.w, "%s\n", strings.Repeat("-", 62))

	// Totals footer
	distance, calories := model.Totals(summaries)
	fmt.Fprintf(r.w, "%-10s %11s %12.3f %12s %12.3f\n",
		"Total", "", distance, "", calories)

	fmt.Fprintf(r.w, "\n")
	return nil
}
