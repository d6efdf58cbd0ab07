package orchestrator

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dkovalev/fittrack/internal/config"
	"github.com/dkovalev/fittrack/internal/input"
	"github.com/dkovalev/fittrack/internal/model"
	"github.com/dkovalev/fittrack/internal/report"
	"github.com/dkovalev/fittrack/internal/tracker"
)

// Orchestrator coordinates the end-to-end reporting pipeline.
type Orchestrator struct {
	Source input.Source
	Config config.Config

	// Writer receives the rendered report.
	Writer io.Writer

	// Progress receives verbose progress lines; nil disables them.
	Progress io.Writer
}

// New creates an orchestrator with the given source and config.
func New(source input.Source, cfg config.Config) *Orchestrator {
	return &Orchestrator{
		Source: source,
		Config: cfg,
		Writer: os.Stdout,
	}
}

// Run executes the full pipeline: read packages → resolve → calculate →
// report. The first package that fails to resolve aborts the run.
func (o *Orchestrator) Run(ctx context.Context) ([]model.Summary, error) {
	o.progressf("Reading workout packages from %s...\n", o.Source.Name())

	packages, err := o.Source.Packages(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading packages: %w", err)
	}

	o.progressf("Processing %d packages\n", len(packages))

	summaries := make([]model.Summary, 0, len(packages))
	for _, p := range packages {
		calc, err := tracker.Resolve(p.Type, p.Values)
		if err != nil {
			return nil, fmt.Errorf("package %s: %w", p.Label(), err)
		}
		summaries = append(summaries, calc.Summary())
	}

	reporter := report.NewReporter(o.Config.Output.Format, o.Writer)
	meta := report.ReportMeta{
		GeneratedAt:  time.Now(),
		Source:       o.Source.Name(),
		PackageCount: len(packages),
	}
	if err := reporter.Report(ctx, summaries, meta); err != nil {
		return nil, fmt.Errorf("generating report: %w", err)
	}

	return summaries, nil
}

func (o *Orchestrator) progressf(format string, args ...any) {
	if o.Progress == nil {
		return
	}
	_, _ = fmt.Fprintf(o.Progress, format, args...)
}
