// Package input provides the workout package sources: the builtin demo
// samples, a static JSON file, and command-line arguments.
package input

import (
	"context"
	"errors"

	"github.com/dkovalev/fittrack/internal/model"
)

var ErrNoPackages = errors.New("no workout packages found in input")

// Source yields the raw workout packages for one run.
type Source interface {
	// Packages returns the packages in the order they should be processed.
	Packages(ctx context.Context) ([]model.Package, error)

	// Name identifies the source in progress output.
	Name() string
}

// BuiltinSource serves the fixed demo sample set.
type BuiltinSource struct{}

func (BuiltinSource) Name() string { return "builtin" }

func (BuiltinSource) Packages(ctx context.Context) ([]model.Package, error) {
	return []model.Package{
		{Type: "SWM", Values: []float64{720, 1, 80, 25, 40}},
		{Type: "RUN", Values: []float64{15000, 1, 75}},
		{Type: "WLK", Values: []float64{9000, 1, 75, 180}},
	}, nil
}

// SliceSource serves a pre-built package list, such as the workouts
// declared in the config file.
type SliceSource struct {
	name     string
	packages []model.Package
}

// NewSliceSource creates a source over an in-memory package list.
func NewSliceSource(name string, packages []model.Package) *SliceSource {
	return &SliceSource{name: name, packages: packages}
}

func (s *SliceSource) Name() string { return s.name }

func (s *SliceSource) Packages(ctx context.Context) ([]model.Package, error) {
	if len(s.packages) == 0 {
		return nil, ErrNoPackages
	}
	return s.packages, nil
}
