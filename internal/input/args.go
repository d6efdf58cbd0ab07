package input

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dkovalev/fittrack/internal/model"
)

// ArgsSource parses packages given as command-line arguments of the form
// CODE:v1,v2,... (for example RUN:15000,1,75).
type ArgsSource struct {
	args []string
}

// NewArgsSource creates a source over positional command-line arguments.
func NewArgsSource(args []string) *ArgsSource {
	return &ArgsSource{args: args}
}

func (s *ArgsSource) Name() string { return "args" }

func (s *ArgsSource) Packages(ctx context.Context) ([]model.Package, error) {
	if len(s.args) == 0 {
		return nil, ErrNoPackages
	}

	packages := make([]model.Package, 0, len(s.args))
	for _, arg := range s.args {
		p, err := parsePackage(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", arg, err)
		}
		packages = append(packages, p)
	}
	return packages, nil
}

func parsePackage(arg string) (model.Package, error) {
	code, rest, ok := strings.Cut(arg, ":")
	if !ok || code == "" || rest == "" {
		return model.Package{}, errors.New("expected CODE:v1,v2,...")
	}

	parts := strings.Split(rest, ",")
	values := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return model.Package{}, fmt.Errorf("value %q is not a number", part)
		}
		values = append(values, v)
	}

	return model.Package{Type: code, Values: values}, nil
}
