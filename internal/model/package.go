package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Package is one raw sensor payload: a workout type code plus the ordered
// values needed to construct that workout's record.
type Package struct {
	Type   string    `json:"type"`
	Values []float64 `json:"values"`
}

// Label returns a human-readable label for this package, used in error
// context and verbose output.
func (p Package) Label() string {
	vals := make([]string, len(p.Values))
	for i, v := range p.Values {
		vals[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return fmt.Sprintf("%s[%s]", p.Type, strings.Join(vals, ","))
}
