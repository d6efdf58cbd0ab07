package tracker

import "fmt"

// Workout type codes as emitted by the sensor packages.
const (
	CodeRunning  = "RUN"
	CodeWalking  = "WLK"
	CodeSwimming = "SWM"
)

// variant binds a workout code to its arity and constructor. The table
// is process-wide immutable configuration.
type variant struct {
	arity int
	build func(values []float64) Calculator
}

var variants = map[string]variant{
	CodeRunning: {arity: 3, build: func(v []float64) Calculator {
		return Running{session{action: int(v[0]), duration: v[1], weight: v[2]}}
	}},
	CodeWalking: {arity: 4, build: func(v []float64) Calculator {
		return Walking{
			session: session{action: int(v[0]), duration: v[1], weight: v[2]},
			height:  v[3],
		}
	}},
	CodeSwimming: {arity: 5, build: func(v []float64) Calculator {
		return Swimming{
			session:    session{action: int(v[0]), duration: v[1], weight: v[2]},
			lengthPool: v[3],
			countPool:  int(v[4]),
		}
	}},
}

// UnknownTypeError reports a workout code outside the recognized set.
type UnknownTypeError struct {
	Code string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown workout type %q: valid codes are %s, %s, %s",
		e.Code, CodeRunning, CodeWalking, CodeSwimming)
}

// ArityMismatchError reports a package whose value count does not match
// the field count of the resolved variant.
type ArityMismatchError struct {
	Code     string
	Given    int
	Required int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("workout type %s: got %d values, requires %d",
		e.Code, e.Given, e.Required)
}

// Resolve maps a workout code to its calculator variant, validating the
// value count before construction. Values are assigned positionally in
// declaration order: action, duration, weight, then the variant-specific
// fields (height for walking; pool length and lap count for swimming).
func Resolve(code string, values []float64) (Calculator, error) {
	v, ok := variants[code]
	if !ok {
		return nil, &UnknownTypeError{Code: code}
	}
	if len(values) != v.arity {
		return nil, &ArityMismatchError{Code: code, Given: len(values), Required: v.arity}
	}
	return v.build(values), nil
}
