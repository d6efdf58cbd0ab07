// Package tracker implements the workout statistics core: per-variant
// calculators for running, walking, and swimming sessions, and the
// dispatch from raw sensor packages to the matching variant.
package tracker

import (
	"github.com/dkovalev/fittrack/internal/model"
)

// Formula constants shared across workout variants.
const (
	mInKm  = 1000.0 // meters in a kilometer
	minInH = 60.0   // minutes in an hour
	cmInM  = 100.0  // centimeters in a meter

	lenStep   = 0.65 // meters covered by one step (running, walking)
	lenStroke = 1.38 // meters covered by one stroke (swimming)

	// km/h to m/s conversion factor: 1000/60^2 rounded to 3 decimals.
	kmhInMsec = 0.278

	runningSpeedMultiplier = 18
	runningSpeedShift      = 1.79

	walkingWeightMultiplier      = 0.035
	walkingSpeedHeightMultiplier = 0.029

	swimmingSpeedShift       = 1.1
	swimmingWeightMultiplier = 2
)

// Calculator derives the statistics for one workout session.
type Calculator interface {
	// Distance returns the covered distance in km.
	Distance() float64

	// MeanSpeed returns the average speed over the session in km/h.
	MeanSpeed() float64

	// SpentCalories returns the calories burned during the session.
	SpentCalories() float64

	// Summary bundles the derived statistics for reporting.
	Summary() model.Summary

	// trainingType seals the variant set: only this package can add
	// workout kinds.
	trainingType() string
}

// session holds the fields common to every workout variant. Values are
// immutable after construction; duration > 0 is assumed, not checked.
type session struct {
	action   int     // steps or strokes
	duration float64 // hours
	weight   float64 // kg
}

func (s session) Distance() float64 {
	return float64(s.action) * lenStep / mInKm
}

func (s session) MeanSpeed() float64 {
	return s.Distance() / s.duration
}

func (s session) summarize(c Calculator) model.Summary {
	return model.Summary{
		TrainingType: c.trainingType(),
		Duration:     s.duration,
		Distance:     c.Distance(),
		Speed:        c.MeanSpeed(),
		Calories:     c.SpentCalories(),
	}
}

// Running is a running session.
type Running struct {
	session
}

func (r Running) trainingType() string { return "Running" }

func (r Running) SpentCalories() float64 {
	return (runningSpeedMultiplier*r.MeanSpeed() + runningSpeedShift) *
		r.weight / mInKm * r.duration * minInH
}

func (r Running) Summary() model.Summary { return r.summarize(r) }

// Walking is a sports-walking session; height feeds the calorie formula.
type Walking struct {
	session
	height float64 // cm
}

func (w Walking) trainingType() string { return "Walking" }

func (w Walking) SpentCalories() float64 {
	speedMsec := w.MeanSpeed() * kmhInMsec
	return (walkingWeightMultiplier*w.weight +
		speedMsec*speedMsec/(w.height/cmInM)*walkingSpeedHeightMultiplier*w.weight) *
		w.duration * minInH
}

func (w Walking) Summary() model.Summary { return w.summarize(w) }

// Swimming is a pool session; distance comes from stroke length and mean
// speed from pool length times lap count.
type Swimming struct {
	session
	lengthPool float64 // meters
	countPool  int     // laps
}

func (s Swimming) trainingType() string { return "Swimming" }

func (s Swimming) Distance() float64 {
	return float64(s.action) * lenStroke / mInKm
}

func (s Swimming) MeanSpeed() float64 {
	return s.lengthPool * float64(s.countPool) / mInKm / s.duration
}

func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingSpeedShift) * swimmingWeightMultiplier *
		s.weight * s.duration
}

func (s Swimming) Summary() model.Summary { return s.summarize(s) }
