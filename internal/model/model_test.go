package model

import (
	"math"
	"testing"
)

func TestPackage_Label(t *testing.T) {
	p := Package{Type: "RUN", Values: []float64{15000, 1, 75}}
	if got := p.Label(); got != "RUN[15000,1,75]" {
		t.Errorf("unexpected label %q", got)
	}

	p = Package{Type: "WLK", Values: []float64{9000, 1.5, 75, 180}}
	if got := p.Label(); got != "WLK[9000,1.5,75,180]" {
		t.Errorf("unexpected label %q", got)
	}
}

func TestTotals(t *testing.T) {
	summaries := []Summary{
		{Distance: 0.9936, Calories: 336},
		{Distance: 9.75, Calories: 797.805},
	}

	distance, calories := Totals(summaries)
	if math.Abs(distance-10.7436) > 1e-9 {
		t.Errorf("expected total distance 10.7436, got %v", distance)
	}
	if math.Abs(calories-1133.805) > 1e-9 {
		t.Errorf("expected total calories 1133.805, got %v", calories)
	}
}

func TestTotals_Empty(t *testing.T) {
	distance, calories := Totals(nil)
	if distance != 0 || calories != 0 {
		t.Errorf("expected zero totals, got %v / %v", distance, calories)
	}
}
