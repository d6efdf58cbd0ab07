package model

// Summary holds the derived statistics for one workout session.
// Created once per package and consumed immediately by a reporter.
type Summary struct {
	TrainingType string  `json:"training_type"`
	Duration     float64 `json:"duration_h"`
	Distance     float64 `json:"distance_km"`
	Speed        float64 `json:"avg_speed_kmh"`
	Calories     float64 `json:"calories"`
}

// Totals aggregates distance and calories across a set of summaries.
func Totals(summaries []Summary) (distance, calories float64) {
	for _, s := range summaries {
		distance += s.Distance
		calories += s.Calories
	}
	return distance, calories
}
