package config

import "fmt"

// Config is the top-level configuration for fittrack.
type Config struct {
	Output   OutputConfig  `yaml:"output"`
	Workouts []WorkoutConf `yaml:"workouts"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
}

// WorkoutConf is one workout package as declared in the config file.
// When present, the workouts list replaces the builtin samples.
type WorkoutConf struct {
	Type   string    `yaml:"type"`
	Values []float64 `yaml:"values"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// Validate checks the config for consistency.
func (c *Config) Validate() error {
	validFormats := map[string]bool{"text": true, "table": true, "json": true}
	if !validFormats[c.Output.Format] {
		return fmt.Errorf("output format must be text, table, or json, got %q", c.Output.Format)
	}
	for i, w := range c.Workouts {
		if w.Type == "" {
			return fmt.Errorf("workouts[%d]: missing workout type code", i)
		}
		if len(w.Values) == 0 {
			return fmt.Errorf("workouts[%d]: missing values", i)
		}
	}
	return nil
}
