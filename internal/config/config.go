package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Tolerance holds the answer-classification bands. Both bands are
// relative errors; Correct must not exceed Close.
type Tolerance struct {
	Correct float64
	Close   float64
	Epsilon float64
}

// ParamRanges bounds the randomly drawn problem dimensions.
type ParamRanges struct {
	LinearMin int
	LinearMax int
	RadiusMin int
	RadiusMax int
}

// Config is the full tutoring configuration. The tolerance bands and
// parameter ranges are deliberate design constants; they are exposed
// here rather than hardcoded so a deployment can tune strictness.
type Config struct {
	OntologyPath string
	Tolerance    Tolerance
	Params       ParamRanges
	LogLevel     string
}

// Load builds the configuration from defaults, an optional config
// file, and GEOMTUTOR_* environment overrides, in that precedence
// order (lowest to highest).
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("ontology.path", "geometry_ontology.owl")
	v.SetDefault("tolerance.correct", 0.01)
	v.SetDefault("tolerance.close", 0.10)
	v.SetDefault("tolerance.epsilon", 1e-9)
	v.SetDefault("params.linear_min", 1)
	v.SetDefault("params.linear_max", 20)
	v.SetDefault("params.radius_min", 1)
	v.SetDefault("params.radius_max", 15)
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("GEOMTUTOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	// Typed getters rather than Unmarshal so that AutomaticEnv
	// overrides are honored for every key.
	cfg := &Config{
		OntologyPath: v.GetString("ontology.path"),
		Tolerance: Tolerance{
			Correct: v.GetFloat64("tolerance.correct"),
			Close:   v.GetFloat64("tolerance.close"),
			Epsilon: v.GetFloat64("tolerance.epsilon"),
		},
		Params: ParamRanges{
			LinearMin: v.GetInt("params.linear_min"),
			LinearMax: v.GetInt("params.linear_max"),
			RadiusMin: v.GetInt("params.radius_min"),
			RadiusMax: v.GetInt("params.radius_max"),
		},
		LogLevel: v.GetString("log.level"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the built-in configuration without touching the
// filesystem or environment.
func Default() *Config {
	return &Config{
		OntologyPath: "geometry_ontology.owl",
		Tolerance:    Tolerance{Correct: 0.01, Close: 0.10, Epsilon: 1e-9},
		Params:       ParamRanges{LinearMin: 1, LinearMax: 20, RadiusMin: 1, RadiusMax: 15},
		LogLevel:     "info",
	}
}

func (c *Config) validate() error {
	if c.Tolerance.Correct <= 0 || c.Tolerance.Close <= 0 {
		return fmt.Errorf("tolerance bands must be positive (correct=%g close=%g)",
			c.Tolerance.Correct, c.Tolerance.Close)
	}
	if c.Tolerance.Correct > c.Tolerance.Close {
		return fmt.Errorf("correct band %g exceeds close band %g",
			c.Tolerance.Correct, c.Tolerance.Close)
	}
	if c.Params.LinearMin < 1 || c.Params.LinearMin > c.Params.LinearMax {
		return fmt.Errorf("invalid linear range [%d,%d]", c.Params.LinearMin, c.Params.LinearMax)
	}
	if c.Params.RadiusMin < 1 || c.Params.RadiusMin > c.Params.RadiusMax {
		return fmt.Errorf("invalid radius range [%d,%d]", c.Params.RadiusMin, c.Params.RadiusMax)
	}
	return nil
}
