package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries the harness parameters. Values come from the environment,
// optionally seeded from a .env file; every knob has a default matching the
// reference simulation scenario.
type Config struct {
	// Simulation
	Drift   float64
	Vola    float64
	Price0  float64
	NrSteps int
	NrPaths int

	// Profiling
	Reps            int
	ProfilePath     string
	TimeReportName  string
	CallsReportName string

	// Store
	StoreRoot string
}

// Load reads the harness parameters from the environment. Malformed values
// fall back to their defaults; the error return is reserved for stricter
// parsing and is always nil today. Range checks live in Validate.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Drift:   envFloat("PATHSIM_DRIFT", 0.001),
		Vola:    envFloat("PATHSIM_VOLA", 0.005),
		Price0:  envFloat("PATHSIM_PRICE_0", 100.0),
		NrSteps: envInt("PATHSIM_NR_STEPS", 100),
		NrPaths: envInt("PATHSIM_NR_PATHS", 10000),

		Reps:            envInt("PATHSIM_REPS", 100),
		ProfilePath:     envStr("PATHSIM_PROFILE_OUT", "output.dat"),
		TimeReportName:  envStr("PATHSIM_TIME_REPORT", "output_time.txt"),
		CallsReportName: envStr("PATHSIM_CALLS_REPORT", "output_calls.txt"),

		StoreRoot: envStr("PATHSIM_STORE_ROOT", "."),
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []string

	if c.NrSteps < 1 {
		errs = append(errs, "PATHSIM_NR_STEPS must be at least 1")
	}
	if c.NrPaths < 1 {
		errs = append(errs, "PATHSIM_NR_PATHS must be at least 1")
	}
	if c.Reps < 1 {
		errs = append(errs, "PATHSIM_REPS must be at least 1")
	}
	if c.Price0 <= 0 {
		fmt.Println("[WARN] PATHSIM_PRICE_0 is not positive — simulated prices will not be meaningful")
	}
	if c.Vola < 0 {
		fmt.Println("[WARN] PATHSIM_VOLA is negative — treated as-is, not rejected")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func envStr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
