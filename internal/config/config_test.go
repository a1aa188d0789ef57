package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Drift != 0.001 || cfg.Vola != 0.005 || cfg.Price0 != 100.0 {
		t.Fatalf("unexpected simulation defaults: %+v", cfg)
	}
	if cfg.NrSteps != 100 || cfg.NrPaths != 10000 || cfg.Reps != 100 {
		t.Fatalf("unexpected sizing defaults: %+v", cfg)
	}
	if cfg.TimeReportName != "output_time.txt" || cfg.CallsReportName != "output_calls.txt" {
		t.Fatalf("unexpected report defaults: %+v", cfg)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PATHSIM_DRIFT", "0.01")
	t.Setenv("PATHSIM_NR_PATHS", "500")
	t.Setenv("PATHSIM_TIME_REPORT", "times.txt")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Drift != 0.01 {
		t.Fatalf("expected drift override 0.01, got %v", cfg.Drift)
	}
	if cfg.NrPaths != 500 {
		t.Fatalf("expected path override 500, got %v", cfg.NrPaths)
	}
	if cfg.TimeReportName != "times.txt" {
		t.Fatalf("expected report override, got %v", cfg.TimeReportName)
	}
}

func TestLoad_IgnoresMalformedValues(t *testing.T) {
	t.Setenv("PATHSIM_NR_STEPS", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.NrSteps != 100 {
		t.Fatalf("expected fallback 100, got %v", cfg.NrSteps)
	}
}

func TestValidate_RejectsNonPositiveCounts(t *testing.T) {
	t.Setenv("PATHSIM_NR_STEPS", "0")
	t.Setenv("PATHSIM_REPS", "-1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = cfg.Validate()
	if err == nil {
		t.Fatal("expected validation failure")
	}
	if !strings.Contains(err.Error(), "PATHSIM_NR_STEPS") || !strings.Contains(err.Error(), "PATHSIM_REPS") {
		t.Fatalf("expected both violations reported, got: %v", err)
	}
}
