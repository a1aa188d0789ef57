package main

import (
	"fmt"
	"log"

	"gonum.org/v1/gonum/mat"

	"pathsim/internal/config"
	"pathsim/internal/encode"
	"pathsim/internal/profile"
	"pathsim/internal/simulation"
	"pathsim/internal/store"
)

// meanPath collapses the price matrix to the per-step average across paths.
func meanPath(prices *mat.Dense) []float64 {
	rows, cols := prices.Dims()

	out := make([]float64, rows)
	for t := 0; t < rows; t++ {
		sum := 0.0
		for _, v := range prices.RawRowView(t) {
			sum += v
		}
		out[t] = sum / float64(cols)
	}
	return out
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	run := func() {
		simulation.SimulatePaths(cfg.Drift, cfg.Vola, cfg.Price0, cfg.NrSteps, cfg.NrPaths)
	}

	fmt.Println("starting")
	avg := profile.Timed(cfg.Reps, run)
	fmt.Printf("average over %d runs: %v\n", cfg.Reps, avg)

	stop, err := profile.StartCPUProfile(cfg.ProfilePath)
	if err != nil {
		log.Fatalf("Error starting CPU profile: %v", err)
	}

	session := profile.NewSession()

	var prices *mat.Dense
	for i := 0; i < cfg.Reps; i++ {
		session.Time("simulate_paths", func() {
			prices = simulation.SimulatePaths(cfg.Drift, cfg.Vola, cfg.Price0, cfg.NrSteps, cfg.NrPaths)
		})
	}

	var mean []float64
	session.Time("mean_path", func() {
		mean = meanPath(prices)
	})

	var data []byte
	session.Time("encode_path", func() {
		data, err = encode.EncodePath(mean)
	})
	stop()

	if err != nil {
		log.Fatalf("Error encoding path: %v", err)
	}

	s := store.New(cfg.StoreRoot)
	if err := s.Init(); err != nil {
		log.Fatalf("Error initializing store: %v", err)
	}

	if err := session.WriteReport(s.ReportPath(cfg.TimeReportName), profile.SortCumulative); err != nil {
		log.Fatalf("Error writing time report: %v", err)
	}
	if err := session.WriteReport(s.ReportPath(cfg.CallsReportName), profile.SortCalls); err != nil {
		log.Fatalf("Error writing calls report: %v", err)
	}

	hash, err := s.Put(data)
	if err != nil {
		log.Fatalf("Error saving data: %v", err)
	}
	fmt.Printf("Successfully committed object: %s\n", hash)

	roundTrip, err := encode.DecodePath(data)
	if err != nil {
		fmt.Printf("Failed to read object: %v\n", err)
		return
	}
	for t, v := range roundTrip {
		fmt.Printf("Step: %d, Mean price: %f\n", t, v)
	}
}
