package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"findash/pkg/api/assumptions"
	"findash/pkg/api/risk"
	"findash/pkg/api/runs"
	"findash/pkg/api/valuation"
	"findash/pkg/core/config"
	"findash/pkg/core/store"
)

const defaultConfigPath = "config/defaults.yaml"

func main() {
	// Load environment variables
	godotenv.Load()

	// Load configuration, falling back to built-in defaults
	cfg, err := config.Load(defaultConfigPath)
	if err != nil {
		fmt.Printf("[WARNING] %v\n", err)
		fmt.Println("  Falling back to built-in defaults")
		cfg = config.Default()
	}

	// Run storage is optional: without DATABASE_URL the save/load
	// endpoints answer 503 and everything else works.
	if os.Getenv("DATABASE_URL") != "" {
		if err := store.InitDB(context.Background()); err != nil {
			fmt.Printf("[WARNING] Run storage unavailable: %v\n", err)
		} else {
			defer store.Close()
			fmt.Println("[STORE] Run storage connected")
		}
	} else {
		fmt.Println("[STORE] DATABASE_URL unset, run storage disabled")
	}

	// Valuation endpoints
	http.HandleFunc("/api/valuation/report", valuation.HandleReport)
	http.HandleFunc("/api/valuation/report-html", valuation.HandleReportHTML)

	// Risk analysis endpoints
	http.HandleFunc("/api/risk/npv", risk.HandleNPV)
	http.HandleFunc("/api/risk/sensitivity", risk.HandleSensitivity)
	http.HandleFunc("/api/risk/scenario", risk.HandleScenario)
	http.HandleFunc("/api/risk/montecarlo", risk.HandleMonteCarlo)
	http.HandleFunc("/api/risk/report", risk.HandleFull)

	// Saved runs
	runsHandler := runs.NewHandler()
	http.HandleFunc("/api/runs/save", runsHandler.HandleSave)
	http.HandleFunc("/api/runs/load", runsHandler.HandleLoad)

	// Defaults for the presentation layer
	defaultsHandler := assumptions.NewHandler(cfg)
	http.HandleFunc("/api/defaults", defaultsHandler.HandleDefaults)

	fmt.Printf("API server starting on %s...\n", cfg.Server.Addr)
	fmt.Println("  - POST /api/valuation/report")
	fmt.Println("  - POST /api/valuation/report-html")
	fmt.Println("  - POST /api/risk/npv")
	fmt.Println("  - POST /api/risk/sensitivity")
	fmt.Println("  - POST /api/risk/scenario")
	fmt.Println("  - POST /api/risk/montecarlo")
	fmt.Println("  - POST /api/risk/report")
	fmt.Println("  - POST /api/runs/save")
	fmt.Println("  - GET  /api/runs/load")
	fmt.Println("  - GET  /api/defaults")

	if err := http.ListenAndServe(cfg.Server.Addr, nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
