package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"restaurant-scout/agent"
	"restaurant-scout/config"
	"restaurant-scout/metrics"
	"restaurant-scout/pipeline"
	"restaurant-scout/profile"
	"restaurant-scout/query"
	"restaurant-scout/services"
	"restaurant-scout/storage"
	"restaurant-scout/utils"
)

func main() {
	// ================== Bootstrap ====================
	cfg := config.Load()
	logger := utils.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("Restaurant Scout")

	if len(os.Args) < 2 {
		fmt.Println("Usage: restaurant-scout \"<dining request>\"")
		fmt.Println("Example: restaurant-scout \"dinner for 4 tomorrow at 7pm\"")
		os.Exit(1)
	}
	request := strings.Join(os.Args[1:], " ")

	logger.Info("Sources: %s | Top N: %d", strings.Join(cfg.Sources, ", "), cfg.TopN)
	logger.Info("Concurrency: %d | Rate delay: %dms | Retries: %d",
		cfg.MaxConcurrency, cfg.RateLimitDelay, cfg.MaxRetries)

	if cfg.MetricsAddr != "" {
		metrics.Serve(cfg.MetricsAddr)
		logger.Info("Metrics exposed on %s/metrics", cfg.MetricsAddr)
	}

	// =================== Profile ========================================
	prof, err := profile.LoadOrDefault(cfg.ProfilePath)
	if err != nil {
		logger.Error("Cannot load preference profile: %v", err)
		os.Exit(1)
	}

	// =================== PostgreSQL Setup ========================================
	pgWriter, err := storage.NewPostgresWriter(cfg.DatabaseURL, logger)
	if err != nil {
		logger.Error("Cannot connect to PostgreSQL: %v", err)
		logger.Error("Make sure Docker is running: docker start scout-postgres")
		os.Exit(1)
	}
	defer pgWriter.Close()

	if err := pgWriter.CreateTable(); err != nil {
		logger.Error("Failed to create DB table: %v", err)
		os.Exit(1)
	}

	// =============== Query Interpretation ===================================
	intent := query.Interpret(request, prof, time.Now())
	when := "unspecified date"
	if intent.Date != nil {
		when = intent.Date.Format("Mon Jan 2")
	}
	logger.Info("Interpreted: %s for %d on %s", intent.MealType, intent.PartySize, when)

	// =============== Ranking ===================================
	ctx, cancel := context.WithTimeout(context.Background(), cfg.OverallTimeout)
	defer cancel()

	browser := agent.NewBrowserAgent(logger, cfg.RateLimitDelay, cfg.MaxRetries)
	pipe := pipeline.New(pipeline.Options{
		Sources:        cfg.Sources,
		SourceTimeout:  cfg.SourceTimeout,
		MaxConcurrency: cfg.MaxConcurrency,
	}, browser, prof, logger)

	result := pipe.Rank(ctx, intent, cfg.TopN)

	// ==== Report ============================
	services.PrintRankedReport(result)

	// ========= CSV: ranked summary ===========================
	csvWriter := storage.NewCSVWriter(cfg.CSVFilePath, logger)
	if err := csvWriter.SaveResult(result); err != nil {
		logger.Error("Failed to write CSV: %v", err)
		// Non-fatal: continue to DB storage
	}

	// ========= JSON: full result ===========================
	jsonWriter := storage.NewJSONWriter(cfg.JSONFilePath, logger)
	if err := jsonWriter.SaveResult(result); err != nil {
		logger.Error("Failed to write JSON: %v", err)
	}

	// ========= PostgreSQL: store recommendations ============
	if err := pgWriter.SaveResult(result); err != nil {
		logger.Error("Failed to insert into PostgreSQL: %v", err)
		os.Exit(1)
	}

	fmt.Println(" Done! Ranked summary →", cfg.CSVFilePath)
	fmt.Println(" Full result →", cfg.JSONFilePath)
	fmt.Println(" Recommendations stored in PostgreSQL table: recommendations")
}
