package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/amirhossein-jamali/bill-processor/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/bill-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/bill-processor/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bill-processor/internal/domain/usecase/dedup"
	"github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/bill-processor/internal/infrastructure/config"
)

func main() {
	// Define command-line flags
	startDateStr := flag.String("start", "", "First calendar day to deduplicate (YYYY-MM-DD), open when empty")
	endDateStr := flag.String("end", "", "Last calendar day to deduplicate, inclusive (YYYY-MM-DD), open when empty")
	preferred := flag.String("preferred", "", "Override dedup.preferredSource for this run")
	migrate := flag.Bool("migrate", false, "Run schema migrations before deduplicating")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	loc, err := cfg.Ingest.Location()
	if err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Parse dates in the configured zone; the end day is inclusive
	req := usecase.DedupRequest{}
	if *startDateStr != "" {
		start, err := entity.StartOfDay(*startDateStr, loc)
		if err != nil {
			log.Fatalf("Error parsing start date: %v", err)
		}
		req.StartDate = &start
	}
	if *endDateStr != "" {
		end, err := entity.StartOfDay(*endDateStr, loc)
		if err != nil {
			log.Fatalf("Error parsing end date: %v", err)
		}
		end = end.AddDate(0, 0, 1)
		req.EndDate = &end
	}

	preferredSource := entity.Source(cfg.Dedup.PreferredSource)
	if *preferred != "" {
		preferredSource = entity.NormalizeSource(*preferred)
		if !entity.IsValidSource(string(preferredSource)) {
			fmt.Printf("Error: -preferred must be one of %v\n", entity.Sources())
			flag.Usage()
			os.Exit(1)
		}
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(coreport.ParseLogLevel(cfg.Logger.Level))
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider(loc)

	dbManager := database.NewManager(database.CreateConfigFromViperConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbManager.Close()

	// Stop between groups on Ctrl-C; finished groups stay committed
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *migrate {
		if err := dbManager.Migrate(ctx); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	deduplicator := dedup.NewDeduplicator(dbManager.CreateUnitOfWork(), tp, appLogger, dedup.Config{
		PreferredSource: preferredSource,
		MaxCandidates:   cfg.Dedup.MaxCandidates,
	})

	start := time.Now()
	result, err := deduplicator.Run(ctx, req)
	if err != nil {
		log.Fatalf("Dedup run failed: %v", err)
	}

	output, err := json.MarshalIndent(map[string]any{
		"candidateCount":  result.CandidateCount,
		"processedGroups": result.ProcessedGroups,
		"preferredSource": preferredSource,
		"timeZone":        loc.String(),
		"durationMs":      time.Since(start).Milliseconds(),
	}, "", "  ")
	if err != nil {
		log.Fatalf("Failed to generate JSON report: %v", err)
	}

	fmt.Println(string(output))
}
