package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/gorditas/config"
	"github.com/gorditas/database"
	"github.com/gorditas/generator"
)

func main() {
	// Parse command line flags
	var (
		orders     = flag.Int("orders", -1, "Number of orders to generate (overrides ORDER_COUNT)")
		expenses   = flag.Int("expenses", -1, "Number of expenses to generate (overrides EXPENSE_COUNT)")
		days       = flag.Int("days", -1, "Window length in days, ending now (overrides WINDOW_DAYS)")
		seed       = flag.Int64("seed", 0, "Random seed for a reproducible run (overrides RANDOM_SEED)")
		migrate    = flag.Bool("migrate", false, "Run schema migration before generating")
		dryRun     = flag.Bool("dry-run", false, "Generate into memory and print the report without touching the database")
		noQueryLog = flag.Bool("no-query-log", false, "Disable query logging during generation")
		help       = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	fmt.Println("🌮 Gorditas dataset generator")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *orders >= 0 {
		cfg.Generator.OrderCount = *orders
	}
	if *expenses >= 0 {
		cfg.Generator.ExpenseCount = *expenses
	}
	if *days > 0 {
		cfg.Generator.WindowDays = *days
	}
	if *seed != 0 {
		cfg.Generator.Seed = *seed
	}

	var store database.Store
	if *dryRun {
		log.Println("Dry run: generating into memory, database untouched")
		store = database.NewMemoryStore()
	} else {
		fmt.Printf("📊 Database: %s@%s:%s/%s\n", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		db, err := database.Connect(&cfg.Database, *noQueryLog)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer func() {
			// Best-effort close; never masks a generation failure.
			if cerr := database.Close(db); cerr != nil {
				log.Printf("Warning: closing database: %v", cerr)
			}
		}()

		if *migrate {
			if err := database.AutoMigrate(db); err != nil {
				log.Fatalf("Migration failed: %v", err)
			}
		}

		store = database.NewGormStore(db)
	}

	gen := generator.New(cfg.Generator, generator.DefaultCatalog(), store)
	if err := gen.Run(); err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	report, err := database.BuildReport(store)
	if err != nil {
		log.Fatalf("Failed to build report: %v", err)
	}
	report.Print()
}

func showHelp() {
	fmt.Println("Gorditas Dataset Generator")
	fmt.Println("==========================")
	fmt.Println("\nUsage:")
	fmt.Println("  go run cmd/generate/main.go [flags]")
	fmt.Println("\nFlags:")
	fmt.Println("  -orders N     Number of orders to generate (default from ORDER_COUNT, 75)")
	fmt.Println("  -expenses N   Number of expenses to generate (default from EXPENSE_COUNT, 40)")
	fmt.Println("  -days N       Window length in days ending now (default from WINDOW_DAYS, 30)")
	fmt.Println("  -seed N       Random seed for a reproducible run")
	fmt.Println("  -migrate      Run schema migration before generating")
	fmt.Println("  -dry-run      Generate into memory only and print the report")
	fmt.Println("  -no-query-log Disable query logging")
	fmt.Println("\nExamples:")
	fmt.Println("  # Generate with defaults")
	fmt.Println("  go run cmd/generate/main.go -migrate")
	fmt.Println("\n  # Reproducible small run")
	fmt.Println("  go run cmd/generate/main.go -orders 10 -expenses 5 -seed 42")
}
