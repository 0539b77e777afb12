package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"bookcatalog/db"
	"bookcatalog/internal/config"
	"bookcatalog/internal/loader"
	"bookcatalog/internal/platform/logger"
	"bookcatalog/internal/platform/postgres"
)

func main() {
	var (
		file       = flag.String("file", "", "JSON file holding an array of books; defaults to the built-in catalog")
		publishers = flag.Bool("publishers", false, "seed the built-in publisher list before loading books")
		runMigrate = flag.Bool("migrate", false, "apply pending migrations first")
	)
	flag.Parse()

	config.LoadEnvFiles()
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		stdlog.Fatalf("build logger: %v", err)
	}
	defer func() { _ = log.Sync() }()

	books := loader.SampleCatalog()
	if *file != "" {
		books, err = readSeedFile(*file)
		if err != nil {
			log.Fatal("cannot read seed file", zap.String("file", *file), zap.Error(err))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.Open(ctx, cfg.DB.DSN, cfg.DB.MaxConns, log)
	if err != nil {
		log.Fatal("cannot open database", zap.Error(err))
	}
	defer pool.Close()

	if *runMigrate {
		if err := db.Migrate(ctx, pool, log); err != nil {
			log.Fatal("cannot migrate database", zap.Error(err))
		}
	}

	svc := loader.NewService(loader.NewPostgresStore(pool), postgres.NewTransactor(log, pool), log, nil)

	if *publishers {
		pubReport := svc.SeedPublishers(ctx, loader.SamplePublishers())
		log.Info("publishers seeded", zap.Int("created", pubReport.PublishersCreated))
	}

	report := svc.Run(ctx, books)
	if err := printReport(os.Stdout, report); err != nil {
		log.Error("cannot print report", zap.Error(err))
	}
	if report.BooksFailed > 0 {
		_ = log.Sync()
		os.Exit(1)
	}
}

// readSeedFile decodes a JSON array of books.
func readSeedFile(path string) ([]loader.SeedBook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var books []loader.SeedBook
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&books); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return books, nil
}

func printReport(w io.Writer, report loader.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
