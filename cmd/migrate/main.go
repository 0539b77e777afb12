package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	stdlog "log"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"bookcatalog/db"
	"bookcatalog/internal/config"
	"bookcatalog/internal/platform/logger"
	"bookcatalog/internal/platform/postgres"
)

var commands = []string{"up", "down", "status", "version", "create"}

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, version, create")
		name    = flag.String("name", "", "Name for 'create' command")
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

	if *command == "create" {
		if err := createMigration(cfg.Migrations.Dir, *name); err != nil {
			log.Fatal("cannot create migration", zap.Error(err))
		}
		log.Info("migration created", zap.String("name", *name), zap.String("dir", cfg.Migrations.Dir))
		return
	}
	if err := checkCommand(*command); err != nil {
		log.Fatal("invalid command", zap.Error(err))
	}

	ctx := context.Background()
	pool, err := postgres.Open(ctx, cfg.DB.DSN, cfg.DB.MaxConns, log)
	if err != nil {
		log.Fatal("cannot open database", zap.Error(err))
	}
	defer pool.Close()

	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	if err := migrate(ctx, sqlDB, *command); err != nil {
		log.Fatal("migration failed", zap.String("command", *command), zap.Error(err))
	}
	log.Info("migration command finished", zap.String("command", *command))
}

func checkCommand(command string) error {
	for _, c := range commands {
		if c == command {
			return nil
		}
	}
	return fmt.Errorf("unknown command %q, use one of %v", command, commands)
}

// migrate runs a goose command against the embedded migrations.
func migrate(ctx context.Context, sqlDB *sql.DB, command string) error {
	if err := checkCommand(command); err != nil {
		return err
	}

	goose.SetBaseFS(db.Migrations)
	defer goose.SetBaseFS(nil)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	switch command {
	case "up":
		return goose.UpContext(ctx, sqlDB, db.MigrationsDir)
	case "down":
		return goose.DownContext(ctx, sqlDB, db.MigrationsDir)
	case "status":
		return goose.StatusContext(ctx, sqlDB, db.MigrationsDir)
	case "version":
		return goose.VersionContext(ctx, sqlDB, db.MigrationsDir)
	default:
		return fmt.Errorf("command %q needs no database", command)
	}
}

// createMigration writes a new SQL migration skeleton into dir on disk.
func createMigration(dir, name string) error {
	if name == "" {
		return fmt.Errorf("name is required for 'create' command")
	}
	goose.SetBaseFS(nil)
	return goose.Create(nil, dir, name, "sql")
}
