package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"creatorhub/config"
	logs "creatorhub/internal/infra/log"
	"creatorhub/internal/infra/persistence/migrations"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

func main() {
	direction := flag.String("direction", string(migrations.Up), "Migration direction (up, down)")
	flag.Parse()

	if err := run(migrations.Direction(*direction)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}

func run(direction migrations.Direction) error {
	_ = godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	if cfg.Postgres == nil {
		return errors.New("postgres configuration is required")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "connect to postgres")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "get sql.DB")
	}
	defer sqlDB.Close()

	logger.Info("Running migrations", slog.String("direction", string(direction)))

	return migrations.Run(sqlDB, direction, logger)
}
