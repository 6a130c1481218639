package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/Bhavuk-Devex/AVO/internal/config"
	"github.com/Bhavuk-Devex/AVO/internal/infrastructure/migrations"
	"github.com/Bhavuk-Devex/AVO/internal/logging"
)

func main() {
	logg := logging.New(logging.Options{ServiceName: "migrate"})

	_ = godotenv.Load()

	cmd := flag.String("cmd", "up", "migration command: up|down|status|version|redo|reset")
	version := flag.String("version", "", "target version for up-to/down-to")
	flag.Parse()

	cfg, err := config.Load()
	requireResource(logg, "config", err)

	logg = logging.New(logging.Options{
		ServiceName: "migrate",
		Level:       logging.ParseLevel(cfg.LogLevel),
		Format:      cfg.LogFormat,
	})
	ctx := logg.WithField(context.Background(), "cmd", *cmd)

	db, err := sql.Open("postgres", cfg.DSN)
	requireResource(logg, "database", err)
	defer db.Close()

	requireResource(logg, "database ping", db.PingContext(ctx))

	var args []string
	if *version != "" {
		args = append(args, *version)
	}

	if err := migrations.Run(ctx, db, *cmd, args...); err != nil {
		logg.Error(ctx, "migration failed", err)
		os.Exit(1)
	}
	logg.Info(ctx, "migration complete")
}

func requireResource(logg *logging.Logger, name string, err error) {
	if err == nil {
		return
	}
	logg.Error(context.Background(), fmt.Sprintf("failed to initialise %s", name), err)
	os.Exit(1)
}
