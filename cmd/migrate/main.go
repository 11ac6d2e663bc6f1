package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"court-booking/internal/pkg/logger"
	"court-booking/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// Applies the versioned migrations in ./migrations with the atlas CLI.
func main() {
	dir := flag.String("dir", "migrations", "migration directory")
	bin := flag.String("atlas", "atlas", "path to the atlas binary")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall timeout")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := migrate(ctx, *dir, *bin, cfg.DB.BuildDSN(), log); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func migrate(ctx context.Context, dir, bin, dsn string, logger *slog.Logger) error {
	wd, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(dir)))
	if err != nil {
		return err
	}
	defer wd.Close()

	client, err := atlasexec.NewClient(wd.Path(), bin)
	if err != nil {
		return err
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{URL: dsn})
	if err != nil {
		return err
	}

	logger.Info("migrations applied", "count", len(res.Applied), "current", res.Current, "target", res.Target)
	return nil
}
