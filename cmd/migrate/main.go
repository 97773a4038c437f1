package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"commission-tracker/internal/handler/middleware"
	"commission-tracker/internal/pkg/config"
	"commission-tracker/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// migrate applies or inspects the versioned SQL files under MIGRATE_DIR with
// the atlas CLI.
//
//	go run ./cmd/migrate            # apply pending files
//	go run ./cmd/migrate -status    # report applied and pending files
//	go run ./cmd/migrate -dry-run   # print what would run
func main() {
	status := flag.Bool("status", false, "report migration status instead of applying")
	dryRun := flag.Bool("dry-run", false, "print pending statements without executing them")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := atlasexec.NewClient(cfg.Migrate.WorkDir, cfg.Migrate.AtlasBin)
	if err != nil {
		logger.Error("failed to initialize atlas client", "error", err)
		os.Exit(1)
	}

	if *status {
		err = reportStatus(ctx, logger, client, cfg)
	} else {
		err = apply(ctx, logger, client, cfg, *dryRun)
	}
	if err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func apply(ctx context.Context, logger *slog.Logger, client *atlasexec.Client, cfg config.Config, dryRun bool) error {
	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:             cfg.DB.BuildDSN(),
		DirURL:          cfg.Migrate.Dir,
		RevisionsSchema: cfg.Migrate.Revisions,
		DryRun:          dryRun,
	})
	if err != nil {
		return errs.Wrap(err, "atlas migrate apply")
	}
	for _, f := range res.Applied {
		logger.Info("applied migration", "file", f.Name, "version", f.Version)
	}
	logger.Info("database is up to date", "current", res.Target, "dry_run", dryRun, "applied", len(res.Applied))
	return nil
}

func reportStatus(ctx context.Context, logger *slog.Logger, client *atlasexec.Client, cfg config.Config) error {
	st, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{
		URL:             cfg.DB.BuildDSN(),
		DirURL:          cfg.Migrate.Dir,
		RevisionsSchema: cfg.Migrate.Revisions,
	})
	if err != nil {
		return errs.Wrap(err, "atlas migrate status")
	}
	for _, f := range st.Pending {
		logger.Info("pending migration", "file", f.Name, "version", f.Version)
	}
	logger.Info("migration status", "current", st.Current, "next", st.Next, "pending", len(st.Pending), "applied", len(st.Applied))
	return nil
}
