// ABOUTME: Cobra root command that loads configuration and runs the reconciler
// ABOUTME: Flags override the environment for the output path and dry-run mode

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/xiajiun/article-scraping/core/config"
	"github.com/xiajiun/article-scraping/core/contentcache"
	"github.com/xiajiun/article-scraping/core/domain"
	"github.com/xiajiun/article-scraping/core/fetcher"
	"github.com/xiajiun/article-scraping/core/reconciler"
	"github.com/xiajiun/article-scraping/core/relevance"
	"github.com/xiajiun/article-scraping/infrastructure/logger/structured"
	appconfig "github.com/xiajiun/article-scraping/pkg/config"
)

type options struct {
	envFile string
	output  string
	dryRun  bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "article-scraper",
		Short: "Collect new keyword-relevant articles into the article store",
		Long: `article-scraper signs in to the source site, reads the featured article,
keeps it when its page mentions a configured keyword and appends it to the
article store. Articles already in the store are never fetched again.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, opts)
		},
	}

	cmd.Flags().StringVar(&opts.envFile, "env-file", ".env", "file of KEY=value pairs loaded before reading the environment")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "article store path, overrides OUTPUT_PATH (.xlsx, .db, .sqlite, .sqlite3)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "compute additions without writing the store")

	return cmd
}

func loadConfig(opts *options) (*appconfig.Config, error) {
	if err := appconfig.LoadEnvFile(opts.envFile); err != nil {
		return nil, err
	}

	cfg, err := appconfig.LoadFromEnv()
	if err != nil {
		return nil, err
	}
	if opts.output != "" {
		cfg.OutputPath = opts.output
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(ctx context.Context, opts *options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	baseLogger := structured.New(cfg.Log)
	defer baseLogger.Close()
	logger := baseLogger.With(map[string]interface{}{"run_id": runID})

	logger.Info("Starting article scraper", map[string]interface{}{
		"source":     cfg.Source.URL,
		"output":     cfg.OutputPath,
		"cache_type": cfg.Cache.Type,
		"extractor":  cfg.ContentExtractor,
		"keywords":   len(cfg.Keywords),
		"dry_run":    opts.dryRun,
	})

	deps, cleanup, err := buildDependencies(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize dependencies", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	defer cleanup()

	filter := relevance.NewFilter(cfg.Keywords)

	extractor, err := fetcher.NewTextExtractor(cfg.ContentExtractor)
	if err != nil {
		return err
	}

	cache := contentcache.New(deps.Cache, runID, deps.Logger)
	defer func() {
		if err := cache.Clear(context.Background()); err != nil {
			logger.Warn("Failed to clear content cache", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	articles := fetcher.NewArticleFetcher(
		deps.Sessions,
		domain.Credentials{Username: cfg.Source.Username, Password: cfg.Source.Password},
		filter,
		config.NewExtractionConfig(config.WithSourceURL(cfg.Source.URL)),
		deps.Logger,
	)
	details := fetcher.NewDetailFetcher(deps.HTTPClient, cache, extractor, deps.Logger)

	runOpts := []reconciler.Option{reconciler.WithRunID(runID)}
	if opts.dryRun {
		runOpts = append(runOpts, reconciler.WithDryRun())
	}

	result, err := reconciler.New(deps.Store, articles, details, filter, deps.Logger, runOpts...).Run(ctx)

	stats := cache.Stats()
	logger.Info("Content cache usage", map[string]interface{}{
		"hits":    stats.Hits,
		"misses":  stats.Misses,
		"fetches": stats.Fetches,
		"failed":  stats.Failed,
	})

	if err != nil {
		return err
	}

	logger.Info(result.String(), map[string]interface{}{
		"existing":   result.Existing,
		"candidates": result.Candidates,
		"duplicates": result.Duplicates,
		"irrelevant": result.Irrelevant,
		"persisted":  result.Persisted,
	})
	return nil
}
