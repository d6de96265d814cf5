package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"trending-videos/domain/repository"
	"trending-videos/infrastructure/clients/youtube"
	"trending-videos/infrastructure/configuration"
	"trending-videos/infrastructure/filecsv"
	"trending-videos/infrastructure/logger"
	"trending-videos/infrastructure/persistence"
	"trending-videos/usecase"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

// NewRootCommand builds the trending-videos command. Flags are bound to the
// viper keys so config files and env vars can provide the same settings.
func NewRootCommand() *cobra.Command {
	v := configuration.NewViper()

	cmd := &cobra.Command{
		Use:   "trending-videos",
		Short: "Export YouTube trending videos per country to CSV files",
		Long: `trending-videos fetches the mostPopular chart of every country code listed
in the country code file and writes one {date}_{country}_videos.csv per country.

The API key is read from YOUTUBE_API_KEY or youtube.apiKey in config.json.

Examples:
  trending-videos
  trending-videos --country_code_path codes.txt --output_dir data/`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), v, cmd.OutOrStdout())
		},
	}

	cmd.Flags().String("country_code_path", configuration.DefaultCountryCodePath,
		"Path to the list of countries codes file, one code per line")
	cmd.Flags().String("output_dir", configuration.DefaultOutputDir,
		"Path to the folder that outputted files are saved")
	_ = v.BindPFlag(configuration.KeyCountryCodePath, cmd.Flags().Lookup("country_code_path"))
	_ = v.BindPFlag(configuration.KeyOutputDir, cmd.Flags().Lookup("output_dir"))

	return cmd
}

// Execute is called by main.main(). A rate-limited run exits with status 2,
// any other failure with status 1.
func Execute() {
	configuration.LoadEnvFromFile("config.env", ".env")

	err := NewRootCommand().ExecuteContext(context.Background())
	if err == nil {
		return
	}
	var rateErr *youtube.RateLimitError
	if errors.As(err, &rateErr) {
		logger.GetLogger().WithField("error", err).Error("Excessive requests. Continue later")
		os.Exit(2)
	}
	logger.GetLogger().WithField("error", err).Error("Trending export failed")
	os.Exit(1)
}

func run(ctx context.Context, v *viper.Viper, progress io.Writer) error {
	cfg, err := configuration.Load(v)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	regionCodes, err := filecsv.ReadRegionCodes(cfg.Export.CountryCodePath)
	if err != nil {
		return err
	}
	logger.GetLogger().
		WithField("regions", len(regionCodes)).
		WithField("outputDir", cfg.Export.OutputDir).
		Info("Starting trending export")

	ytConfig := &youtube.Config{
		APIKey:  cfg.YouTube.APIKey,
		BaseURL: cfg.YouTube.BaseURL,
		Timeout: cfg.YouTube.Timeout,
	}
	trendingUsecase := usecase.NewTrendingUsecase(
		youtube.NewTrendingClient(ytConfig),
		filecsv.NewTrendingFile(cfg.Export.OutputDir),
		cfg.YouTube.PageSize,
		cfg.YouTube.MaxPages,
	).WithProgress(progress)

	if cfg.Export.Categories {
		categoryClient, err := youtube.NewCategoryClient(ctx, ytConfig)
		if err != nil {
			return err
		}
		trendingUsecase.WithCategories(categoryClient)
	}

	if cfg.Database.Driver != "" {
		store, closeDB, err := openStore(cfg.Database)
		if err != nil {
			return err
		}
		defer closeDB()
		trendingUsecase.WithStore(store)
	}

	return runUntilSignal(ctx, func(ctx context.Context) error {
		return trendingUsecase.Run(ctx, regionCodes)
	})
}

func openStore(cfg configuration.Database) (repository.ITrendingStore, func(), error) {
	db, err := persistence.NewSQLDB(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connect %s database: %w", cfg.Driver, err)
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing database")
		}
	}

	ensure := persistence.EnsureTrendingSchema
	if cfg.Driver == persistence.DriverSQLServer {
		ensure = persistence.EnsureTrendingSchemaMSSQL
	}
	if err := ensure(db); err != nil {
		closeDB()
		return nil, nil, err
	}

	store, err := persistence.NewTrendingStore(db, cfg.Driver)
	if err != nil {
		closeDB()
		return nil, nil, err
	}
	logger.GetLogger().WithField("driver", cfg.Driver).Info("Database sink enabled")
	return store, closeDB, nil
}

// runUntilSignal runs job and cancels its context on SIGINT/SIGTERM.
func runUntilSignal(ctx context.Context, job func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return job(gctx)
	})
	g.Go(func() error {
		select {
		case sig := <-interrupt:
			logger.GetLogger().WithField("signal", sig.String()).Warn("Interrupted, stopping export")
			return fmt.Errorf("interrupted by %s", sig)
		case <-gctx.Done():
			return nil
		}
	})
	return g.Wait()
}
