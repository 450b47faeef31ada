package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/bellatrix11176/customer-support-text-mining/internal/wordlist"
	"github.com/bellatrix11176/customer-support-text-mining/pkg/textmining"
	"github.com/bellatrix11176/customer-support-text-mining/pkg/textmining/config"
	"github.com/bellatrix11176/customer-support-text-mining/pkg/textmining/stoplist"
	"github.com/bellatrix11176/customer-support-text-mining/pkg/textmining/store/sqlite"
)

func newRootCommand() *cobra.Command {
	var (
		configFlag    string
		rootFlag      string
		thresholdFlag int
		minLenFlag    int
	)

	defaults := config.Default()

	rootCmd := &cobra.Command{
		Use:   "textmine",
		Short: "Mine token frequencies from a customer support corpus",
		Long: "textmine reads the support corpus, tokenizes and filters it, counts token\n" +
			"frequencies, and writes CSV, xlsx, summary, chart, and run-log artifacts\n" +
			"into the output directory. Running with no arguments uses the defaults.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFlag)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("root") {
				cfg.ProjectRoot = rootFlag
			}
			if cmd.Flags().Changed("threshold") {
				cfg.Threshold = thresholdFlag
			}
			if cmd.Flags().Changed("min-token-length") {
				cfg.MinTokenLength = minLenFlag
			}
			return run(cmd, cfg)
		},
	}

	rootCmd.Flags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().StringVar(&rootFlag, "root", defaults.ProjectRoot, "Project root containing the data and output directories")
	rootCmd.Flags().IntVar(&thresholdFlag, "threshold", defaults.Threshold, "Minimum count for the thresholded exports")
	rootCmd.Flags().IntVar(&minLenFlag, "min-token-length", defaults.MinTokenLength, "Minimum token length kept by the filter")

	return rootCmd
}

func run(cmd *cobra.Command, cfg config.Config) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := cmd.Context()

	cache, err := sqlite.Open(ctx, cfg.CachePath())
	if err != nil {
		return fmt.Errorf("open stopword cache: %w", err)
	}
	defer cache.Close()

	miner := textmining.New(textmining.Options{
		Config:   cfg,
		Provider: stoplist.NewCached(cache, wordlist.NewFetcher(), cfg.StopwordSourceURL),
	})

	logger.Info("starting run", "input", cfg.InputPath(), "threshold", cfg.Threshold)

	summary, err := miner.Run(ctx)
	if err != nil && len(summary.Written) == 0 {
		return err
	}

	logger.Info("run complete",
		"run_id", summary.RunID,
		"unique_tokens", summary.UniqueTokens,
		"filtered_tokens", summary.FilteredTokens,
		"thresholded", summary.ThresholdedCount,
		"artifacts", len(summary.Written),
	)
	for _, path := range summary.Written {
		logger.Info("artifact written", "path", path)
	}
	for _, werr := range summary.Errors {
		logger.Error("artifact failed", "error", werr)
	}

	// Partial success still exits non-zero so batch schedulers notice.
	return summary.Err()
}
