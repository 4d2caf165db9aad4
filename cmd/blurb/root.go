package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"blurb/internal/client"
	"blurb/internal/config"
	"blurb/internal/enricher"
	"blurb/internal/movielist"
)

const defaultDelaySeconds = 1.5

func newRootCommand() *cobra.Command {
	var inputFlag string
	var outputFlag string
	var delayFlag float64

	rootCmd := &cobra.Command{
		Use:           "blurb",
		Short:         "Enrich a movie list with IMDb plot descriptions",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(inputFlag, outputFlag, delayFlag, cmd.Flags().Changed("delay"))
		},
	}

	rootCmd.Flags().StringVarP(&inputFlag, "input", "i", "", "Input movie list file")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file with descriptions")
	rootCmd.Flags().Float64VarP(&delayFlag, "delay", "d", defaultDelaySeconds, "Delay between requests (seconds)")
	_ = rootCmd.MarkFlagRequired("input")
	_ = rootCmd.MarkFlagRequired("output")

	return rootCmd
}

func run(inputPath, outputPath string, delaySeconds float64, delaySet bool) error {
	cfg := config.GetConfig()
	logger := config.GetLogger()

	inputFile, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("could not read input file: %w", err)
	}
	entries, parseErr := movielist.Parse(inputFile)
	_ = inputFile.Close()
	if parseErr != nil {
		return fmt.Errorf("could not read input file: %w", parseErr)
	}

	logger.Info().Int("entries", len(entries)).Str("input", inputPath).Msg("Found movie entries")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e := enricher.NewEnricher(client.NewClient(cfg), requestDelay(cfg, delaySeconds, delaySet))
	enriched, err := e.Enrich(ctx, entries)
	if err != nil {
		return err
	}

	outputFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("could not write output file: %w", err)
	}
	defer outputFile.Close()

	if err := movielist.WriteTable(outputFile, enriched); err != nil {
		return fmt.Errorf("could not write output file: %w", err)
	}

	logger.Info().Int("entries", len(enriched)).Str("output", outputPath).Msg("Wrote enriched movie list")
	return nil
}

// requestDelay resolves the inter-request delay: an explicit --delay flag
// wins, then the configured request_delay, then the built-in default.
func requestDelay(cfg *config.Config, flagSeconds float64, flagSet bool) time.Duration {
	if flagSet {
		return time.Duration(flagSeconds * float64(time.Second))
	}
	if cfg.RequestDelay != "" {
		if d, err := time.ParseDuration(cfg.RequestDelay); err == nil {
			return d
		}
		log := config.GetLogger()
		log.Warn().Str("request_delay", cfg.RequestDelay).Msg("Invalid request_delay, using default")
	}
	return time.Duration(defaultDelaySeconds * float64(time.Second))
}
