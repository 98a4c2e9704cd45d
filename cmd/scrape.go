package main

import (
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/restaurant-cli/internal/enrich"
	"github.com/sells-group/restaurant-cli/internal/pipeline"
	"github.com/sells-group/restaurant-cli/pkg/google"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape every region and write the CSV",
	Long: `Scrape every region of the configured city page and write one CSV row
per restaurant, including its Google rating and number of ratings.

Regions run concurrently (--workers, default one per CPU); restaurants within
a region are scraped in listing order. Use --region to restrict the run to
named regions. A failed region is logged and skipped; the command still
exits non-zero once the file is written.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		applyScrapeFlags(cmd)
		if err := cfg.Validate(); err != nil {
			return err
		}

		log := zap.L().With(zap.String("command", "scrape"))

		s, err := newScraper(cfg.Site)
		if err != nil {
			return err
		}
		places := google.NewClient(cfg.Google.Key, google.WithBaseURL(cfg.Google.BaseURL))
		p := pipeline.New(s, enrich.NewEnricher(places),
			pipeline.WithWorkers(cfg.Scrape.Workers),
			pipeline.WithRegions(cfg.Scrape.Regions...),
		)

		log.Info("starting scrape",
			zap.String("city_url", cfg.Site.CityURL),
			zap.String("output", cfg.Scrape.Output),
		)

		summary, err := p.RunToFile(ctx, cfg.Site.CityURL, cfg.Scrape.Output)
		if summary != nil {
			log.Info("scrape complete",
				zap.String("run_id", summary.RunID),
				zap.Int("regions", summary.Regions),
				zap.Int("failed", summary.Failed),
				zap.Int("rows", summary.Rows),
				zap.Duration("elapsed", summary.Elapsed),
			)
		}
		if err != nil {
			return eris.Wrap(err, "scrape")
		}
		return nil
	},
}

// applyScrapeFlags overrides config values with any flags set explicitly.
func applyScrapeFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Scrape.Output, _ = flags.GetString("output")
	}
	if flags.Changed("workers") {
		cfg.Scrape.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("region") {
		cfg.Scrape.Regions, _ = flags.GetStringArray("region")
	}
	if flags.Changed("city-url") {
		cfg.Site.CityURL, _ = flags.GetString("city-url")
	}
}

func init() {
	scrapeCmd.Flags().StringP("output", "o", "", "output CSV path (overrides scrape.output)")
	scrapeCmd.Flags().IntP("workers", "w", 0, "regions scraped concurrently (0 = one per CPU)")
	scrapeCmd.Flags().StringArray("region", nil, "only scrape this region (repeatable)")
	scrapeCmd.Flags().String("city-url", "", "city page URL (overrides site.city_url)")
	rootCmd.AddCommand(scrapeCmd)
}
