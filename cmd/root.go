package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/restaurant-cli/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "restaurant-cli",
	Short: "Restaurant directory scraper with Google ratings",
	Long:  "Walks a restaurant directory city page region by region, scrapes every restaurant's detail page, looks up its Google Places rating and writes the results to a CSV file.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		flags := cmd.Flags()
		if flags.Changed("log-level") {
			cfg.Log.Level, _ = flags.GetString("log-level")
		}
		if flags.Changed("log-format") {
			cfg.Log.Format, _ = flags.GetString("log-format")
		}

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (overrides log.level)")
	rootCmd.PersistentFlags().String("log-format", "", "log format: json or console (overrides log.format)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
