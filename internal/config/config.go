package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Site   SiteConfig   `yaml:"site" mapstructure:"site"`
	Google GoogleConfig `yaml:"google" mapstructure:"google"`
	Scrape ScrapeConfig `yaml:"scrape" mapstructure:"scrape"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// SiteConfig describes the restaurant directory being scraped.
type SiteConfig struct {
	CityURL       string `yaml:"city_url" mapstructure:"city_url"`
	UserAgent     string `yaml:"user_agent" mapstructure:"user_agent"`
	TimeoutSecs   int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	SelectorsFile string `yaml:"selectors_file" mapstructure:"selectors_file"`
}

// GoogleConfig holds Google Places API settings.
type GoogleConfig struct {
	Key     string `yaml:"key" mapstructure:"key"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// ScrapeConfig configures a scrape run.
type ScrapeConfig struct {
	Workers int      `yaml:"workers" mapstructure:"workers"` // 0 = one per CPU
	Output  string   `yaml:"output" mapstructure:"output"`
	Regions []string `yaml:"regions" mapstructure:"regions"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment. A .env file in the
// working directory, if present, is loaded into the environment first;
// variables already set take precedence over it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("RESTAURANT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("site.city_url", "https://www.zomato.com/auckland")
	v.SetDefault("site.user_agent", "")
	v.SetDefault("site.timeout_secs", 30)
	v.SetDefault("site.selectors_file", "")
	v.SetDefault("google.key", "")
	v.SetDefault("google.base_url", "https://maps.googleapis.com/maps/api/place")
	v.SetDefault("scrape.workers", 0)
	v.SetDefault("scrape.output", "zomato-auckland.csv")
	v.SetDefault("scrape.regions", []string{})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the settings a scrape run needs.
func (c *Config) Validate() error {
	var missing []string
	if c.Site.CityURL == "" {
		missing = append(missing, "site.city_url is required")
	}
	if c.Google.Key == "" {
		missing = append(missing, "google.key is required (set RESTAURANT_GOOGLE_KEY)")
	}
	if c.Scrape.Workers < 0 {
		missing = append(missing, fmt.Sprintf("scrape.workers must be >= 0, got %d", c.Scrape.Workers))
	}
	if c.Scrape.Output == "" {
		missing = append(missing, "scrape.output is required")
	}
	if len(missing) > 0 {
		return eris.Errorf("config: %s", strings.Join(missing, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
