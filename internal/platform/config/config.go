package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// BaselineDateLayout is the day.month.year format of BASELINE_DATE.
const BaselineDateLayout = "02.01.2006"

const (
	defaultCountrySourceURL = "https://www.iban.ru/currency-codes"
	defaultHistorySourceURL = "https://www.finmarket.ru/currency/rates/"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	LogLevel      slog.Level

	// Seed and baseline
	CurrencySeedFile string
	BaselineDate     time.Time
	SkipSeed         bool

	// Upstream scraping
	CountrySourceURL    string
	HistorySourceURL    string
	HTTPTimeout         time.Duration
	ScrapeRatePerSecond float64
	IngestConcurrency   int

	// HTTP surface
	IngestRateLimit string
	FrontendBaseURL string
}

// RegisterFlags declares the command-line flags that may override environment values.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("port", "", "HTTP port to listen on")
	flags.String("seed-file", "", "path to the currency seed file (JSON or YAML)")
	flags.String("baseline-date", "", "baseline date in dd.mm.yyyy format")
	flags.Bool("skip-seed", false, "do not resolve baselines and seed currencies at start")
	flags.Int("ingest-concurrency", 0, "number of currencies fetched in parallel during ingestion")
}

// LoadConfig loads configuration from environment variables, a .env file if
// present, and the given flags (nil is allowed). Flags win over environment.
func LoadConfig(flags *pflag.FlagSet) (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CURRENCY_SEED_FILE", "currencies.json")
	v.SetDefault("BASELINE_DATE", "01.01.2020")
	v.SetDefault("SKIP_SEED", false)
	v.SetDefault("COUNTRY_SOURCE_URL", defaultCountrySourceURL)
	v.SetDefault("HISTORY_SOURCE_URL", defaultHistorySourceURL)
	v.SetDefault("HTTP_TIMEOUT", "30s")
	v.SetDefault("SCRAPE_RATE_PER_SECOND", 2.0)
	v.SetDefault("INGEST_CONCURRENCY", 1)
	v.SetDefault("INGEST_RATE_LIMIT", "10-H")
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	v.AutomaticEnv()

	if flags != nil {
		for key, flag := range map[string]string{
			"PORT":               "port",
			"CURRENCY_SEED_FILE": "seed-file",
			"BASELINE_DATE":      "baseline-date",
			"SKIP_SEED":          "skip-seed",
			"INGEST_CONCURRENCY": "ingest-concurrency",
		} {
			f := flags.Lookup(flag)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", flag, err)
			}
		}
	}

	cfg := &Config{
		DatabaseURL:         v.GetString("PGSQL_URL"),
		Port:                v.GetString("PORT"),
		IsProduction:        v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:       v.GetBool("ENABLE_DB_CHECK"),
		CurrencySeedFile:    v.GetString("CURRENCY_SEED_FILE"),
		SkipSeed:            v.GetBool("SKIP_SEED"),
		CountrySourceURL:    v.GetString("COUNTRY_SOURCE_URL"),
		HistorySourceURL:    v.GetString("HISTORY_SOURCE_URL"),
		ScrapeRatePerSecond: v.GetFloat64("SCRAPE_RATE_PER_SECOND"),
		IngestConcurrency:   v.GetInt("INGEST_CONCURRENCY"),
		IngestRateLimit:     v.GetString("INGEST_RATE_LIMIT"),
		FrontendBaseURL:     v.GetString("FRONTEND_BASE_URL"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(strings.ToUpper(v.GetString("LOG_LEVEL")))); err != nil {
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to INFO.\n", v.GetString("LOG_LEVEL"))
		cfg.LogLevel = slog.LevelInfo
	}

	baselineStr := v.GetString("BASELINE_DATE")
	baselineDate, err := time.Parse(BaselineDateLayout, baselineStr)
	if err != nil {
		return nil, fmt.Errorf("invalid BASELINE_DATE %q, expected dd.mm.yyyy: %w", baselineStr, err)
	}
	cfg.BaselineDate = baselineDate

	timeoutStr := v.GetString("HTTP_TIMEOUT")
	cfg.HTTPTimeout, err = time.ParseDuration(timeoutStr)
	if err != nil || cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 30 * time.Second
		log.Printf("Warning: Invalid value for HTTP_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, cfg.HTTPTimeout)
	}

	if cfg.IngestConcurrency < 1 {
		log.Printf("Warning: INGEST_CONCURRENCY must be at least 1, got %d. Defaulting to 1.\n", cfg.IngestConcurrency)
		cfg.IngestConcurrency = 1
	}

	if cfg.ScrapeRatePerSecond <= 0 {
		log.Printf("Warning: SCRAPE_RATE_PER_SECOND must be positive, got %v. Defaulting to 2.\n", cfg.ScrapeRatePerSecond)
		cfg.ScrapeRatePerSecond = 2
	}

	return cfg, nil
}
