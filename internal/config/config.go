package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/achaudhary7/SilverInfo-sub002/internal/domain"
)

type Config struct {
	// Common
	Env      string `env:"ENV" envDefault:"local"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Port     string `env:"PORT" envDefault:"8080"`

	// Instrument
	Metal      string  `env:"METAL" envDefault:"XAG"`
	Currency   string  `env:"CURRENCY" envDefault:"INR"`
	SpotSymbol string  `env:"SPOT_SYMBOL" envDefault:"SI=F"`
	FXPair     string  `env:"FX_PAIR" envDefault:"USD/INR"`
	Purity     float64 `env:"PURITY" envDefault:"0.999"`

	// Markup formula (fractions; version must bump when any step changes)
	DutyPct        float64 `env:"DUTY_PCT" envDefault:"0.10"`
	TaxPct         float64 `env:"TAX_PCT" envDefault:"0.03"`
	PremiumPct     float64 `env:"PREMIUM_PCT" envDefault:"0.10"`
	FormulaVersion string  `env:"FORMULA_VERSION" envDefault:"2025-07-01"`
	SpreadPct      float64 `env:"SPREAD_PCT" envDefault:"0.02"`
	BandPct        float64 `env:"BAND_PCT" envDefault:"0.015"`

	// Last-resort seed, local currency per gram
	SeedGramPrice float64 `env:"SEED_GRAM_PRICE" envDefault:"95.00"`

	// Providers
	Provider      string        `env:"PROVIDER" envDefault:"live"` // live | fake
	ChartAPIBase  string        `env:"CHART_API_BASE" envDefault:"https://query1.finance.yahoo.com"`
	RateAPIBase   string        `env:"RATE_API_BASE" envDefault:"https://open.er-api.com"`
	GoldAPIBase   string        `env:"GOLDAPI_BASE" envDefault:"https://www.goldapi.io"`
	GoldAPIKey    string        `env:"GOLDAPI_KEY"`
	MetalsAPIBase string        `env:"METALSAPI_BASE" envDefault:"https://metals-api.com/api"`
	MetalsAPIKey  string        `env:"METALSAPI_KEY"`
	FetchTimeout  time.Duration `env:"FETCH_TIMEOUT" envDefault:"3s"`

	// Storage
	Storage     string `env:"STORAGE" envDefault:"pg"` // pg | memory
	DatabaseURL string `env:"DATABASE_URL"`

	// Cache
	CacheBackend  string        `env:"CACHE_BACKEND" envDefault:"memory"` // redis | memory | none
	CacheTTL      time.Duration `env:"CACHE_TTL" envDefault:"3m"`
	RedisAddr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`

	// Worker
	RecordEvery time.Duration `env:"RECORD_EVERY" envDefault:"6h"`

	// Variants
	VariantsFile string `env:"VARIANTS_FILE"`
}

// Load reads .env (if present) and the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}
	return cfg, nil
}

// Formula assembles the configured markup formula. The version travels with
// every record so historical comparisons know which formula produced it.
func (c Config) Formula() domain.MarkupFormula {
	return domain.NewMarkupFormula(c.DutyPct, c.TaxPct, c.PremiumPct, c.FormulaVersion)
}
