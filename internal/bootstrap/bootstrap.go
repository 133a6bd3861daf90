package bootstrap

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/achaudhary7/SilverInfo-sub002/internal/application"
	"github.com/achaudhary7/SilverInfo-sub002/internal/config"
	"github.com/achaudhary7/SilverInfo-sub002/internal/domain"
	"github.com/achaudhary7/SilverInfo-sub002/internal/infrastructure/cache"
	"github.com/achaudhary7/SilverInfo-sub002/internal/infrastructure/httpx"
	"github.com/achaudhary7/SilverInfo-sub002/internal/infrastructure/logx"
	"github.com/achaudhary7/SilverInfo-sub002/internal/infrastructure/memstore"
	"github.com/achaudhary7/SilverInfo-sub002/internal/infrastructure/pg"
	"github.com/achaudhary7/SilverInfo-sub002/internal/infrastructure/provider"
	redisstore "github.com/achaudhary7/SilverInfo-sub002/internal/infrastructure/redis"
	"github.com/achaudhary7/SilverInfo-sub002/internal/infrastructure/worker"
)

// Storage bundles the history ledger with an optional readiness ping.
type Storage struct {
	History application.HistoryRepo
	Ping    func(ctx context.Context) error
}

// BuildStorage connects the durable ledger. When pg is configured but not
// reachable, the process degrades to a memory-only ledger instead of
// refusing to start; requests keep working, nothing persists.
func BuildStorage(ctx context.Context, cfg config.Config) (Storage, func(), error) {
	log := logx.L()
	switch cfg.Storage {
	case "pg":
		if cfg.DatabaseURL == "" {
			return Storage{}, func() {}, fmt.Errorf("DATABASE_URL is required for STORAGE=pg")
		}
		db, err := pg.Connect(ctx, cfg.DatabaseURL)
		if err == nil {
			err = pg.RunMigrations(ctx, db)
			if err != nil {
				db.Close()
			}
		}
		if err != nil {
			log.Warn("pg unavailable, running memory-only", zap.Error(fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)))
			return Storage{History: memstore.NewHistoryRepo()}, func() {}, nil
		}
		cleanup := func() {
			log.Info("closing pg")
			db.Close()
		}
		return Storage{History: pg.NewHistoryRepo(db), Ping: db.Ping}, cleanup, nil
	case "memory":
		return Storage{History: memstore.NewHistoryRepo()}, func() {}, nil
	default:
		return Storage{}, func() {}, fmt.Errorf("unknown STORAGE %q", cfg.Storage)
	}
}

// BuildCache builds the price cache per CACHE_BACKEND.
func BuildCache(cfg config.Config) (application.PriceCache, func(), error) {
	switch cfg.CacheBackend {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		cleanup := func() { _ = rdb.Close() }
		return redisstore.New(rdb, cfg.CacheTTL), cleanup, nil
	case "memory":
		return cache.New(cfg.CacheTTL), func() {}, nil
	case "none":
		return application.NoopCache{}, func() {}, nil
	default:
		return nil, func() {}, fmt.Errorf("unknown CACHE_BACKEND %q", cfg.CacheBackend)
	}
}

// BuildService assembles the resolver chain and the read service.
func BuildService(cfg config.Config, storage Storage, priceCache application.PriceCache) (*application.PriceService, error) {
	params := application.PricingParams{
		Metal:     cfg.Metal,
		Currency:  cfg.Currency,
		Purity:    cfg.Purity,
		Formula:   cfg.Formula(),
		SpreadPct: cfg.SpreadPct,
		BandPct:   cfg.BandPct,
	}
	if err := params.Formula.Validate(); err != nil {
		return nil, err
	}
	variants, err := cfg.Variants()
	if err != nil {
		return nil, err
	}

	var (
		spot   application.QuoteProvider
		fx     application.QuoteProvider
		source application.SeriesSource
	)
	strategies := make([]application.Strategy, 0, 5)

	if cfg.Provider == "fake" {
		fakeSpot := provider.NewFake(31.0)
		fakeFX := provider.NewFake(85.0)
		spot, fx, source = fakeSpot, fakeFX, fakeSpot
	} else {
		client := &httpx.Client{UserAgent: "silverinfo/1.0"}
		chart := &provider.ChartProvider{
			BaseURL: cfg.ChartAPIBase,
			Unit:    "USD/ozt",
			Client:  client,
			Timeout: cfg.FetchTimeout,
		}
		rates := &provider.OpenERAPIProvider{
			BaseURL: cfg.RateAPIBase,
			Client:  client,
			Timeout: cfg.FetchTimeout,
		}
		spot, fx, source = chart, rates, chart
	}

	strategies = append(strategies, &application.LiveComputeStrategy{
		Spot:           spot,
		FX:             fx,
		SpotInstrument: cfg.SpotSymbol,
		FXInstrument:   cfg.FXPair,
		Params:         params,
	})
	if cfg.Provider != "fake" && cfg.GoldAPIKey != "" {
		strategies = append(strategies, &application.AggregatorStrategy{
			Provider: &provider.GoldAPIProvider{
				BaseURL:  cfg.GoldAPIBase,
				APIKey:   cfg.GoldAPIKey,
				Metal:    cfg.Metal,
				Currency: cfg.Currency,
				Timeout:  cfg.FetchTimeout,
			},
			Tag:    domain.AggregatorProvenance("goldapi"),
			Params: params,
		})
	}
	if cfg.Provider != "fake" && cfg.MetalsAPIKey != "" {
		strategies = append(strategies, &application.AggregatorStrategy{
			Provider: &provider.MetalsAPIProvider{
				BaseURL:  cfg.MetalsAPIBase,
				APIKey:   cfg.MetalsAPIKey,
				Symbol:   cfg.Metal,
				Currency: cfg.Currency,
				Timeout:  cfg.FetchTimeout,
			},
			Tag:    domain.AggregatorProvenance("metalsapi"),
			Params: params,
		})
	}
	strategies = append(strategies,
		&application.LastKnownStrategy{History: storage.History, Params: params},
		&application.StaticStrategy{SeedGram: cfg.SeedGramPrice, Params: params},
	)

	resolver := application.NewFallbackResolver(params, cfg.SeedGramPrice, strategies)
	series := &application.LocalizedSeries{
		Chart:           source,
		FX:              fx,
		ChartInstrument: cfg.SpotSymbol,
		FXInstrument:    cfg.FXPair,
		Params:          params,
	}
	return application.NewPriceService(resolver, storage.History, series, priceCache, params, variants), nil
}

// BuildWorker wires the daily recorder.
func BuildWorker(cfg config.Config, svc *application.PriceService) application.Worker {
	return &worker.Recorder{
		Svc:   svc,
		Every: cfg.RecordEvery,
		Log:   logx.L(),
	}
}
