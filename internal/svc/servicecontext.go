package svc

import (
	"log"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx driver
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/core/stores/sqlx"

	cachepkg "stockdeck-api/internal/cache"
	"stockdeck-api/internal/config"
	"stockdeck-api/internal/gateway"
	"stockdeck-api/internal/storage"
	marketpkg "stockdeck-api/pkg/market"
	_ "stockdeck-api/pkg/market/providers/alphavantage"
	"stockdeck-api/pkg/market/synthetic"
)

type ServiceContext struct {
	Config config.Config

	Store   storage.Store
	Gateway *gateway.Gateway

	MarketConfig    *marketpkg.Config
	MarketProviders map[string]marketpkg.Provider
	DefaultMarket   marketpkg.Provider

	// Set only when Postgres is configured; the memory store runs otherwise.
	DBConn sqlx.SqlConn
	Cache  *cachepkg.PayloadCache
}

func NewServiceContext(c config.Config) *ServiceContext {
	svc := &ServiceContext{Config: c}

	if c.Market.Value != nil {
		providers, err := c.Market.Value.BuildProviders()
		if err != nil {
			log.Fatalf("failed to build market providers: %v", err)
		}
		svc.MarketConfig = c.Market.Value
		svc.MarketProviders = providers
		if c.Market.Value.Default != "" {
			svc.DefaultMarket = providers[c.Market.Value.Default]
		}
	}

	if c.Redis.Host != "" {
		rdb, err := redis.NewRedis(c.Redis)
		if err != nil {
			log.Fatalf("failed to connect redis: %v", err)
		}
		svc.Cache = cachepkg.NewPayloadCache(rdb)
	}

	if c.Postgres.DSN != "" {
		conn := sqlx.NewSqlConn("pgx", c.Postgres.DSN)
		svc.DBConn = conn
		svc.Store = storage.NewPostgresStore(conn)
	} else {
		svc.Store = storage.NewMemoryStore()
	}

	ttls := cachepkg.NewTTLSet(c.TTL)
	svc.Gateway = gateway.New(svc.DefaultMarket, synthetic.New(), svc.Cache, ttls)

	return svc
}
