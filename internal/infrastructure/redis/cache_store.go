package redisstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/achaudhary7/SilverInfo-sub002/internal/application"
	"github.com/achaudhary7/SilverInfo-sub002/internal/domain"
)

// Store memoizes resolved price records in redis under a fixed TTL. The
// cache is best effort: any failure, expiry, or unparseable entry reads as a
// miss and write errors are dropped.
type Store struct {
	Client *redis.Client
	TTL    time.Duration
}

var _ application.PriceCache = (*Store)(nil)

func New(client *redis.Client, ttl time.Duration) *Store {
	return &Store{Client: client, TTL: ttl}
}

func (s *Store) Get(ctx context.Context, key string) (domain.PriceRecord, bool) {
	raw, err := s.Client.Get(ctx, key).Bytes()
	if err != nil {
		return domain.PriceRecord{}, false
	}
	var rec domain.PriceRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		// Corrupt entry; drop it and treat as a miss.
		_ = s.Client.Del(ctx, key).Err()
		return domain.PriceRecord{}, false
	}
	return rec, true
}

func (s *Store) Set(ctx context.Context, key string, rec domain.PriceRecord) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return
	}
	_ = s.Client.Set(ctx, key, raw, s.TTL).Err()
}
