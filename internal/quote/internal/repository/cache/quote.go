package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/quotemart/quotemart/internal/quote/internal/domain"
	"github.com/redis/go-redis/v9"
)

var ErrKeyNotExist = redis.Nil

// QuoteCache 报价单详情缓存。缓存里的 view_cnt 可能滞后于库里的值
type QuoteCache interface {
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (domain.Quote, error)
	Set(ctx context.Context, q domain.Quote) error
}

type QuoteECache struct {
	cache      ecache.Cache
	expiration time.Duration
}

func NewQuoteECache(c ecache.Cache) QuoteCache {
	return &QuoteECache{
		cache: &ecache.NamespaceCache{
			Namespace: "quote:",
			C:         c,
		},
		expiration: time.Minute * 10,
	}
}

func (cache *QuoteECache) Delete(ctx context.Context, id int64) error {
	_, err := cache.cache.Delete(ctx, cache.key(id))
	return err
}

func (cache *QuoteECache) Get(ctx context.Context, id int64) (domain.Quote, error) {
	var q domain.Quote
	err := cache.cache.Get(ctx, cache.key(id)).JSONScan(&q)
	return q, err
}

func (cache *QuoteECache) Set(ctx context.Context, q domain.Quote) error {
	data, err := json.Marshal(q)
	if err != nil {
		return err
	}
	return cache.cache.Set(ctx, cache.key(q.ID), data, cache.expiration)
}

func (cache *QuoteECache) key(id int64) string {
	return fmt.Sprintf("quotemart:quote:detail:%d", id)
}
