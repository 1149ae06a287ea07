package refdata

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/radieske/bet-ledger-service/internal/ledger-service/bet"
)

const (
	keyBankrolls  = "refdata:bankrolls"
	keyBookmakers = "refdata:bookmakers"
)

// Source é quem resolve os dados de referência quando o cache falha
type Source interface {
	Bankrolls(ctx context.Context) ([]bet.Bankroll, error)
	Bookmakers(ctx context.Context) ([]bet.Bookmaker, error)
}

// Cache é um read-through em Redis para bankrolls e bookmakers
// Erros de cache nunca derrubam a leitura; caem direto no source
type Cache struct {
	rdb *redis.Client
	src Source
	ttl time.Duration
	log *zap.Logger
}

func NewCache(rdb *redis.Client, src Source, ttl time.Duration, log *zap.Logger) *Cache {
	return &Cache{rdb: rdb, src: src, ttl: ttl, log: log}
}

// Bankrolls devolve os bankrolls, preferindo o cache
func (c *Cache) Bankrolls(ctx context.Context) ([]bet.Bankroll, error) {
	var cached []bet.Bankroll
	if c.lookup(ctx, keyBankrolls, &cached) {
		return cached, nil
	}

	fresh, err := c.src.Bankrolls(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, keyBankrolls, fresh)
	return fresh, nil
}

// Bookmakers devolve as casas, preferindo o cache
func (c *Cache) Bookmakers(ctx context.Context) ([]bet.Bookmaker, error) {
	var cached []bet.Bookmaker
	if c.lookup(ctx, keyBookmakers, &cached) {
		return cached, nil
	}

	fresh, err := c.src.Bookmakers(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, keyBookmakers, fresh)
	return fresh, nil
}

func (c *Cache) lookup(ctx context.Context, key string, dst any) bool {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("refdata cache get", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.log.Warn("refdata cache decode", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *Cache) store(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn("refdata cache set", zap.String("key", key), zap.Error(err))
	}
}
