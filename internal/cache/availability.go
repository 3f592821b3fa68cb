package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

// AvailabilityCache guarda resultados do caminho de consulta. A
// invalidação é por chave de versão: toda escrita de schedule/reserva
// incrementa a versão do médico (e a global), e a versão entra na chave —
// entradas velhas simplesmente expiram, sem SCAN.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

func NewAvailabilityCache(client *redis.Client, ttl time.Duration, log zerolog.Logger) *AvailabilityCache {
	return &AvailabilityCache{
		client: client,
		ttl:    ttl,
		log:    log.With().Str("component", "availability_cache").Logger(),
	}
}

func versionKey(practitionerID *uint) string {
	if practitionerID == nil {
		return "agenda:ver:global"
	}
	return fmt.Sprintf("agenda:ver:p:%d", *practitionerID)
}

// Version devolve a versão corrente do eixo consultado (0 se nunca houve
// escrita). Erros de redis degradam para versão 0: cache nunca derruba a
// consulta.
func (c *AvailabilityCache) Version(ctx context.Context, practitionerID *uint) int64 {
	v, err := c.client.Get(ctx, versionKey(practitionerID)).Int64()
	if err != nil && err != redis.Nil {
		c.log.Warn().Err(err).Msg("version lookup failed")
	}
	return v
}

// Bump invalida tudo que dependa do médico: a versão dele e a global.
func (c *AvailabilityCache) Bump(ctx context.Context, practitionerID uint) {
	pipe := c.client.Pipeline()
	pipe.Incr(ctx, versionKey(&practitionerID))
	pipe.Incr(ctx, versionKey(nil))
	if _, err := pipe.Exec(ctx); err != nil {
		c.log.Warn().Err(err).Uint("practitioner_id", practitionerID).Msg("version bump failed")
	}
}

func (c *AvailabilityCache) Get(ctx context.Context, key string, dest any) bool {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Str("key", key).Msg("cache get failed")
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false
	}
	return true
}

func (c *AvailabilityCache) Set(ctx context.Context, key string, val any) {
	raw, err := json.Marshal(val)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}
