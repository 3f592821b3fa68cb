package lock

import (
	"context"
	"time"
)

// Locker serializa seções críticas por chave. Acquire é não-bloqueante:
// devolve false quando a chave já está tomada, e quem chama decide se
// re-tenta dentro do próprio prazo.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}
