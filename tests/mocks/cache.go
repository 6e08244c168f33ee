package mocks

import (
	"context"
	"encoding/json"
	"sync"

	sharedCache "github.com/davicafu/bookcourier/internal/shared/platform/cache"
)

// DummyCache simula la caché serializando a JSON igual que Redis, para que
// el round-trip Set/Get se comporte como el adapter real.
type DummyCache struct {
	data map[string][]byte
	mu   sync.Mutex

	// FailGet fuerza un error en Get para ejercitar el retry del servicio.
	FailGet error
}

func NewDummyCache() *DummyCache {
	return &DummyCache{data: make(map[string][]byte)}
}

func (c *DummyCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.FailGet != nil {
		return false, c.FailGet
	}
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *DummyCache) Set(ctx context.Context, key string, val interface{}, ttlSecs int) error {
	raw, err := json.Marshal(val)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = raw
	return nil
}

func (c *DummyCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

// SetForTest puebla la caché sin pasar por el servicio.
func (c *DummyCache) SetForTest(key string, val interface{}) {
	_ = c.Set(context.Background(), key, val, 0)
}

// Has indica si la clave quedó en caché (para asertar invalidaciones).
func (c *DummyCache) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok
}

// Verificación estática
var _ sharedCache.Cache = (*DummyCache)(nil)
