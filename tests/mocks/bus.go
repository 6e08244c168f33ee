package mocks

import (
	"context"
	"sync"

	sharedBus "github.com/davicafu/bookcourier/internal/shared/platform/bus"
)

// DummyPublisher registra los eventos publicados para asertarlos en tests.
type DummyPublisher struct {
	Events []interface{}
	mu     sync.Mutex

	// FailWith fuerza el error devuelto por Publish.
	FailWith error
}

func (p *DummyPublisher) Publish(ctx context.Context, event interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.FailWith != nil {
		return p.FailWith
	}
	p.Events = append(p.Events, event)
	return nil
}

// Published devuelve una copia de los eventos registrados.
func (p *DummyPublisher) Published() []interface{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]interface{}, len(p.Events))
	copy(out, p.Events)
	return out
}

// Verificación estática
var _ sharedBus.EventPublisher = (*DummyPublisher)(nil)
