package mocks

import (
	"context"
	"sync"

	trackingDomain "github.com/davicafu/bookcourier/internal/tracking/domain"
)

// InMemoryLedgerRepo simula LedgerRepository preservando el orden de inserción.
type InMemoryLedgerRepo struct {
	Events []*trackingDomain.TrackingEvent
	mu     sync.Mutex

	// FailAppend fuerza el error para probar el camino best-effort.
	FailAppend error
}

func NewInMemoryLedgerRepo() *InMemoryLedgerRepo {
	return &InMemoryLedgerRepo{Events: []*trackingDomain.TrackingEvent{}}
}

func (r *InMemoryLedgerRepo) Append(ctx context.Context, e *trackingDomain.TrackingEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailAppend != nil {
		return r.FailAppend
	}
	r.Events = append(r.Events, e)
	return nil
}

func (r *InMemoryLedgerRepo) ListByTrackingID(ctx context.Context, trackingID string) ([]*trackingDomain.TrackingEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*trackingDomain.TrackingEvent
	for _, e := range r.Events {
		if e.TrackingID == trackingID {
			out = append(out, e)
		}
	}
	return out, nil
}

// Verificación estática
var _ trackingDomain.LedgerRepository = (*InMemoryLedgerRepo)(nil)

// RecordingTracker captura los appends best-effort de forma síncrona, para
// poder asertar sin esperar goroutines.
type RecordingTracker struct {
	mu      sync.Mutex
	Appends [][2]string // (trackingId, status) en orden de llamada
}

func NewRecordingTracker() *RecordingTracker {
	return &RecordingTracker{}
}

func (t *RecordingTracker) AppendAsync(trackingID, status string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Appends = append(t.Appends, [2]string{trackingID, status})
}
