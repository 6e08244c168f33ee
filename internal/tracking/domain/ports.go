package domain

import (
	"context"
	"errors"
)

// ---------- Errores de dominio ----------
var (
	ErrEmptyTrackingID = errors.New("trackingId is required")
	ErrEmptyStatus     = errors.New("status is required")
)

// ---------- Interfaces (Ports) ----------

// LedgerRepository persiste el ledger append-only.
type LedgerRepository interface {
	// Append inserta SIEMPRE un registro nuevo. Los duplicados
	// (trackingId, status) son legales y se acumulan.
	Append(ctx context.Context, e *TrackingEvent) error

	// ListByTrackingID devuelve todos los registros del id en orden de
	// inserción (orden natural del storage). Id desconocido => slice vacío,
	// nunca error.
	ListByTrackingID(ctx context.Context, trackingID string) ([]*TrackingEvent, error)
}
