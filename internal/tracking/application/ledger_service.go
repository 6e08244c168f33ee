package application

import (
	"context"
	"time"

	"go.uber.org/zap"

	sharedEvents "github.com/davicafu/bookcourier/internal/shared/events"
	sharedBus "github.com/davicafu/bookcourier/internal/shared/platform/bus"
	"github.com/davicafu/bookcourier/internal/tracking/domain"
)

// LedgerService define los casos de uso del ledger de seguimiento.
type LedgerService struct {
	repo   domain.LedgerRepository
	events sharedBus.EventPublisher
	log    *zap.Logger
}

// NewLedgerService constructor
func NewLedgerService(repo domain.LedgerRepository, events sharedBus.EventPublisher, log *zap.Logger) *LedgerService {
	return &LedgerService{repo: repo, events: events, log: log}
}

// Append deriva el mensaje, estampa la hora e inserta un registro nuevo.
// Nunca actualiza un registro existente: duplicados legales.
func (s *LedgerService) Append(ctx context.Context, trackingID, status string) (*domain.TrackingEvent, error) {
	if trackingID == "" {
		return nil, domain.ErrEmptyTrackingID
	}
	if status == "" {
		return nil, domain.ErrEmptyStatus
	}

	event := domain.NewTrackingEvent(trackingID, status)
	if err := s.repo.Append(ctx, event); err != nil {
		return nil, err
	}

	if s.events != nil {
		if evt, err := sharedEvents.NewIntegrationEvent(sharedEvents.TrackingAppended, event); err == nil {
			if err := s.events.Publish(ctx, evt); err != nil {
				s.log.Debug("tracking event publish failed", zap.Error(err))
			}
		}
	}

	return event, nil
}

// AppendAsync es la variante best-effort que usan las rutas de libros,
// pedidos y pagos: el append corre en segundo plano con su propio contexto
// y un fallo solo se loggea, nunca llega al caller. Disponibilidad de la
// operación primaria por encima de la completitud del audit trail.
func (s *LedgerService) AppendAsync(trackingID, status string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if _, err := s.Append(ctx, trackingID, status); err != nil {
			s.log.Warn("⚠️ best-effort ledger append failed",
				zap.String("trackingId", trackingID),
				zap.String("status", status),
				zap.Error(err),
			)
		}
	}()
}

// Query devuelve el ledger completo de un trackingId en orden de inserción.
// Sin paginación ni filtros; id desconocido => secuencia vacía.
func (s *LedgerService) Query(ctx context.Context, trackingID string) ([]*domain.TrackingEvent, error) {
	if trackingID == "" {
		return nil, domain.ErrEmptyTrackingID
	}

	events, err := s.repo.ListByTrackingID(ctx, trackingID)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []*domain.TrackingEvent{}
	}
	return events, nil
}
