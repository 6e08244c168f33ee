package application

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	orderDomain "github.com/davicafu/bookcourier/internal/order/domain"
	"github.com/davicafu/bookcourier/internal/payment/domain"
	sharedEvents "github.com/davicafu/bookcourier/internal/shared/events"
	sharedBus "github.com/davicafu/bookcourier/internal/shared/platform/bus"
	trackingDomain "github.com/davicafu/bookcourier/internal/tracking/domain"
	"github.com/google/uuid"
)

// PaymentService define los casos de uso de cobros: creación de sesiones de
// checkout y reconciliación post-redirect.
type PaymentService struct {
	repo     domain.PaymentRepository
	provider domain.CheckoutProvider
	orders   domain.OrderReader
	tracker  domain.TrackingLogger
	events   sharedBus.EventPublisher
	log      *zap.Logger

	successURL string
	cancelURL  string
}

// NewPaymentService constructor
func NewPaymentService(
	repo domain.PaymentRepository,
	provider domain.CheckoutProvider,
	orders domain.OrderReader,
	tracker domain.TrackingLogger,
	events sharedBus.EventPublisher,
	successURL, cancelURL string,
	log *zap.Logger,
) *PaymentService {
	return &PaymentService{
		repo:       repo,
		provider:   provider,
		orders:     orders,
		tracker:    tracker,
		events:     events,
		successURL: successURL,
		cancelURL:  cancelURL,
		log:        log,
	}
}

// ListPayments devuelve los pagos de un comprador.
func (s *PaymentService) ListPayments(ctx context.Context, email string) ([]*domain.Payment, error) {
	payments, err := s.repo.ListByBuyer(ctx, email)
	if err != nil {
		return nil, err
	}
	if payments == nil {
		payments = []*domain.Payment{}
	}
	return payments, nil
}

// CreateCheckoutSession abre una sesión de checkout hosteada para un pedido
// y devuelve la URL de redirect.
func (s *PaymentService) CreateCheckoutSession(ctx context.Context, orderID uuid.UUID) (*domain.CheckoutSession, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return s.provider.CreateSession(ctx, domain.CreateSessionInput{
		OrderID:    order.ID.String(),
		BuyerEmail: order.BuyerEmail,
		Amount:     order.UnitPrice * float64(order.Quantity),
		ProductRef: order.BookTitle,
		SuccessURL: s.successURL,
		CancelURL:  s.cancelURL,
	})
}

// ReconcileSettlement resuelve la sesión contra el proveedor UNA vez y aplica
// sus efectos exactamente una vez: si ya hay un pago con la misma referencia
// de transacción, devuelve el registro existente sin re-aplicar nada
// (el redirect de éxito puede repetirse). Si la sesión está pagada, marca el
// pedido como pagado e inserta el pago en una misma transacción, y después
// registra payment_completed en el ledger (best-effort, fuera de la tx).
// Devuelve applied=false cuando la llamada fue un replay.
func (s *PaymentService) ReconcileSettlement(ctx context.Context, sessionID string) (*domain.Payment, bool, error) {
	session, err := s.provider.GetSession(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.repo.GetByTransactionRef(ctx, session.TransactionRef)
	if err == nil {
		return existing, false, nil // replay: sin efectos secundarios
	}
	if !errors.Is(err, domain.ErrPaymentNotFound) {
		return nil, false, err
	}

	if session.Status != domain.SessionPaid {
		return nil, false, domain.ErrSessionNotPaid
	}

	orderID, err := uuid.Parse(session.OrderID)
	if err != nil {
		return nil, false, orderDomain.ErrOrderNotFound
	}
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, false, err
	}

	payment := &domain.Payment{
		ID:             uuid.New(),
		OrderID:        order.ID,
		BuyerEmail:     session.BuyerEmail,
		Amount:         session.Amount,
		TransactionRef: session.TransactionRef,
		SessionID:      session.ID,
		PaidAt:         time.Now().UTC(),
	}

	if err := s.repo.ApplySettlement(ctx, payment); err != nil {
		return nil, false, err
	}

	s.tracker.AppendAsync(order.TrackingID, trackingDomain.StatusPaymentCompleted)

	if s.events != nil {
		if evt, err := sharedEvents.NewIntegrationEvent(sharedEvents.PaymentCompleted, payment); err == nil {
			if err := s.events.Publish(ctx, evt); err != nil {
				s.log.Debug("event publish failed", zap.String("type", sharedEvents.PaymentCompleted), zap.Error(err))
			}
		}
	}

	return payment, true, nil
}
