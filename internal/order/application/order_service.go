package application

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/davicafu/bookcourier/internal/order/domain"
	sharedEvents "github.com/davicafu/bookcourier/internal/shared/events"
	sharedBus "github.com/davicafu/bookcourier/internal/shared/platform/bus"
	trackingDomain "github.com/davicafu/bookcourier/internal/tracking/domain"
	"github.com/google/uuid"
)

// OrderService define los casos de uso de pedidos.
type OrderService struct {
	repo    domain.OrderRepository
	books   domain.BookReader
	tracker domain.TrackingLogger
	events  sharedBus.EventPublisher
	log     *zap.Logger
}

// NewOrderService constructor
func NewOrderService(repo domain.OrderRepository, books domain.BookReader, tracker domain.TrackingLogger, events sharedBus.EventPublisher, log *zap.Logger) *OrderService {
	return &OrderService{repo: repo, books: books, tracker: tracker, events: events, log: log}
}

// PlaceOrder crea un pedido copiando el snapshot (título, precio, trackingId)
// del libro. Si el comprador ya tiene un pedido activo del mismo libro,
// devuelve ErrOrderAlreadyExists y la ruta responde un 200 informativo.
func (s *OrderService) PlaceOrder(ctx context.Context, buyerEmail string, bookID uuid.UUID, quantity int) (*domain.Order, error) {
	exists, err := s.repo.ExistsActive(ctx, buyerEmail, bookID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrOrderAlreadyExists
	}

	book, err := s.books.GetBook(ctx, bookID)
	if err != nil {
		return nil, err
	}

	if quantity <= 0 {
		quantity = 1
	}

	order := &domain.Order{
		ID:            uuid.New(),
		BookID:        book.ID,
		BookTitle:     book.Title,
		BuyerEmail:    buyerEmail,
		Quantity:      quantity,
		UnitPrice:     book.Price,
		Status:        domain.OrderPending,
		PaymentStatus: domain.PaymentUnpaid,
		TrackingID:    book.TrackingID,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.tracker.AppendAsync(order.TrackingID, trackingDomain.StatusOrdered)
	s.publish(ctx, order)

	return order, nil
}

// GetOrder obtiene un pedido por id.
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

// ListOrders devuelve los pedidos de un comprador.
func (s *OrderService) ListOrders(ctx context.Context, buyerEmail string) ([]*domain.Order, error) {
	orders, err := s.repo.ListByBuyer(ctx, buyerEmail)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []*domain.Order{}
	}
	return orders, nil
}

// UpdateStatus cambia el estado del pedido y registra book_order_<status>
// en el ledger (best-effort).
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) (*domain.Order, error) {
	order, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.tracker.AppendAsync(order.TrackingID, trackingDomain.OrderStatusCode(string(status)))
	s.publish(ctx, order)

	return order, nil
}

func (s *OrderService) publish(ctx context.Context, order *domain.Order) {
	if s.events == nil {
		return
	}
	evt, err := sharedEvents.NewIntegrationEvent(sharedEvents.OrderStatusChanged, order)
	if err != nil {
		return
	}
	if err := s.events.Publish(ctx, evt); err != nil {
		s.log.Debug("event publish failed", zap.String("type", sharedEvents.OrderStatusChanged), zap.Error(err))
	}
}
