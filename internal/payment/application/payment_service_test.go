package application

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	orderDomain "github.com/davicafu/bookcourier/internal/order/domain"
	"github.com/davicafu/bookcourier/internal/payment/domain"
	"github.com/davicafu/bookcourier/internal/payment/infra/outbound/provider/fake"
	sharedBus "github.com/davicafu/bookcourier/internal/shared/platform/bus"
	trackingDomain "github.com/davicafu/bookcourier/internal/tracking/domain"
	"github.com/davicafu/bookcourier/tests/mocks"
)

// orderReader adapta el mock de pedidos al puerto OrderReader.
type orderReader struct{ repo *mocks.InMemoryOrderRepo }

func (r orderReader) GetOrder(ctx context.Context, id uuid.UUID) (*orderDomain.Order, error) {
	return r.repo.GetByID(ctx, id)
}

func seedOrder(t *testing.T, orders *mocks.InMemoryOrderRepo) *orderDomain.Order {
	t.Helper()
	order := &orderDomain.Order{
		ID:            uuid.New(),
		BookID:        uuid.New(),
		BookTitle:     "Rayuela",
		BuyerEmail:    "buyer@example.com",
		Quantity:      2,
		UnitPrice:     9.5,
		Status:        orderDomain.OrderPending,
		PaymentStatus: orderDomain.PaymentUnpaid,
		TrackingID:    trackingDomain.NewTrackingID(),
		CreatedAt:     time.Now().UTC(),
	}
	assert.NoError(t, orders.Create(context.Background(), order))
	return order
}

func newPaymentService(orders *mocks.InMemoryOrderRepo, provider *fake.Provider, tracker *mocks.RecordingTracker, events *mocks.DummyPublisher) (*PaymentService, *mocks.InMemoryPaymentRepo) {
	repo := mocks.NewInMemoryPaymentRepo()
	repo.OrderStore = orders
	var bus sharedBus.EventPublisher
	if events != nil {
		bus = events
	}
	service := NewPaymentService(repo, provider, orderReader{orders}, tracker, bus,
		"https://front.local/success", "https://front.local/cancel", zap.NewNop())
	return service, repo
}

func TestCreateCheckoutSession_AmountFromSnapshot(t *testing.T) {
	orders := mocks.NewInMemoryOrderRepo()
	provider := fake.New()
	service, _ := newPaymentService(orders, provider, mocks.NewRecordingTracker(), nil)

	order := seedOrder(t, orders)

	session, err := service.CreateCheckoutSession(context.Background(), order.ID)
	assert.NoError(t, err)
	assert.NotEmpty(t, session.URL)
	// unitPrice * quantity del snapshot del pedido
	assert.Equal(t, 19.0, session.Amount)
	assert.Equal(t, order.ID.String(), session.OrderID)
}

func TestCreateCheckoutSession_OrderNotFound(t *testing.T) {
	orders := mocks.NewInMemoryOrderRepo()
	service, _ := newPaymentService(orders, fake.New(), mocks.NewRecordingTracker(), nil)

	_, err := service.CreateCheckoutSession(context.Background(), uuid.New())
	assert.ErrorIs(t, err, orderDomain.ErrOrderNotFound)
}

func TestReconcileSettlement_AppliesOnce(t *testing.T) {
	orders := mocks.NewInMemoryOrderRepo()
	provider := fake.New()
	tracker := mocks.NewRecordingTracker()
	events := &mocks.DummyPublisher{}
	service, repo := newPaymentService(orders, provider, tracker, events)

	order := seedOrder(t, orders)
	session, err := service.CreateCheckoutSession(context.Background(), order.ID)
	assert.NoError(t, err)
	provider.MarkPaid(session.ID)

	payment, applied, err := service.ReconcileSettlement(context.Background(), session.ID)
	assert.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, order.ID, payment.OrderID)
	assert.Equal(t, 19.0, payment.Amount)

	// El pedido quedó pagado y el pago insertado
	got, _ := orders.GetByID(context.Background(), order.ID)
	assert.Equal(t, orderDomain.PaymentPaid, got.PaymentStatus)
	assert.Len(t, repo.Payments, 1)

	// ✅ payment_completed en el ledger y evento de integración
	assert.Len(t, tracker.Appends, 1)
	assert.Equal(t, order.TrackingID, tracker.Appends[0][0])
	assert.Equal(t, trackingDomain.StatusPaymentCompleted, tracker.Appends[0][1])
	assert.Len(t, events.Published(), 1)
}

func TestReconcileSettlement_ReplayIsIdempotent(t *testing.T) {
	orders := mocks.NewInMemoryOrderRepo()
	provider := fake.New()
	tracker := mocks.NewRecordingTracker()
	events := &mocks.DummyPublisher{}
	service, repo := newPaymentService(orders, provider, tracker, events)

	order := seedOrder(t, orders)
	session, _ := service.CreateCheckoutSession(context.Background(), order.ID)
	provider.MarkPaid(session.ID)

	first, applied, err := service.ReconcileSettlement(context.Background(), session.ID)
	assert.NoError(t, err)
	assert.True(t, applied)

	// El redirect de éxito se repite: mismo registro, sin efectos nuevos
	second, applied, err := service.ReconcileSettlement(context.Background(), session.ID)
	assert.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.TransactionRef, second.TransactionRef)

	assert.Len(t, repo.Payments, 1)
	assert.Len(t, tracker.Appends, 1)
	assert.Len(t, events.Published(), 1)
}

func TestReconcileSettlement_SessionNotPaid(t *testing.T) {
	orders := mocks.NewInMemoryOrderRepo()
	provider := fake.New()
	service, repo := newPaymentService(orders, provider, mocks.NewRecordingTracker(), nil)

	order := seedOrder(t, orders)
	session, _ := service.CreateCheckoutSession(context.Background(), order.ID)
	// Sin MarkPaid: la sesión sigue "open"

	_, _, err := service.ReconcileSettlement(context.Background(), session.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotPaid)
	assert.Empty(t, repo.Payments)

	got, _ := orders.GetByID(context.Background(), order.ID)
	assert.Equal(t, orderDomain.PaymentUnpaid, got.PaymentStatus)
}

func TestListPayments_EmptyIsNotNil(t *testing.T) {
	orders := mocks.NewInMemoryOrderRepo()
	service, _ := newPaymentService(orders, fake.New(), mocks.NewRecordingTracker(), nil)

	payments, err := service.ListPayments(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	assert.NotNil(t, payments)
	assert.Empty(t, payments)
}
