package application

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	bookDomain "github.com/davicafu/bookcourier/internal/book/domain"
	"github.com/davicafu/bookcourier/internal/order/domain"
	trackingDomain "github.com/davicafu/bookcourier/internal/tracking/domain"
	"github.com/davicafu/bookcourier/tests/mocks"
)

func seedBook(t *testing.T, books *mocks.InMemoryBookRepo) *bookDomain.Book {
	t.Helper()
	book := &bookDomain.Book{
		ID:         uuid.New(),
		Title:      "Cien años de soledad",
		Author:     "García Márquez",
		Status:     bookDomain.BookAvailable,
		Price:      15.0,
		Quantity:   2,
		TrackingID: trackingDomain.NewTrackingID(),
		OwnerEmail: "librarian@example.com",
		CreatedAt:  time.Now().UTC(),
	}
	assert.NoError(t, books.Create(context.Background(), book))
	return book
}

// bookReader adapta el mock de libros al puerto BookReader.
type bookReader struct{ repo *mocks.InMemoryBookRepo }

func (r bookReader) GetBook(ctx context.Context, id uuid.UUID) (*bookDomain.Book, error) {
	return r.repo.GetByID(ctx, id)
}

func TestPlaceOrder_CopiesSnapshotAndLogsOrdered(t *testing.T) {
	books := mocks.NewInMemoryBookRepo()
	repo := mocks.NewInMemoryOrderRepo()
	tracker := mocks.NewRecordingTracker()
	events := &mocks.DummyPublisher{}
	service := NewOrderService(repo, bookReader{books}, tracker, events, zap.NewNop())

	book := seedBook(t, books)

	order, err := service.PlaceOrder(context.Background(), "buyer@example.com", book.ID, 2)
	assert.NoError(t, err)
	assert.Equal(t, book.Title, order.BookTitle)
	assert.Equal(t, book.Price, order.UnitPrice)
	assert.Equal(t, book.TrackingID, order.TrackingID)
	assert.Equal(t, domain.OrderPending, order.Status)
	assert.Equal(t, domain.PaymentUnpaid, order.PaymentStatus)

	// ✅ book_has_ordered en el ledger, best-effort
	assert.Len(t, tracker.Appends, 1)
	assert.Equal(t, book.TrackingID, tracker.Appends[0][0])
	assert.Equal(t, trackingDomain.StatusOrdered, tracker.Appends[0][1])

	assert.Len(t, events.Published(), 1)
}

func TestPlaceOrder_DuplicateActiveOrder(t *testing.T) {
	books := mocks.NewInMemoryBookRepo()
	repo := mocks.NewInMemoryOrderRepo()
	tracker := mocks.NewRecordingTracker()
	service := NewOrderService(repo, bookReader{books}, tracker, nil, zap.NewNop())

	book := seedBook(t, books)

	_, err := service.PlaceOrder(context.Background(), "buyer@example.com", book.ID, 1)
	assert.NoError(t, err)

	// Segundo pedido del mismo libro por el mismo comprador: no-op
	_, err = service.PlaceOrder(context.Background(), "buyer@example.com", book.ID, 1)
	assert.ErrorIs(t, err, domain.ErrOrderAlreadyExists)
	assert.Len(t, repo.Orders, 1)
	assert.Len(t, tracker.Appends, 1)
}

func TestPlaceOrder_CancelledOrderDoesNotBlock(t *testing.T) {
	books := mocks.NewInMemoryBookRepo()
	repo := mocks.NewInMemoryOrderRepo()
	service := NewOrderService(repo, bookReader{books}, mocks.NewRecordingTracker(), nil, zap.NewNop())

	book := seedBook(t, books)

	first, err := service.PlaceOrder(context.Background(), "buyer@example.com", book.ID, 1)
	assert.NoError(t, err)
	_, err = service.UpdateStatus(context.Background(), first.ID, domain.OrderCancelled)
	assert.NoError(t, err)

	// Un pedido cancelado no cuenta como activo
	_, err = service.PlaceOrder(context.Background(), "buyer@example.com", book.ID, 1)
	assert.NoError(t, err)
}

func TestPlaceOrder_DefaultsQuantityToOne(t *testing.T) {
	books := mocks.NewInMemoryBookRepo()
	repo := mocks.NewInMemoryOrderRepo()
	service := NewOrderService(repo, bookReader{books}, mocks.NewRecordingTracker(), nil, zap.NewNop())

	book := seedBook(t, books)

	order, err := service.PlaceOrder(context.Background(), "buyer@example.com", book.ID, 0)
	assert.NoError(t, err)
	assert.Equal(t, 1, order.Quantity)
}

func TestPlaceOrder_BookNotFound(t *testing.T) {
	books := mocks.NewInMemoryBookRepo()
	repo := mocks.NewInMemoryOrderRepo()
	service := NewOrderService(repo, bookReader{books}, mocks.NewRecordingTracker(), nil, zap.NewNop())

	_, err := service.PlaceOrder(context.Background(), "buyer@example.com", uuid.New(), 1)
	assert.ErrorIs(t, err, bookDomain.ErrBookNotFound)
}

func TestUpdateStatus_LogsDerivedStatusCode(t *testing.T) {
	books := mocks.NewInMemoryBookRepo()
	repo := mocks.NewInMemoryOrderRepo()
	tracker := mocks.NewRecordingTracker()
	service := NewOrderService(repo, bookReader{books}, tracker, nil, zap.NewNop())

	book := seedBook(t, books)
	order, _ := service.PlaceOrder(context.Background(), "buyer@example.com", book.ID, 1)

	updated, err := service.UpdateStatus(context.Background(), order.ID, domain.OrderShipped)
	assert.NoError(t, err)
	assert.Equal(t, domain.OrderShipped, updated.Status)

	assert.Len(t, tracker.Appends, 2)
	assert.Equal(t, order.TrackingID, tracker.Appends[1][0])
	assert.Equal(t, "book_order_shipped", tracker.Appends[1][1])
}

func TestUpdateStatus_NotFound(t *testing.T) {
	books := mocks.NewInMemoryBookRepo()
	repo := mocks.NewInMemoryOrderRepo()
	service := NewOrderService(repo, bookReader{books}, mocks.NewRecordingTracker(), nil, zap.NewNop())

	_, err := service.UpdateStatus(context.Background(), uuid.New(), domain.OrderShipped)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestListOrders_EmptyIsNotNil(t *testing.T) {
	books := mocks.NewInMemoryBookRepo()
	repo := mocks.NewInMemoryOrderRepo()
	service := NewOrderService(repo, bookReader{books}, mocks.NewRecordingTracker(), nil, zap.NewNop())

	orders, err := service.ListOrders(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}
