package application

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/davicafu/bookcourier/internal/book/domain"
	orderDomain "github.com/davicafu/bookcourier/internal/order/domain"
	trackingDomain "github.com/davicafu/bookcourier/internal/tracking/domain"
	"github.com/davicafu/bookcourier/tests/mocks"
)

func TestCreateBook_GeneratesTrackingIDAndLogsParcelCreated(t *testing.T) {
	repo := mocks.NewInMemoryBookRepo()
	tracker := mocks.NewRecordingTracker()
	events := &mocks.DummyPublisher{}
	service := NewBookService(repo, tracker, events, zap.NewNop())

	book, err := service.CreateBook(context.Background(), CreateBookInput{
		Title:      "El Quijote",
		Author:     "Cervantes",
		Price:      12.5,
		Quantity:   3,
		OwnerEmail: "librarian@example.com",
	})
	assert.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^BOOK-\d{8}-[0-9A-F]{6}$`), book.TrackingID)
	assert.Equal(t, domain.BookAvailable, book.Status)

	// ✅ Verificar el append best-effort al ledger
	assert.Len(t, tracker.Appends, 1)
	assert.Equal(t, book.TrackingID, tracker.Appends[0][0])
	assert.Equal(t, trackingDomain.StatusParcelCreated, tracker.Appends[0][1])

	assert.Len(t, events.Published(), 1)
}

func TestListBooks_FiltersAndTotal(t *testing.T) {
	repo := mocks.NewInMemoryBookRepo()
	tracker := mocks.NewRecordingTracker()
	service := NewBookService(repo, tracker, nil, zap.NewNop())

	for i, title := range []string{"Go en acción", "Rust básico", "Go avanzado"} {
		_, err := service.CreateBook(context.Background(), CreateBookInput{
			Title:      title,
			Author:     "Autora",
			Price:      float64(10 + i),
			Quantity:   1,
			OwnerEmail: "librarian@example.com",
		})
		assert.NoError(t, err)
	}

	books, total, err := service.ListBooks(context.Background(), ListBooksInput{SearchByTitle: "go"})
	assert.NoError(t, err)
	assert.Len(t, books, 2)
	assert.Equal(t, int64(2), total)
}

func TestListBooks_TotalIgnoresPagination(t *testing.T) {
	repo := mocks.NewInMemoryBookRepo()
	tracker := mocks.NewRecordingTracker()
	service := NewBookService(repo, tracker, nil, zap.NewNop())

	for i := 0; i < 5; i++ {
		_, _ = service.CreateBook(context.Background(), CreateBookInput{
			Title:      "Libro",
			Author:     "Autora",
			Price:      float64(i),
			Quantity:   1,
			OwnerEmail: "librarian@example.com",
		})
	}

	books, total, err := service.ListBooks(context.Background(), ListBooksInput{Limit: 2})
	assert.NoError(t, err)
	assert.Len(t, books, 2)
	assert.Equal(t, int64(5), total)
}

func TestListBooks_InvalidStatus(t *testing.T) {
	repo := mocks.NewInMemoryBookRepo()
	service := NewBookService(repo, mocks.NewRecordingTracker(), nil, zap.NewNop())

	_, _, err := service.ListBooks(context.Background(), ListBooksInput{Status: "lost"})
	assert.ErrorIs(t, err, domain.ErrInvalidBookStatus)
}

func TestDeleteBook_CascadesToOrders(t *testing.T) {
	orders := mocks.NewInMemoryOrderRepo()
	repo := mocks.NewInMemoryBookRepo()
	repo.OrderStore = orders
	service := NewBookService(repo, mocks.NewRecordingTracker(), nil, zap.NewNop())

	book, err := service.CreateBook(context.Background(), CreateBookInput{
		Title: "A borrar", Author: "X", Price: 1, Quantity: 1, OwnerEmail: "librarian@example.com",
	})
	assert.NoError(t, err)
	other, err := service.CreateBook(context.Background(), CreateBookInput{
		Title: "Sobrevive", Author: "X", Price: 1, Quantity: 1, OwnerEmail: "librarian@example.com",
	})
	assert.NoError(t, err)

	// Dos pedidos del libro a borrar y uno de otro libro
	for _, bookID := range []uuid.UUID{book.ID, book.ID, other.ID} {
		_ = orders.Create(context.Background(), &orderDomain.Order{
			ID:         uuid.New(),
			BookID:     bookID,
			BuyerEmail: uuid.NewString() + "@example.com",
			Status:     orderDomain.OrderPending,
			CreatedAt:  time.Now(),
		})
	}

	ordersDeleted, err := service.DeleteBook(context.Background(), book.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), ordersDeleted)

	// El libro ya no existe, el pedido del otro libro sí
	_, err = service.GetBook(context.Background(), book.ID)
	assert.ErrorIs(t, err, domain.ErrBookNotFound)
	assert.Len(t, orders.Orders, 1)
}

func TestDeleteBook_NotFound(t *testing.T) {
	repo := mocks.NewInMemoryBookRepo()
	service := NewBookService(repo, mocks.NewRecordingTracker(), nil, zap.NewNop())

	_, err := service.DeleteBook(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrBookNotFound)
}

func TestUpdateStatus_Success(t *testing.T) {
	repo := mocks.NewInMemoryBookRepo()
	service := NewBookService(repo, mocks.NewRecordingTracker(), nil, zap.NewNop())

	book, _ := service.CreateBook(context.Background(), CreateBookInput{
		Title: "Disponible", Author: "X", Price: 1, Quantity: 1, OwnerEmail: "librarian@example.com",
	})

	updated, err := service.UpdateStatus(context.Background(), book.ID, domain.BookUnavailable)
	assert.NoError(t, err)
	assert.Equal(t, domain.BookUnavailable, updated.Status)
}
