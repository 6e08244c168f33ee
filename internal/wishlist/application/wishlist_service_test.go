package application

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	bookDomain "github.com/davicafu/bookcourier/internal/book/domain"
	trackingDomain "github.com/davicafu/bookcourier/internal/tracking/domain"
	"github.com/davicafu/bookcourier/internal/wishlist/domain"
	"github.com/davicafu/bookcourier/tests/mocks"
)

// bookReader adapta el mock de libros al puerto BookReader.
type bookReader struct{ repo *mocks.InMemoryBookRepo }

func (r bookReader) GetBook(ctx context.Context, id uuid.UUID) (*bookDomain.Book, error) {
	return r.repo.GetByID(ctx, id)
}

func seedBook(t *testing.T, books *mocks.InMemoryBookRepo) *bookDomain.Book {
	t.Helper()
	book := &bookDomain.Book{
		ID:         uuid.New(),
		Title:      "Ficciones",
		Author:     "Borges",
		Status:     bookDomain.BookAvailable,
		Price:      8.0,
		CoverURL:   "https://img.local/ficciones.png",
		Quantity:   1,
		TrackingID: trackingDomain.NewTrackingID(),
		OwnerEmail: "librarian@example.com",
		CreatedAt:  time.Now().UTC(),
	}
	assert.NoError(t, books.Create(context.Background(), book))
	return book
}

func TestAdd_CopiesDisplaySnapshot(t *testing.T) {
	books := mocks.NewInMemoryBookRepo()
	repo := mocks.NewInMemoryWishlistRepo()
	service := NewWishlistService(repo, bookReader{books}, zap.NewNop())

	book := seedBook(t, books)

	entry, err := service.Add(context.Background(), "reader@example.com", book.ID)
	assert.NoError(t, err)
	assert.Equal(t, book.Title, entry.BookTitle)
	assert.Equal(t, book.CoverURL, entry.CoverURL)
	assert.Equal(t, book.Price, entry.Price)
	assert.Len(t, repo.Entries, 1)
}

func TestAdd_DuplicateIsNoOp(t *testing.T) {
	books := mocks.NewInMemoryBookRepo()
	repo := mocks.NewInMemoryWishlistRepo()
	service := NewWishlistService(repo, bookReader{books}, zap.NewNop())

	book := seedBook(t, books)

	_, err := service.Add(context.Background(), "reader@example.com", book.ID)
	assert.NoError(t, err)

	_, err = service.Add(context.Background(), "reader@example.com", book.ID)
	assert.ErrorIs(t, err, domain.ErrEntryExists)
	assert.Len(t, repo.Entries, 1)

	// Otro usuario sí puede guardar el mismo libro
	_, err = service.Add(context.Background(), "other@example.com", book.ID)
	assert.NoError(t, err)
	assert.Len(t, repo.Entries, 2)
}

func TestAdd_BookNotFound(t *testing.T) {
	books := mocks.NewInMemoryBookRepo()
	repo := mocks.NewInMemoryWishlistRepo()
	service := NewWishlistService(repo, bookReader{books}, zap.NewNop())

	_, err := service.Add(context.Background(), "reader@example.com", uuid.New())
	assert.ErrorIs(t, err, bookDomain.ErrBookNotFound)
	assert.Empty(t, repo.Entries)
}

func TestRemove_NotFound(t *testing.T) {
	books := mocks.NewInMemoryBookRepo()
	repo := mocks.NewInMemoryWishlistRepo()
	service := NewWishlistService(repo, bookReader{books}, zap.NewNop())

	err := service.Remove(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrEntryNotFound)
}

func TestList_EmptyIsNotNil(t *testing.T) {
	books := mocks.NewInMemoryBookRepo()
	repo := mocks.NewInMemoryWishlistRepo()
	service := NewWishlistService(repo, bookReader{books}, zap.NewNop())

	entries, err := service.List(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}
