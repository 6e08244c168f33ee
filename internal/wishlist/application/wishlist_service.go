package application

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/davicafu/bookcourier/internal/wishlist/domain"
	"github.com/google/uuid"
)

// WishlistService define los casos de uso de la wishlist.
type WishlistService struct {
	repo  domain.WishlistRepository
	books domain.BookReader
	log   *zap.Logger
}

// NewWishlistService constructor
func NewWishlistService(repo domain.WishlistRepository, books domain.BookReader, log *zap.Logger) *WishlistService {
	return &WishlistService{repo: repo, books: books, log: log}
}

// Add guarda el libro en la wishlist del usuario. Si ya estaba, devuelve
// ErrEntryExists y la ruta responde un 200 informativo sin insertar.
func (s *WishlistService) Add(ctx context.Context, email string, bookID uuid.UUID) (*domain.Entry, error) {
	exists, err := s.repo.Exists(ctx, email, bookID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEntryExists
	}

	book, err := s.books.GetBook(ctx, bookID)
	if err != nil {
		return nil, err
	}

	entry := &domain.Entry{
		ID:        uuid.New(),
		UserEmail: email,
		BookID:    book.ID,
		BookTitle: book.Title,
		CoverURL:  book.CoverURL,
		Price:     book.Price,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// List devuelve la wishlist de un usuario.
func (s *WishlistService) List(ctx context.Context, email string) ([]*domain.Entry, error) {
	entries, err := s.repo.ListByUser(ctx, email)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*domain.Entry{}
	}
	return entries, nil
}

// Remove borra una entrada por id.
func (s *WishlistService) Remove(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteByID(ctx, id)
}
