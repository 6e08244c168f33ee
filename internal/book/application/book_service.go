package application

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/davicafu/bookcourier/internal/book/domain"
	sharedDomain "github.com/davicafu/bookcourier/internal/shared/domain"
	sharedEvents "github.com/davicafu/bookcourier/internal/shared/events"
	sharedBus "github.com/davicafu/bookcourier/internal/shared/platform/bus"
	trackingDomain "github.com/davicafu/bookcourier/internal/tracking/domain"
	"github.com/google/uuid"
)

// BookService define los casos de uso del catálogo de libros.
type BookService struct {
	repo    domain.BookRepository
	tracker domain.TrackingLogger
	events  sharedBus.EventPublisher
	log     *zap.Logger
}

// NewBookService constructor
func NewBookService(repo domain.BookRepository, tracker domain.TrackingLogger, events sharedBus.EventPublisher, log *zap.Logger) *BookService {
	return &BookService{repo: repo, tracker: tracker, events: events, log: log}
}

// CreateBookInput agrupa los campos que acepta el alta de un libro.
type CreateBookInput struct {
	Title       string
	Author      string
	Description string
	CoverURL    string
	Price       float64
	Quantity    int
	OwnerEmail  string
}

// CreateBook genera el trackingId, inserta el libro y registra
// book_parcel_created en el ledger (best-effort, sin esperar).
func (s *BookService) CreateBook(ctx context.Context, in CreateBookInput) (*domain.Book, error) {
	book := &domain.Book{
		ID:          uuid.New(),
		Title:       in.Title,
		Author:      in.Author,
		Description: in.Description,
		CoverURL:    in.CoverURL,
		Status:      domain.BookAvailable,
		Price:       in.Price,
		Quantity:    in.Quantity,
		TrackingID:  trackingDomain.NewTrackingID(),
		OwnerEmail:  in.OwnerEmail,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, book); err != nil {
		return nil, err
	}

	s.tracker.AppendAsync(book.TrackingID, trackingDomain.StatusParcelCreated)
	s.publish(ctx, sharedEvents.BookCreated, book)

	return book, nil
}

// GetBook obtiene un libro por id.
func (s *BookService) GetBook(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	return s.repo.GetByID(ctx, id)
}

// ListBooksInput son los parámetros de GET /all-books.
type ListBooksInput struct {
	Status        string
	OwnerEmail    string
	SearchByTitle string
	SortBy        string
	SortOrder     string
	Limit         int
	Skip          int
}

// sortableFields es la whitelist de campos aceptados en sortBy.
var sortableFields = map[string]string{
	"createdAt": "createdAt",
	"price":     "price",
	"title":     "title",
}

// ListBooks devuelve la página pedida y el total de documentos que matchean
// el filtro (sin paginar), para que el front pueda paginar.
func (s *BookService) ListBooks(ctx context.Context, in ListBooksInput) ([]*domain.Book, int64, error) {
	var criterias []sharedDomain.Criteria

	if in.Status != "" {
		status, err := domain.ParseBookStatus(in.Status)
		if err != nil {
			return nil, 0, err
		}
		criterias = append(criterias, domain.StatusCriteria{Status: status})
	}
	if in.OwnerEmail != "" {
		criterias = append(criterias, domain.OwnerEmailCriteria{Email: in.OwnerEmail})
	}
	if in.SearchByTitle != "" {
		criterias = append(criterias, domain.TitleLikeCriteria{Title: in.SearchByTitle})
	}

	criteria := sharedDomain.And(criterias...)

	sort := sharedDomain.Sort{Field: "createdAt", Desc: true}
	if field, ok := sortableFields[in.SortBy]; ok {
		sort.Field = field
		sort.Desc = in.SortOrder != "asc"
	}

	limit := in.Limit
	if limit <= 0 {
		limit = 20
	}

	books, err := s.repo.List(ctx, criteria, sharedDomain.OffsetPagination{Limit: limit, Offset: in.Skip}, sort)
	if err != nil {
		return nil, 0, err
	}
	if books == nil {
		books = []*domain.Book{}
	}

	total, err := s.repo.Count(ctx, criteria)
	if err != nil {
		return nil, 0, err
	}

	return books, total, nil
}

// UpdateStatus cambia el estado de publicación del libro.
func (s *BookService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookStatus) (*domain.Book, error) {
	return s.repo.UpdateStatus(ctx, id, status)
}

// DeleteBook borra el libro y, en cascada y dentro de la misma transacción,
// todos los pedidos que lo referencian. Pedidos de otros libros no se tocan.
func (s *BookService) DeleteBook(ctx context.Context, id uuid.UUID) (int64, error) {
	ordersDeleted, err := s.repo.DeleteCascade(ctx, id)
	if err != nil {
		return 0, err
	}

	s.publish(ctx, sharedEvents.BookDeleted, map[string]interface{}{
		"bookId":        id,
		"ordersDeleted": ordersDeleted,
	})

	return ordersDeleted, nil
}

func (s *BookService) publish(ctx context.Context, eventType string, payload interface{}) {
	if s.events == nil {
		return
	}
	evt, err := sharedEvents.NewIntegrationEvent(eventType, payload)
	if err != nil {
		return
	}
	if err := s.events.Publish(ctx, evt); err != nil {
		s.log.Debug("event publish failed", zap.String("type", eventType), zap.Error(err))
	}
}
