package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/davicafu/bookcourier/internal/tracking/domain"
	"github.com/davicafu/bookcourier/tests/mocks"
)

func TestAppend_DerivesMessageFromStatus(t *testing.T) {
	repo := mocks.NewInMemoryLedgerRepo()
	events := &mocks.DummyPublisher{}
	service := NewLedgerService(repo, events, zap.NewNop())

	event, err := service.Append(context.Background(), "BOOK-20240101-AB12CD", "book_parcel_created")
	assert.NoError(t, err)
	assert.Equal(t, "BOOK-20240101-AB12CD", event.TrackingID)
	assert.Equal(t, "book_parcel_created", event.Status)
	assert.Equal(t, "book parcel created", event.Message)
	assert.False(t, event.CreatedAt.IsZero())

	// ✅ Verificar que se publicó el evento de integración
	assert.Len(t, events.Published(), 1)
}

func TestAppend_EmptyInputs(t *testing.T) {
	repo := mocks.NewInMemoryLedgerRepo()
	service := NewLedgerService(repo, nil, zap.NewNop())

	_, err := service.Append(context.Background(), "", "book_parcel_created")
	assert.ErrorIs(t, err, domain.ErrEmptyTrackingID)

	_, err = service.Append(context.Background(), "BOOK-20240101-AB12CD", "")
	assert.ErrorIs(t, err, domain.ErrEmptyStatus)

	assert.Empty(t, repo.Events)
}

func TestQuery_PreservesInsertionOrder(t *testing.T) {
	repo := mocks.NewInMemoryLedgerRepo()
	service := NewLedgerService(repo, nil, zap.NewNop())

	_, err := service.Append(context.Background(), "BOOK-20240101-AB12CD", "book_parcel_created")
	assert.NoError(t, err)
	_, err = service.Append(context.Background(), "BOOK-20240101-AB12CD", "book_order_pending")
	assert.NoError(t, err)

	events, err := service.Query(context.Background(), "BOOK-20240101-AB12CD")
	assert.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, "book parcel created", events[0].Message)
	assert.Equal(t, "book order pending", events[1].Message)
}

func TestQuery_UnknownIDReturnsEmptyNotError(t *testing.T) {
	repo := mocks.NewInMemoryLedgerRepo()
	service := NewLedgerService(repo, nil, zap.NewNop())

	events, err := service.Query(context.Background(), "BOOK-20990101-FFFFFF")
	assert.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestQuery_EmptyTrackingID(t *testing.T) {
	repo := mocks.NewInMemoryLedgerRepo()
	service := NewLedgerService(repo, nil, zap.NewNop())

	_, err := service.Query(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrEmptyTrackingID)
}

func TestAppend_DuplicatesAccumulate(t *testing.T) {
	repo := mocks.NewInMemoryLedgerRepo()
	service := NewLedgerService(repo, nil, zap.NewNop())

	for i := 0; i < 3; i++ {
		_, err := service.Append(context.Background(), "BOOK-20240101-AB12CD", "book_order_shipped")
		assert.NoError(t, err)
	}

	events, err := service.Query(context.Background(), "BOOK-20240101-AB12CD")
	assert.NoError(t, err)
	// Cada append inserta un registro nuevo, nunca actualiza el anterior
	assert.Len(t, events, 3)
	for _, e := range events {
		assert.Equal(t, "book_order_shipped", e.Status)
		assert.Equal(t, "book order shipped", e.Message)
	}
}

func TestQuery_DoesNotMixTrackingIDs(t *testing.T) {
	repo := mocks.NewInMemoryLedgerRepo()
	service := NewLedgerService(repo, nil, zap.NewNop())

	_, _ = service.Append(context.Background(), "BOOK-20240101-AB12CD", "book_parcel_created")
	_, _ = service.Append(context.Background(), "BOOK-20240102-00FFAA", "book_parcel_created")
	_, _ = service.Append(context.Background(), "BOOK-20240101-AB12CD", "book_has_ordered")

	events, err := service.Query(context.Background(), "BOOK-20240101-AB12CD")
	assert.NoError(t, err)
	assert.Len(t, events, 2)
	for _, e := range events {
		assert.Equal(t, "BOOK-20240101-AB12CD", e.TrackingID)
	}
}
