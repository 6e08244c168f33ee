package domain

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTrackingID_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^BOOK-\d{8}-[0-9A-F]{6}$`)

	id := NewTrackingID()
	assert.Regexp(t, pattern, id)
	assert.Contains(t, id, time.Now().UTC().Format("20060102"))
}

func TestNewTrackingID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewTrackingID()
		assert.False(t, seen[id], "trackingId repetido: %s", id)
		seen[id] = true
	}
}

func TestMessageFor(t *testing.T) {
	assert.Equal(t, "book parcel created", MessageFor(StatusParcelCreated))
	assert.Equal(t, "book has ordered", MessageFor(StatusOrdered))
	assert.Equal(t, "payment completed", MessageFor(StatusPaymentCompleted))
	assert.Equal(t, "book order shipped", MessageFor(OrderStatusCode("shipped")))
	// Sin underscores el mensaje es el status tal cual
	assert.Equal(t, "delivered", MessageFor("delivered"))
}

func TestOrderStatusCode(t *testing.T) {
	assert.Equal(t, "book_order_pending", OrderStatusCode("pending"))
	assert.Equal(t, "book_order_cancelled", OrderStatusCode("cancelled"))
}

func TestNewTrackingEvent(t *testing.T) {
	e := NewTrackingEvent("BOOK-20240101-AB12CD", "book_order_delivered")
	assert.NotEqual(t, "", e.ID.String())
	assert.Equal(t, "BOOK-20240101-AB12CD", e.TrackingID)
	assert.Equal(t, "book_order_delivered", e.Status)
	assert.Equal(t, "book order delivered", e.Message)
	assert.Equal(t, "BOOK-20240101-AB12CD", e.PartitionKey())
}
