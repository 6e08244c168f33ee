package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	orderDomain "github.com/davicafu/bookcourier/internal/order/domain"
)

// OrderRepoMongoDB implementa OrderRepository sobre la colección "orders".
type OrderRepoMongoDB struct {
	coll *mongo.Collection
}

func NewOrderRepoMongoDB(db *mongo.Database) *OrderRepoMongoDB {
	return &OrderRepoMongoDB{coll: db.Collection("orders")}
}

// --- Structs de BSON para el mapeo ---

type mongoOrder struct {
	ID            uuid.UUID `bson:"_id"`
	BookID        uuid.UUID `bson:"bookId"`
	BookTitle     string    `bson:"bookTitle"`
	BuyerEmail    string    `bson:"buyerEmail"`
	Quantity      int       `bson:"quantity"`
	UnitPrice     float64   `bson:"unitPrice"`
	Status        string    `bson:"status"`
	PaymentStatus string    `bson:"paymentStatus"`
	TrackingID    string    `bson:"trackingId"`
	CreatedAt     time.Time `bson:"createdAt"`
}

func (r *OrderRepoMongoDB) Create(ctx context.Context, o *orderDomain.Order) error {
	_, err := r.coll.InsertOne(ctx, toMongoOrder(o))
	return err
}

func (r *OrderRepoMongoDB) GetByID(ctx context.Context, id uuid.UUID) (*orderDomain.Order, error) {
	var mo mongoOrder
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, orderDomain.ErrOrderNotFound
		}
		return nil, err
	}
	return fromMongoOrder(&mo), nil
}

func (r *OrderRepoMongoDB) ListByBuyer(ctx context.Context, email string) ([]*orderDomain.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"buyerEmail": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []*orderDomain.Order
	for cursor.Next(ctx) {
		var mo mongoOrder
		if err := cursor.Decode(&mo); err != nil {
			return nil, err
		}
		orders = append(orders, fromMongoOrder(&mo))
	}

	return orders, cursor.Err()
}

func (r *OrderRepoMongoDB) ExistsActive(ctx context.Context, buyerEmail string, bookID uuid.UUID) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{
		"buyerEmail": buyerEmail,
		"bookId":     bookID,
		"status":     bson.M{"$ne": string(orderDomain.OrderCancelled)},
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *OrderRepoMongoDB) UpdateStatus(ctx context.Context, id uuid.UUID, status orderDomain.OrderStatus) (*orderDomain.Order, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": string(status)}},
	)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, orderDomain.ErrOrderNotFound
	}
	return r.GetByID(ctx, id)
}

// --- Helpers de Mapeo ---

func toMongoOrder(o *orderDomain.Order) *mongoOrder {
	return &mongoOrder{
		ID: o.ID, BookID: o.BookID, BookTitle: o.BookTitle, BuyerEmail: o.BuyerEmail,
		Quantity: o.Quantity, UnitPrice: o.UnitPrice, Status: string(o.Status),
		PaymentStatus: string(o.PaymentStatus), TrackingID: o.TrackingID, CreatedAt: o.CreatedAt,
	}
}

func fromMongoOrder(mo *mongoOrder) *orderDomain.Order {
	return &orderDomain.Order{
		ID: mo.ID, BookID: mo.BookID, BookTitle: mo.BookTitle, BuyerEmail: mo.BuyerEmail,
		Quantity: mo.Quantity, UnitPrice: mo.UnitPrice, Status: orderDomain.OrderStatus(mo.Status),
		PaymentStatus: orderDomain.PaymentStatus(mo.PaymentStatus), TrackingID: mo.TrackingID, CreatedAt: mo.CreatedAt,
	}
}

// Verificación estática
var _ orderDomain.OrderRepository = (*OrderRepoMongoDB)(nil)
