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
	paymentDomain "github.com/davicafu/bookcourier/internal/payment/domain"
)

// PaymentRepoMongoDB implementa PaymentRepository sobre las colecciones
// "payments" y "orders" (la segunda solo para marcar el pedido como pagado
// dentro de la transacción de settlement).
type PaymentRepoMongoDB struct {
	client       *mongo.Client
	paymentsColl *mongo.Collection
	ordersColl   *mongo.Collection
}

func NewPaymentRepoMongoDB(client *mongo.Client, db *mongo.Database) *PaymentRepoMongoDB {
	return &PaymentRepoMongoDB{
		client:       client,
		paymentsColl: db.Collection("payments"),
		ordersColl:   db.Collection("orders"),
	}
}

// --- Structs de BSON para el mapeo ---

type mongoPayment struct {
	ID             uuid.UUID `bson:"_id"`
	OrderID        uuid.UUID `bson:"orderId"`
	BuyerEmail     string    `bson:"buyerEmail"`
	Amount         float64   `bson:"amount"`
	TransactionRef string    `bson:"transactionRef"`
	SessionID      string    `bson:"sessionId"`
	PaidAt         time.Time `bson:"paidAt"`
}

func (r *PaymentRepoMongoDB) GetByTransactionRef(ctx context.Context, ref string) (*paymentDomain.Payment, error) {
	var mp mongoPayment
	err := r.paymentsColl.FindOne(ctx, bson.M{"transactionRef": ref}).Decode(&mp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, paymentDomain.ErrPaymentNotFound
		}
		return nil, err
	}
	return fromMongoPayment(&mp), nil
}

func (r *PaymentRepoMongoDB) ListByBuyer(ctx context.Context, email string) ([]*paymentDomain.Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "paidAt", Value: -1}})
	cursor, err := r.paymentsColl.Find(ctx, bson.M{"buyerEmail": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var payments []*paymentDomain.Payment
	for cursor.Next(ctx) {
		var mp mongoPayment
		if err := cursor.Decode(&mp); err != nil {
			return nil, err
		}
		payments = append(payments, fromMongoPayment(&mp))
	}

	return payments, cursor.Err()
}

// ApplySettlement aplica los efectos del cobro de forma atómica:
// pedido a "paid" + inserción del pago. El ledger queda fuera de la tx.
func (r *PaymentRepoMongoDB) ApplySettlement(ctx context.Context, p *paymentDomain.Payment) error {
	session, err := r.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		res, err := r.ordersColl.UpdateOne(sessCtx,
			bson.M{"_id": p.OrderID},
			bson.M{"$set": bson.M{"paymentStatus": string(orderDomain.PaymentPaid)}},
		)
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, orderDomain.ErrOrderNotFound
		}

		mp := &mongoPayment{
			ID: p.ID, OrderID: p.OrderID, BuyerEmail: p.BuyerEmail, Amount: p.Amount,
			TransactionRef: p.TransactionRef, SessionID: p.SessionID, PaidAt: p.PaidAt,
		}
		if _, err := r.paymentsColl.InsertOne(sessCtx, mp); err != nil {
			return nil, err
		}

		return nil, nil
	})

	return err
}

// --- Helpers de Mapeo ---

func fromMongoPayment(mp *mongoPayment) *paymentDomain.Payment {
	return &paymentDomain.Payment{
		ID: mp.ID, OrderID: mp.OrderID, BuyerEmail: mp.BuyerEmail, Amount: mp.Amount,
		TransactionRef: mp.TransactionRef, SessionID: mp.SessionID, PaidAt: mp.PaidAt,
	}
}

// Verificación estática
var _ paymentDomain.PaymentRepository = (*PaymentRepoMongoDB)(nil)
