package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	bookDomain "github.com/davicafu/bookcourier/internal/book/domain"
	sharedDomain "github.com/davicafu/bookcourier/internal/shared/domain"
	sharedMongo "github.com/davicafu/bookcourier/internal/shared/infra/db/mongodb"
)

// BookRepoMongoDB implementa BookRepository sobre las colecciones "books" y
// "orders" (la segunda solo para el borrado en cascada).
type BookRepoMongoDB struct {
	client     *mongo.Client
	booksColl  *mongo.Collection
	ordersColl *mongo.Collection
}

func NewBookRepoMongoDB(client *mongo.Client, db *mongo.Database) *BookRepoMongoDB {
	return &BookRepoMongoDB{
		client:     client,
		booksColl:  db.Collection("books"),
		ordersColl: db.Collection("orders"),
	}
}

// --- Structs de BSON para el mapeo ---

type mongoBook struct {
	ID          uuid.UUID `bson:"_id"`
	Title       string    `bson:"title"`
	Author      string    `bson:"author"`
	Description string    `bson:"description,omitempty"`
	CoverURL    string    `bson:"coverURL,omitempty"`
	Status      string    `bson:"status"`
	Price       float64   `bson:"price"`
	Quantity    int       `bson:"quantity"`
	TrackingID  string    `bson:"trackingId"`
	OwnerEmail  string    `bson:"ownerEmail"`
	CreatedAt   time.Time `bson:"createdAt"`
}

func (r *BookRepoMongoDB) Create(ctx context.Context, b *bookDomain.Book) error {
	_, err := r.booksColl.InsertOne(ctx, toMongoBook(b))
	return err
}

func (r *BookRepoMongoDB) GetByID(ctx context.Context, id uuid.UUID) (*bookDomain.Book, error) {
	var mb mongoBook
	err := r.booksColl.FindOne(ctx, bson.M{"_id": id}).Decode(&mb)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, bookDomain.ErrBookNotFound
		}
		return nil, err
	}
	return fromMongoBook(&mb), nil
}

func (r *BookRepoMongoDB) UpdateStatus(ctx context.Context, id uuid.UUID, status bookDomain.BookStatus) (*bookDomain.Book, error) {
	res, err := r.booksColl.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": string(status)}},
	)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, bookDomain.ErrBookNotFound
	}
	return r.GetByID(ctx, id)
}

// DeleteCascade borra libro + pedidos dependientes de forma atómica.
// La transacción cubre las dos colecciones; el append al ledger queda fuera.
func (r *BookRepoMongoDB) DeleteCascade(ctx context.Context, id uuid.UUID) (int64, error) {
	session, err := r.client.StartSession()
	if err != nil {
		return 0, err
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		res, err := r.booksColl.DeleteOne(sessCtx, bson.M{"_id": id})
		if err != nil {
			return nil, err
		}
		if res.DeletedCount == 0 {
			return nil, bookDomain.ErrBookNotFound
		}

		orders, err := r.ordersColl.DeleteMany(sessCtx, bson.M{"bookId": id})
		if err != nil {
			return nil, err
		}

		return orders.DeletedCount, nil
	})
	if err != nil {
		return 0, err
	}

	return result.(int64), nil
}

func (r *BookRepoMongoDB) List(ctx context.Context, criteria sharedDomain.Criteria, pagination sharedDomain.Pagination, sort sharedDomain.Sort) ([]*bookDomain.Book, error) {
	filter := sharedMongo.CriteriaToFilter(criteria)
	opts := sharedMongo.FindOptions(pagination, sort)

	cursor, err := r.booksColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var books []*bookDomain.Book
	for cursor.Next(ctx) {
		var mb mongoBook
		if err := cursor.Decode(&mb); err != nil {
			return nil, err
		}
		books = append(books, fromMongoBook(&mb))
	}

	return books, cursor.Err()
}

func (r *BookRepoMongoDB) Count(ctx context.Context, criteria sharedDomain.Criteria) (int64, error) {
	return r.booksColl.CountDocuments(ctx, sharedMongo.CriteriaToFilter(criteria))
}

// --- Helpers de Mapeo ---

func toMongoBook(b *bookDomain.Book) *mongoBook {
	return &mongoBook{
		ID: b.ID, Title: b.Title, Author: b.Author, Description: b.Description,
		CoverURL: b.CoverURL, Status: string(b.Status), Price: b.Price,
		Quantity: b.Quantity, TrackingID: b.TrackingID, OwnerEmail: b.OwnerEmail,
		CreatedAt: b.CreatedAt,
	}
}

func fromMongoBook(mb *mongoBook) *bookDomain.Book {
	return &bookDomain.Book{
		ID: mb.ID, Title: mb.Title, Author: mb.Author, Description: mb.Description,
		CoverURL: mb.CoverURL, Status: bookDomain.BookStatus(mb.Status), Price: mb.Price,
		Quantity: mb.Quantity, TrackingID: mb.TrackingID, OwnerEmail: mb.OwnerEmail,
		CreatedAt: mb.CreatedAt,
	}
}

// Verificación estática
var _ bookDomain.BookRepository = (*BookRepoMongoDB)(nil)
