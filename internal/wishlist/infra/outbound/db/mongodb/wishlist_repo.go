package mongodb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	wishlistDomain "github.com/davicafu/bookcourier/internal/wishlist/domain"
)

// WishlistRepoMongoDB implementa WishlistRepository sobre la colección "wishlists".
type WishlistRepoMongoDB struct {
	coll *mongo.Collection
}

func NewWishlistRepoMongoDB(db *mongo.Database) *WishlistRepoMongoDB {
	return &WishlistRepoMongoDB{coll: db.Collection("wishlists")}
}

// --- Structs de BSON para el mapeo ---

type mongoWishlistEntry struct {
	ID        uuid.UUID `bson:"_id"`
	UserEmail string    `bson:"userEmail"`
	BookID    uuid.UUID `bson:"bookId"`
	BookTitle string    `bson:"bookTitle"`
	CoverURL  string    `bson:"coverURL,omitempty"`
	Price     float64   `bson:"price"`
	CreatedAt time.Time `bson:"createdAt"`
}

func (r *WishlistRepoMongoDB) Create(ctx context.Context, e *wishlistDomain.Entry) error {
	me := &mongoWishlistEntry{
		ID: e.ID, UserEmail: e.UserEmail, BookID: e.BookID,
		BookTitle: e.BookTitle, CoverURL: e.CoverURL, Price: e.Price, CreatedAt: e.CreatedAt,
	}
	_, err := r.coll.InsertOne(ctx, me)
	return err
}

func (r *WishlistRepoMongoDB) ListByUser(ctx context.Context, email string) ([]*wishlistDomain.Entry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userEmail": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*wishlistDomain.Entry
	for cursor.Next(ctx) {
		var me mongoWishlistEntry
		if err := cursor.Decode(&me); err != nil {
			return nil, err
		}
		entries = append(entries, &wishlistDomain.Entry{
			ID: me.ID, UserEmail: me.UserEmail, BookID: me.BookID,
			BookTitle: me.BookTitle, CoverURL: me.CoverURL, Price: me.Price, CreatedAt: me.CreatedAt,
		})
	}

	return entries, cursor.Err()
}

func (r *WishlistRepoMongoDB) Exists(ctx context.Context, email string, bookID uuid.UUID) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"userEmail": email, "bookId": bookID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *WishlistRepoMongoDB) DeleteByID(ctx context.Context, id uuid.UUID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return wishlistDomain.ErrEntryNotFound
	}
	return nil
}

// Verificación estática
var _ wishlistDomain.WishlistRepository = (*WishlistRepoMongoDB)(nil)
