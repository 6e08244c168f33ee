package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	identityDomain "github.com/davicafu/bookcourier/internal/identity/domain"
	sharedDomain "github.com/davicafu/bookcourier/internal/shared/domain"
	sharedMongo "github.com/davicafu/bookcourier/internal/shared/infra/db/mongodb"
	userDomain "github.com/davicafu/bookcourier/internal/user/domain"
)

// UserRepoMongoDB implementa UserRepository sobre la colección "users".
type UserRepoMongoDB struct {
	coll *mongo.Collection
}

func NewUserRepoMongoDB(db *mongo.Database) *UserRepoMongoDB {
	return &UserRepoMongoDB{coll: db.Collection("users")}
}

// --- Structs de BSON para el mapeo ---

type mongoUser struct {
	ID        uuid.UUID `bson:"_id"`
	UserID    string    `bson:"userId"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	PhotoURL  string    `bson:"photoURL,omitempty"`
	Role      string    `bson:"role"`
	CreatedAt time.Time `bson:"createdAt"`
}

func (r *UserRepoMongoDB) Create(ctx context.Context, u *userDomain.User) error {
	_, err := r.coll.InsertOne(ctx, toMongoUser(u))
	return err
}

func (r *UserRepoMongoDB) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	var mu mongoUser
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mu)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, userDomain.ErrUserNotFound
		}
		return nil, err
	}
	return fromMongoUser(&mu), nil
}

func (r *UserRepoMongoDB) GetByID(ctx context.Context, id uuid.UUID) (*userDomain.User, error) {
	var mu mongoUser
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mu)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, userDomain.ErrUserNotFound
		}
		return nil, err
	}
	return fromMongoUser(&mu), nil
}

func (r *UserRepoMongoDB) UpdateRole(ctx context.Context, id uuid.UUID, role identityDomain.Role) (*userDomain.User, error) {
	res := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"role": string(role)}},
	)
	var mu mongoUser
	if err := res.Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, userDomain.ErrUserNotFound
		}
		return nil, err
	}
	mu.Role = string(role)
	return fromMongoUser(&mu), nil
}

func (r *UserRepoMongoDB) List(ctx context.Context, criteria sharedDomain.Criteria, pagination sharedDomain.Pagination, sort sharedDomain.Sort) ([]*userDomain.User, error) {
	filter := sharedMongo.CriteriaToFilter(criteria)
	opts := sharedMongo.FindOptions(pagination, sort)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []*userDomain.User
	for cursor.Next(ctx) {
		var mu mongoUser
		if err := cursor.Decode(&mu); err != nil {
			return nil, err
		}
		users = append(users, fromMongoUser(&mu))
	}

	return users, cursor.Err()
}

// --- Helpers de Mapeo ---

func toMongoUser(u *userDomain.User) *mongoUser {
	return &mongoUser{
		ID: u.ID, UserID: u.UserID, Name: u.Name, Email: u.Email,
		PhotoURL: u.PhotoURL, Role: string(u.Role), CreatedAt: u.CreatedAt,
	}
}

func fromMongoUser(mu *mongoUser) *userDomain.User {
	role := identityDomain.Role(mu.Role)
	if role == "" {
		role = identityDomain.RoleUser
	}
	return &userDomain.User{
		ID: mu.ID, UserID: mu.UserID, Name: mu.Name, Email: mu.Email,
		PhotoURL: mu.PhotoURL, Role: role, CreatedAt: mu.CreatedAt,
	}
}

// Verificación estática
var _ userDomain.UserRepository = (*UserRepoMongoDB)(nil)
