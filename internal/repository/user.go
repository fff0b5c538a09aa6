package repository

import (
	"context"

	"awei/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IUserRepository defines user persistence
type IUserRepository interface {
	EnsureIndexes(ctx context.Context) error
	Insert(ctx context.Context, user *model.User) (primitive.ObjectID, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	FindVerified(ctx context.Context) ([]model.User, error)
	FindByRole(ctx context.Context, role string) ([]model.User, error)
	UpdateByEmail(ctx context.Context, email string, fields bson.M) (matched, modified int64, err error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (matched, modified int64, err error)
}

// UserRepository implements user persistence
type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) IUserRepository {
	return &UserRepository{collection: db.Collection("users")}
}

// EnsureIndexes creates the unique email index. Concurrent duplicate
// creates race past the existence pre-check; the index is what actually
// holds the one-document-per-email invariant.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *UserRepository) Insert(ctx context.Context, user *model.User) (primitive.ObjectID, error) {
	res, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return primitive.NilObjectID, err
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user *model.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	var user *model.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) FindVerified(ctx context.Context) ([]model.User, error) {
	return r.find(ctx, bson.M{"status": true})
}

func (r *UserRepository) FindByRole(ctx context.Context, role string) ([]model.User, error) {
	return r.find(ctx, bson.M{"role": role})
}

func (r *UserRepository) find(ctx context.Context, filter bson.M) ([]model.User, error) {
	cur, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	users := make([]model.User, 0)
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) UpdateByEmail(ctx context.Context, email string, fields bson.M) (int64, int64, error) {
	return r.update(ctx, bson.M{"email": email}, fields)
}

func (r *UserRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, int64, error) {
	return r.update(ctx, bson.M{"_id": id}, fields)
}

// update is always a $set merge: listed fields replaced, the rest untouched.
func (r *UserRepository) update(ctx context.Context, filter, fields bson.M) (int64, int64, error) {
	res, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		return 0, 0, err
	}
	return res.MatchedCount, res.ModifiedCount, nil
}
