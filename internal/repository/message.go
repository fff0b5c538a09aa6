package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IMessageRepository defines message persistence. Messages are free-form
// documents stored exactly as received, so the repository deals in bson.M
// rather than a typed model.
type IMessageRepository interface {
	Insert(ctx context.Context, fields map[string]interface{}) (primitive.ObjectID, error)
	FindAll(ctx context.Context) ([]bson.M, error)
}

// MessageRepository implements message persistence
type MessageRepository struct {
	collection *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) IMessageRepository {
	return &MessageRepository{collection: db.Collection("messages")}
}

func (r *MessageRepository) Insert(ctx context.Context, fields map[string]interface{}) (primitive.ObjectID, error) {
	doc := bson.M{}
	for k, v := range fields {
		if k == "_id" {
			continue
		}
		doc[k] = v
	}
	doc["createdAt"] = time.Now()

	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid, nil
}

func (r *MessageRepository) FindAll(ctx context.Context) ([]bson.M, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	messages := make([]bson.M, 0)
	if err := cur.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
