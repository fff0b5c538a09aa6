package repository

import (
	"context"

	"awei/internal/model"
	"awei/pkg/generic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// IPaymentRepository defines payment persistence
type IPaymentRepository interface {
	Insert(ctx context.Context, payment *model.Payment) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Payment, error)
	FindBySlug(ctx context.Context, slug string) (*model.Payment, error)
	FindAll(ctx context.Context) ([]model.Payment, error)
	FindPage(ctx context.Context, page, limit int64) (generic.Page[model.Payment], error)
}

// PaymentRepository implements payment persistence
type PaymentRepository struct {
	collection *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) IPaymentRepository {
	return &PaymentRepository{collection: db.Collection("payments")}
}

func (r *PaymentRepository) Insert(ctx context.Context, payment *model.Payment) (primitive.ObjectID, error) {
	res, err := r.collection.InsertOne(ctx, payment)
	if err != nil {
		return primitive.NilObjectID, err
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid, nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Payment, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindBySlug looks a payment up by an ambiguous key: the slug matches
// either the stored email or the employeeId hex.
func (r *PaymentRepository) FindBySlug(ctx context.Context, slug string) (*model.Payment, error) {
	return r.findOne(ctx, bson.M{"$or": bson.A{
		bson.M{"email": slug},
		bson.M{"employeeId": slug},
	}})
}

func (r *PaymentRepository) FindAll(ctx context.Context) ([]model.Payment, error) {
	cur, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	payments := make([]model.Payment, 0)
	if err := cur.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// FindPage returns payments ordered oldest pay period first.
func (r *PaymentRepository) FindPage(ctx context.Context, page, limit int64) (generic.Page[model.Payment], error) {
	sort := bson.D{{Key: "payYear", Value: 1}, {Key: "payMonth", Value: 1}}
	return generic.FindPage[model.Payment](ctx, r.collection, bson.M{}, sort, page, limit)
}

func (r *PaymentRepository) findOne(ctx context.Context, filter bson.M) (*model.Payment, error) {
	var payment *model.Payment
	err := r.collection.FindOne(ctx, filter).Decode(&payment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return payment, nil
}
