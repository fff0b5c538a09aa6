package repository

import (
	"context"

	"awei/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// IWorkSheetRepository defines timesheet persistence
type IWorkSheetRepository interface {
	Insert(ctx context.Context, sheet *model.WorkSheet) (primitive.ObjectID, error)
	FindByEmail(ctx context.Context, email string) ([]model.WorkSheet, error)
	Find(ctx context.Context, filter bson.M) ([]model.WorkSheet, error)
}

// WorkSheetRepository implements timesheet persistence
type WorkSheetRepository struct {
	collection *mongo.Collection
}

func NewWorkSheetRepository(db *mongo.Database) IWorkSheetRepository {
	return &WorkSheetRepository{collection: db.Collection("workSheets")}
}

func (r *WorkSheetRepository) Insert(ctx context.Context, sheet *model.WorkSheet) (primitive.ObjectID, error) {
	res, err := r.collection.InsertOne(ctx, sheet)
	if err != nil {
		return primitive.NilObjectID, err
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid, nil
}

func (r *WorkSheetRepository) FindByEmail(ctx context.Context, email string) ([]model.WorkSheet, error) {
	return r.Find(ctx, bson.M{"email": email})
}

func (r *WorkSheetRepository) Find(ctx context.Context, filter bson.M) ([]model.WorkSheet, error) {
	cur, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	sheets := make([]model.WorkSheet, 0)
	if err := cur.All(ctx, &sheets); err != nil {
		return nil, err
	}
	return sheets, nil
}
