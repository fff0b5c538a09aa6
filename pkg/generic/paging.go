package generic

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Page holds one page of a collection plus the counts the caller needs
// to render pagination controls.
type Page[T any] struct {
	Items      []T
	Total      int64
	TotalPages int64
}

// FindPage runs a counted, sorted, skip/limit query against a collection.
// Page numbers start at 1; callers validate page and limit are positive
// before getting here.
func FindPage[T any](ctx context.Context, collection *mongo.Collection, filter, sort interface{}, page, limit int64) (Page[T], error) {
	var out Page[T]

	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return out, err
	}

	opts := options.Find().
		SetSort(sort).
		SetSkip((page - 1) * limit).
		SetLimit(limit)
	cur, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return out, err
	}

	items := make([]T, 0, limit)
	if err := cur.All(ctx, &items); err != nil {
		return out, err
	}

	out.Items = items
	out.Total = total
	out.TotalPages = (total + limit - 1) / limit
	return out, nil
}
