package handler

import (
	"context"

	"awei/internal/model"
	"awei/pkg/generic"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// mockUserRepo implements repository.IUserRepository
type mockUserRepo struct {
	EnsureIndexesFunc func(ctx context.Context) error
	InsertFunc        func(ctx context.Context, user *model.User) (primitive.ObjectID, error)
	FindByEmailFunc   func(ctx context.Context, email string) (*model.User, error)
	FindByIDFunc      func(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	FindVerifiedFunc  func(ctx context.Context) ([]model.User, error)
	FindByRoleFunc    func(ctx context.Context, role string) ([]model.User, error)
	UpdateByEmailFunc func(ctx context.Context, email string, fields bson.M) (int64, int64, error)
	UpdateByIDFunc    func(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, int64, error)
}

func (m *mockUserRepo) EnsureIndexes(ctx context.Context) error {
	if m.EnsureIndexesFunc != nil {
		return m.EnsureIndexesFunc(ctx)
	}
	return nil
}

func (m *mockUserRepo) Insert(ctx context.Context, user *model.User) (primitive.ObjectID, error) {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, user)
	}
	return primitive.NewObjectID(), nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) FindVerified(ctx context.Context) ([]model.User, error) {
	if m.FindVerifiedFunc != nil {
		return m.FindVerifiedFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByRole(ctx context.Context, role string) ([]model.User, error) {
	if m.FindByRoleFunc != nil {
		return m.FindByRoleFunc(ctx, role)
	}
	return nil, nil
}

func (m *mockUserRepo) UpdateByEmail(ctx context.Context, email string, fields bson.M) (int64, int64, error) {
	if m.UpdateByEmailFunc != nil {
		return m.UpdateByEmailFunc(ctx, email, fields)
	}
	return 0, 0, nil
}

func (m *mockUserRepo) UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, int64, error) {
	if m.UpdateByIDFunc != nil {
		return m.UpdateByIDFunc(ctx, id, fields)
	}
	return 0, 0, nil
}

// mockWorkSheetRepo implements repository.IWorkSheetRepository
type mockWorkSheetRepo struct {
	InsertFunc      func(ctx context.Context, sheet *model.WorkSheet) (primitive.ObjectID, error)
	FindByEmailFunc func(ctx context.Context, email string) ([]model.WorkSheet, error)
	FindFunc        func(ctx context.Context, filter bson.M) ([]model.WorkSheet, error)
}

func (m *mockWorkSheetRepo) Insert(ctx context.Context, sheet *model.WorkSheet) (primitive.ObjectID, error) {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, sheet)
	}
	return primitive.NewObjectID(), nil
}

func (m *mockWorkSheetRepo) FindByEmail(ctx context.Context, email string) ([]model.WorkSheet, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockWorkSheetRepo) Find(ctx context.Context, filter bson.M) ([]model.WorkSheet, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, filter)
	}
	return nil, nil
}

// mockPaymentRepo implements repository.IPaymentRepository
type mockPaymentRepo struct {
	InsertFunc     func(ctx context.Context, payment *model.Payment) (primitive.ObjectID, error)
	FindByIDFunc   func(ctx context.Context, id primitive.ObjectID) (*model.Payment, error)
	FindBySlugFunc func(ctx context.Context, slug string) (*model.Payment, error)
	FindAllFunc    func(ctx context.Context) ([]model.Payment, error)
	FindPageFunc   func(ctx context.Context, page, limit int64) (generic.Page[model.Payment], error)
}

func (m *mockPaymentRepo) Insert(ctx context.Context, payment *model.Payment) (primitive.ObjectID, error) {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, payment)
	}
	return primitive.NewObjectID(), nil
}

func (m *mockPaymentRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Payment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPaymentRepo) FindBySlug(ctx context.Context, slug string) (*model.Payment, error) {
	if m.FindBySlugFunc != nil {
		return m.FindBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockPaymentRepo) FindAll(ctx context.Context) ([]model.Payment, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockPaymentRepo) FindPage(ctx context.Context, page, limit int64) (generic.Page[model.Payment], error) {
	if m.FindPageFunc != nil {
		return m.FindPageFunc(ctx, page, limit)
	}
	return generic.Page[model.Payment]{}, nil
}

// mockIntentClient implements service.IIntentClient
type mockIntentClient struct {
	CreateIntentFunc func(ctx context.Context, amountCents int64, idempotencyKey string) (string, error)
}

func (m *mockIntentClient) CreateIntent(ctx context.Context, amountCents int64, idempotencyKey string) (string, error) {
	if m.CreateIntentFunc != nil {
		return m.CreateIntentFunc(ctx, amountCents, idempotencyKey)
	}
	return "cs_test", nil
}
