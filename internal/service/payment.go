package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"awei/internal/model"
	"awei/internal/repository"
	"awei/pkg/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrAmountTooSmall = errors.New("amount must be at least one cent")
	ErrGateway        = errors.New("payment gateway request failed")
)

// PaymentService handles payment records and gateway intents
type PaymentService struct {
	payments repository.IPaymentRepository
	users    repository.IUserRepository
	intents  IIntentClient
}

func NewPaymentService(payments repository.IPaymentRepository, users repository.IUserRepository, intents IIntentClient) *PaymentService {
	return &PaymentService{payments: payments, users: users, intents: intents}
}

// Create inserts the payment record, then flags the referenced user as
// paid. The two writes are separate round trips with no transaction: if
// the employeeId resolves to no user the payment document still exists
// and userUpdated reports false so the caller can see the mismatch.
func (s *PaymentService) Create(ctx context.Context, payment *model.Payment) (id string, userUpdated bool, err error) {
	payment.CreatedAt = time.Now()
	oid, err := s.payments.Insert(ctx, payment)
	if err != nil {
		return "", false, fmt.Errorf("failed to insert payment: %w", err)
	}

	employeeOID, err := primitive.ObjectIDFromHex(payment.EmployeeID)
	if err != nil {
		// Handler validation should have caught this; keep the payment.
		log.Printf("payment %s references malformed employeeId %q", oid.Hex(), payment.EmployeeID)
		return oid.Hex(), false, nil
	}

	matched, _, err := s.users.UpdateByID(ctx, employeeOID, bson.M{"payment": true})
	if err != nil {
		return oid.Hex(), false, fmt.Errorf("payment inserted but user flag update failed: %w", err)
	}
	if matched == 0 {
		log.Printf("payment %s references unknown employeeId %s", oid.Hex(), payment.EmployeeID)
	}
	return oid.Hex(), matched > 0, nil
}

func (s *PaymentService) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Payment, error) {
	return s.payments.FindByID(ctx, id)
}

func (s *PaymentService) GetBySlug(ctx context.Context, slug string) (*model.Payment, error) {
	return s.payments.FindBySlug(ctx, slug)
}

func (s *PaymentService) List(ctx context.Context) ([]model.Payment, error) {
	return s.payments.FindAll(ctx)
}

// ListPage returns one page of payments sorted ascending by pay period.
func (s *PaymentService) ListPage(ctx context.Context, page, limit int64) (*model.PaymentPage, error) {
	result, err := s.payments.FindPage(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	return &model.PaymentPage{
		Payments:   result.Items,
		Total:      result.Total,
		TotalPages: result.TotalPages,
		Page:       page,
		Limit:      limit,
	}, nil
}

// CreateIntent converts a salary in major units to cents (truncating) and
// asks the gateway for a client secret. Amounts below one cent are
// rejected before any network call.
func (s *PaymentService) CreateIntent(ctx context.Context, salary float64) (string, error) {
	cents := int64(salary * 100)
	if cents < 1 {
		return "", ErrAmountTooSmall
	}

	key, err := util.GenerateIdempotencyKey()
	if err != nil {
		return "", err
	}

	secret, err := s.intents.CreateIntent(ctx, cents, key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}
	return secret, nil
}
