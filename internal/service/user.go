package service

import (
	"context"
	"errors"
	"fmt"

	"awei/internal/model"
	"awei/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrSalaryNotIncrease = errors.New("salary can only be adjusted upward")
)

// UserService handles account business logic
type UserService struct {
	repo repository.IUserRepository
}

func NewUserService(repo repository.IUserRepository) *UserService {
	return &UserService{repo: repo}
}

// Create inserts a user unless the email is already taken. The pre-check
// read is the fast path; the unique index catches the race where two
// creates pass it concurrently, and the duplicate-key error is folded
// into the same "already exists" result.
func (s *UserService) Create(ctx context.Context, user *model.User) (id string, exists bool, err error) {
	existing, err := s.repo.FindByEmail(ctx, user.Email)
	if err != nil {
		return "", false, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return "", true, nil
	}

	oid, err := s.repo.Insert(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", true, nil
		}
		return "", false, fmt.Errorf("failed to insert user: %w", err)
	}
	return oid.Hex(), false, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *UserService) ListVerified(ctx context.Context) ([]model.User, error) {
	return s.repo.FindVerified(ctx)
}

func (s *UserService) ListEmployees(ctx context.Context) ([]model.User, error) {
	return s.repo.FindByRole(ctx, model.RoleEmployee)
}

// UpdateByEmail merge-updates the given fields on a user. The natural key
// and document id are never writable through this path.
func (s *UserService) UpdateByEmail(ctx context.Context, email string, fields map[string]interface{}) (matched, modified int64, err error) {
	set := bson.M{}
	for k, v := range fields {
		if k == "_id" || k == "email" {
			continue
		}
		set[k] = v
	}
	if len(set) == 0 {
		return 0, 0, nil
	}
	return s.repo.UpdateByEmail(ctx, email, set)
}

// Fire marks a user as fired. Fired users keep their documents; nothing
// is ever deleted from the users collection.
func (s *UserService) Fire(ctx context.Context, id primitive.ObjectID) error {
	matched, _, err := s.repo.UpdateByID(ctx, id, bson.M{"fired": true})
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrUserNotFound
	}
	return nil
}

// AdjustSalary raises a user's salary. Decreases are rejected.
func (s *UserService) AdjustSalary(ctx context.Context, id primitive.ObjectID, salary float64) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if salary <= user.Salary {
		return ErrSalaryNotIncrease
	}
	_, _, err = s.repo.UpdateByID(ctx, id, bson.M{"salary": salary})
	return err
}

// Salary returns a user's current salary by id.
func (s *UserService) Salary(ctx context.Context, id primitive.ObjectID) (float64, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, ErrUserNotFound
	}
	return user.Salary, nil
}
