package service

import (
	"context"
	"fmt"
	"time"

	"awei/internal/model"
	"awei/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
)

// WorkSheetService handles timesheet business logic
type WorkSheetService struct {
	repo repository.IWorkSheetRepository
}

func NewWorkSheetService(repo repository.IWorkSheetRepository) *WorkSheetService {
	return &WorkSheetService{repo: repo}
}

func (s *WorkSheetService) Add(ctx context.Context, sheet *model.WorkSheet) (string, error) {
	oid, err := s.repo.Insert(ctx, sheet)
	if err != nil {
		return "", fmt.Errorf("failed to insert work sheet: %w", err)
	}
	return oid.Hex(), nil
}

func (s *WorkSheetService) ListByEmail(ctx context.Context, email string) ([]model.WorkSheet, error) {
	return s.repo.FindByEmail(ctx, email)
}

// Progress lists entries matching an optional employee name and an
// optional "2006-01" month, both month endpoints inclusive.
func (s *WorkSheetService) Progress(ctx context.Context, employee, month string) ([]model.WorkSheet, error) {
	filter := bson.M{}
	if employee != "" {
		filter["name"] = employee
	}
	if month != "" {
		from, to, err := MonthBounds(month)
		if err != nil {
			return nil, err
		}
		filter["date"] = bson.M{"$gte": from, "$lte": to}
	}
	return s.repo.Find(ctx, filter)
}

// MonthBounds expands a "2006-01" month into its first and last calendar
// days in "2006-01-02" form, the same shape work-sheet dates are stored
// in, so the range compares correctly as strings.
func MonthBounds(month string) (from, to string, err error) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return "", "", fmt.Errorf("invalid month %q: %w", month, err)
	}
	first := t
	last := t.AddDate(0, 1, -1)
	return first.Format("2006-01-02"), last.Format("2006-01-02"), nil
}
