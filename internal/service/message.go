package service

import (
	"context"
	"fmt"

	"awei/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
)

// MessageService handles the contact-message box
type MessageService struct {
	repo repository.IMessageRepository
}

func NewMessageService(repo repository.IMessageRepository) *MessageService {
	return &MessageService{repo: repo}
}

func (s *MessageService) Add(ctx context.Context, fields map[string]interface{}) (string, error) {
	oid, err := s.repo.Insert(ctx, fields)
	if err != nil {
		return "", fmt.Errorf("failed to insert message: %w", err)
	}
	return oid.Hex(), nil
}

func (s *MessageService) List(ctx context.Context) ([]bson.M, error) {
	return s.repo.FindAll(ctx)
}
