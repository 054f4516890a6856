package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pribylovaa/go-crm-service/internal/models"

	"github.com/google/uuid"
)

// CreateSubscription сохраняет новую подписку на рассылку/блог.
// SubscribedAt опционален и остаётся пустым (NULL), если клиент его не передал.
func (s *Service) CreateSubscription(ctx context.Context, sub *models.NewsletterBlog) (*models.NewsletterBlog, error) {
	const op = "service.subscriptions.CreateSubscription"

	sub.ID = uuid.New()
	sub.Email = normalizeEmail(sub.Email)
	sub.CreatedAt = time.Now().UTC()

	if err := s.storage.SaveSubscription(ctx, sub); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sub, nil
}

// ListSubscriptions возвращает все подписки, новые первыми.
func (s *Service) ListSubscriptions(ctx context.Context) ([]models.NewsletterBlog, error) {
	const op = "service.subscriptions.ListSubscriptions"

	subs, err := s.storage.ListSubscriptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return subs, nil
}
