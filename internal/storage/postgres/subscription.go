package postgres

import (
	"context"
	"fmt"

	"github.com/pribylovaa/go-crm-service/internal/models"
)

// SaveSubscription сохраняет новую подписку на рассылку/блог.
func (s *Storage) SaveSubscription(ctx context.Context, sub *models.NewsletterBlog) error {
	const op = "storage.postgres.SaveSubscription"

	query := `
		INSERT INTO newsletter_blogs(id, email, name, subscribed_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.db.Exec(ctx, query,
		sub.ID,
		sub.Email,
		sub.Name,
		sub.SubscribedAt,
		sub.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ListSubscriptions возвращает подписки, новые первыми.
func (s *Storage) ListSubscriptions(ctx context.Context) ([]models.NewsletterBlog, error) {
	const op = "storage.postgres.ListSubscriptions"

	query := `
		SELECT id, email, name, subscribed_at, created_at
		FROM newsletter_blogs
		ORDER BY created_at DESC
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var subs []models.NewsletterBlog
	for rows.Next() {
		var sub models.NewsletterBlog
		if err := rows.Scan(
			&sub.ID,
			&sub.Email,
			&sub.Name,
			&sub.SubscribedAt,
			&sub.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		subs = append(subs, sub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return subs, nil
}
