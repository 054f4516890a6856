package postgres

import (
	"context"
	"fmt"

	"github.com/pribylovaa/go-crm-service/internal/models"
)

// SaveVisit сохраняет новую запись о визите.
func (s *Storage) SaveVisit(ctx context.Context, visit *models.WebsiteVisit) error {
	const op = "storage.postgres.SaveVisit"

	query := `
		INSERT INTO website_visits(id, url, referrer, user_agent, ip_address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := s.db.Exec(ctx, query,
		visit.ID,
		visit.URL,
		visit.Referrer,
		visit.UserAgent,
		visit.IPAddress,
		visit.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ListVisits возвращает визиты, новые первыми.
func (s *Storage) ListVisits(ctx context.Context) ([]models.WebsiteVisit, error) {
	const op = "storage.postgres.ListVisits"

	query := `
		SELECT id, url, referrer, user_agent, ip_address, created_at
		FROM website_visits
		ORDER BY created_at DESC
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var visits []models.WebsiteVisit
	for rows.Next() {
		var visit models.WebsiteVisit
		if err := rows.Scan(
			&visit.ID,
			&visit.URL,
			&visit.Referrer,
			&visit.UserAgent,
			&visit.IPAddress,
			&visit.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		visits = append(visits, visit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return visits, nil
}
