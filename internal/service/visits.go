package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pribylovaa/go-crm-service/internal/models"

	"github.com/google/uuid"
)

// CreateVisit сохраняет новую запись о визите на сайт.
func (s *Service) CreateVisit(ctx context.Context, visit *models.WebsiteVisit) (*models.WebsiteVisit, error) {
	const op = "service.visits.CreateVisit"

	visit.ID = uuid.New()
	visit.CreatedAt = time.Now().UTC()

	if err := s.storage.SaveVisit(ctx, visit); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return visit, nil
}

// ListVisits возвращает все визиты, новые первыми.
func (s *Service) ListVisits(ctx context.Context) ([]models.WebsiteVisit, error) {
	const op = "service.visits.ListVisits"

	visits, err := s.storage.ListVisits(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return visits, nil
}
