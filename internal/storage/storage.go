package storage

import (
	"context"
	"errors"
	"time"

	"github.com/pribylovaa/go-crm-service/internal/models"

	"github.com/google/uuid"
)

var (
	// ErrNotFound — запись не найдена (пользователь/визит/подписка).
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (email).
	ErrAlreadyExists = errors.New("already exists")
)

// UserStorage выполняет операции над пользователями.
type UserStorage interface {
	// SaveUser создает нового пользователя в БД.
	SaveUser(ctx context.Context, user *models.User) error
	// UserByEmail находит пользователя по email.
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	// TouchLastLogin фиксирует время последнего входа.
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	// ListUsers возвращает пользователей, новые первыми.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// VisitStorage выполняет операции над записями о визитах.
type VisitStorage interface {
	// SaveVisit сохраняет новую запись о визите.
	SaveVisit(ctx context.Context, visit *models.WebsiteVisit) error
	// ListVisits возвращает визиты, новые первыми.
	ListVisits(ctx context.Context) ([]models.WebsiteVisit, error)
}

// SubscriptionStorage выполняет операции над подписками.
type SubscriptionStorage interface {
	// SaveSubscription сохраняет новую подписку.
	SaveSubscription(ctx context.Context, sub *models.NewsletterBlog) error
	// ListSubscriptions возвращает подписки, новые первыми.
	ListSubscriptions(ctx context.Context) ([]models.NewsletterBlog, error)
}

// Storage задает контракт работы с БД.
type Storage interface {
	UserStorage
	VisitStorage
	SubscriptionStorage
	Close()
}
