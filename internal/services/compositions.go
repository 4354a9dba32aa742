package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Conceptual-Machines/counterpoint-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrCompositionNotFound is returned for an unknown or foreign composition id
	ErrCompositionNotFound = errors.New("composition not found")
	// ErrPersistenceDisabled is returned when no database is configured
	ErrPersistenceDisabled = errors.New("composition persistence is disabled")
)

// CompositionStore persists generated compositions
type CompositionStore interface {
	Save(ctx context.Context, c *models.Composition) error
	Get(ctx context.Context, userID string, id uuid.UUID) (*models.Composition, error)
	List(ctx context.Context, userID string, page, pageSize int) ([]models.Composition, int64, error)
}

// CompositionService stores compositions in Postgres through gorm
type CompositionService struct {
	db *gorm.DB
}

func NewCompositionService(db *gorm.DB) *CompositionService {
	return &CompositionService{db: db}
}

// Save inserts a composition, assigning its id
func (s *CompositionService) Save(ctx context.Context, c *models.Composition) error {
	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("save composition: %w", err)
	}
	return nil
}

// Get returns one of the user's compositions
func (s *CompositionService) Get(ctx context.Context, userID string, id uuid.UUID) (*models.Composition, error) {
	var c models.Composition
	err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrCompositionNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get composition: %w", err)
	}
	return &c, nil
}

// List returns a page of the user's compositions, newest first, and the
// total count
func (s *CompositionService) List(ctx context.Context, userID string, page, pageSize int) ([]models.Composition, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Composition{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count compositions: %w", err)
	}

	var items []models.Composition
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&items).Error; err != nil {
		return nil, 0, fmt.Errorf("list compositions: %w", err)
	}
	return items, total, nil
}
