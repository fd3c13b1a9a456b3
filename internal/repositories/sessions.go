package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/rohits-web03/clubhouse/internal/common"
	"github.com/rohits-web03/clubhouse/internal/models"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, s *models.Session) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("SessionRepository.Create: %w", err)
	}
	return nil
}

func (r *SessionRepository) Find(ctx context.Context, id string) (*models.Session, error) {
	var s models.Session
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	switch {
	case err == nil:
		return &s, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, common.ErrNotFound
	default:
		return nil, fmt.Errorf("SessionRepository.Find: %w", err)
	}
}

// Delete removes the session. Deleting a missing session is not an error.
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Session{}).Error; err != nil {
		return fmt.Errorf("SessionRepository.Delete: %w", err)
	}
	return nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&models.Session{})
	if res.Error != nil {
		return 0, fmt.Errorf("SessionRepository.DeleteExpired: %w", res.Error)
	}
	return res.RowsAffected, nil
}
