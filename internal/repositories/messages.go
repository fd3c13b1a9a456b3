package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/rohits-web03/clubhouse/internal/models"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(ctx context.Context, msg *models.Message) (*models.Message, error) {
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return nil, fmt.Errorf("MessageRepository.Create: %w", err)
	}
	return msg, nil
}

// ListNewestFirst returns every message ordered by timestamp, newest first.
// Equal timestamps fall back to insertion order.
func (r *MessageRepository) ListNewestFirst(ctx context.Context) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.WithContext(ctx).
		Order("posted_at DESC").
		Order("id DESC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("MessageRepository.ListNewestFirst: %w", err)
	}
	return messages, nil
}

func (r *MessageRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Message{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("MessageRepository.Count: %w", err)
	}
	return n, nil
}
