package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rohits-web03/clubhouse/internal/models"
)

type UserStore interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByGoogleID(ctx context.Context, googleID string) (*models.User, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, id uuid.UUID, patch models.UserPatch) (*models.User, error)
}

type SessionStore interface {
	Create(ctx context.Context, s *models.Session) error
	Find(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}

type MessageStore interface {
	Create(ctx context.Context, msg *models.Message) (*models.Message, error)
	ListNewestFirst(ctx context.Context) ([]models.Message, error)
}

type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body []byte) error
	PresignGet(ctx context.Context, key string, expires time.Duration) (string, error)
}
