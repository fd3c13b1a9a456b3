package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rohits-web03/clubhouse/internal/common"
	"github.com/rohits-web03/clubhouse/internal/models"
)

// UserRepository is the credential store.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findOne(ctx, "username = ?", username)
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepository) FindByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	return r.findOne(ctx, "google_id = ?", googleID)
}

// FindByIDs returns the users that exist among ids, keyed by id.
func (r *UserRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.User, error) {
	out := make(map[uuid.UUID]models.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var users []models.User
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("UserRepository.FindByIDs: %w", err)
	}
	for _, u := range users {
		out[u.ID] = u
	}
	return out, nil
}

// Create inserts a new user. The unique index on username decides the
// winner of concurrent signups; the loser gets common.ErrDuplicateUsername.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("user %q: %w", user.Username, common.ErrDuplicateUsername)
		}
		return nil, fmt.Errorf("UserRepository.Create: %w", err)
	}
	return user, nil
}

// Update applies patch to the user with the given id and returns the stored
// result. Membership can only move forward.
func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, patch models.UserPatch) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return common.ErrNotFound
			}
			return err
		}

		updates := map[string]any{}
		if patch.Membership != nil {
			if !user.Membership.CanBecome(*patch.Membership) {
				return common.ErrMembershipDowngrade
			}
			if *patch.Membership != user.Membership {
				updates["membership"] = *patch.Membership
			}
		}
		if len(updates) == 0 {
			return nil
		}

		if err := tx.Model(&user).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).First(&user).Error
	})
	if err != nil {
		if errors.Is(err, common.ErrNotFound) || errors.Is(err, common.ErrMembershipDowngrade) {
			return nil, err
		}
		return nil, fmt.Errorf("UserRepository.Update: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where(query, arg).First(&user).Error
	switch {
	case err == nil:
		return &user, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, common.ErrNotFound
	default:
		return nil, fmt.Errorf("UserRepository.findOne: %w", err)
	}
}
