package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pnl_tracker/internal/domain"
)

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) (*GormUserRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db is required")
	}
	return &GormUserRepository{db: db}, nil
}

// UpsertUser keeps the stored session token when the user already exists.
func (r *GormUserRepository) UpsertUser(ctx context.Context, user domain.User) error {
	model := toUserModel(user)

	assignments := clause.Assignments(map[string]interface{}{
		"email":         gorm.Expr("COALESCE(EXCLUDED.email, users.email)"),
		"name":          gorm.Expr("COALESCE(EXCLUDED.name, users.name)"),
		"auto_snapshot": gorm.Expr("EXCLUDED.auto_snapshot"),
		"last_seen":     gorm.Expr("EXCLUDED.last_seen"),
		"updated_at":    gorm.Expr("CURRENT_TIMESTAMP"),
	})

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: assignments,
		}).
		Create(&model).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("session token already in use: %w", domain.ErrConflict)
	}
	return err
}

func (r *GormUserRepository) GetUser(ctx context.Context, userID string) (domain.User, error) {
	var model UserModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.NewNotFoundError("user", userID)
		}
		return domain.User{}, err
	}

	return model.toDomain(), nil
}

func (r *GormUserRepository) GetUserBySessionToken(ctx context.Context, token string) (domain.User, error) {
	if token == "" {
		return domain.User{}, domain.ErrUnauthorized
	}

	var model UserModel
	err := r.db.WithContext(ctx).
		Where("session_token = ?", token).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrUnauthorized
		}
		return domain.User{}, err
	}

	return model.toDomain(), nil
}

func (r *GormUserRepository) ListAutoSnapshotUsers(ctx context.Context) ([]domain.User, error) {
	var models []UserModel
	err := r.db.WithContext(ctx).
		Where("auto_snapshot = ?", true).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	users := make([]domain.User, len(models))
	for i, model := range models {
		users[i] = model.toDomain()
	}

	return users, nil
}
