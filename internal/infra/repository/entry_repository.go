package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pnl_tracker/internal/domain"
)

type GormEntryRepository struct {
	db *gorm.DB
}

func NewGormEntryRepository(db *gorm.DB) (*GormEntryRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db is required")
	}
	return &GormEntryRepository{db: db}, nil
}

// UpsertEntry inserts the entry or replaces the balances and notes of the entry already stored
// for the same user and date. The stored row is returned so callers see the surviving id.
func (r *GormEntryRepository) UpsertEntry(ctx context.Context, entry domain.Entry) (domain.Entry, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	model, err := toEntryModel(entry)
	if err != nil {
		return domain.Entry{}, err
	}

	assignments := clause.Assignments(map[string]interface{}{
		"balances":   gorm.Expr("EXCLUDED.balances"),
		"notes":      gorm.Expr("EXCLUDED.notes"),
		"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
	})

	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "entry_date"}},
			DoUpdates: assignments,
		}).
		Create(&model).Error
	if err != nil {
		return domain.Entry{}, fmt.Errorf("upsert entry: %w", err)
	}

	var stored EntryModel
	err = r.db.WithContext(ctx).
		Where("user_id = ? AND entry_date = ?", model.UserID, model.EntryDate).
		First(&stored).Error
	if err != nil {
		return domain.Entry{}, fmt.Errorf("reload entry: %w", err)
	}
	return stored.toDomain()
}

// UpdateEntry rewrites an existing entry by id. Moving it onto a date that already holds another
// entry fails with domain.ErrConflict.
func (r *GormEntryRepository) UpdateEntry(ctx context.Context, entry domain.Entry) (domain.Entry, error) {
	model, err := toEntryModel(entry)
	if err != nil {
		return domain.Entry{}, err
	}

	var updated EntryModel
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current EntryModel
		if err := tx.Where("id = ? AND user_id = ?", model.ID, model.UserID).First(&current).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NewNotFoundError("entry", model.ID)
			}
			return err
		}

		var clashes int64
		err := tx.Model(&EntryModel{}).
			Where("user_id = ? AND entry_date = ? AND id <> ?", model.UserID, model.EntryDate, model.ID).
			Count(&clashes).Error
		if err != nil {
			return err
		}
		if clashes > 0 {
			return fmt.Errorf("an entry already exists for %s: %w", model.EntryDate, domain.ErrConflict)
		}

		err = tx.Model(&current).Updates(map[string]interface{}{
			"entry_date": model.EntryDate,
			"balances":   model.Balances,
			"notes":      model.Notes,
		}).Error
		if err != nil {
			return err
		}
		return tx.Where("id = ?", model.ID).First(&updated).Error
	})
	if err != nil {
		return domain.Entry{}, err
	}
	return updated.toDomain()
}

func (r *GormEntryRepository) GetEntry(ctx context.Context, userID, entryID string) (domain.Entry, error) {
	var model EntryModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Entry{}, domain.NewNotFoundError("entry", entryID)
		}
		return domain.Entry{}, err
	}
	return model.toDomain()
}

func (r *GormEntryRepository) DeleteEntry(ctx context.Context, userID, entryID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&EntryModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("entry", entryID)
	}
	return nil
}

// ListEntries returns the user's entries oldest first.
func (r *GormEntryRepository) ListEntries(ctx context.Context, userID string) ([]domain.Entry, error) {
	var models []EntryModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("entry_date ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	entries := make([]domain.Entry, 0, len(models))
	for _, model := range models {
		entry, err := model.toDomain()
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
