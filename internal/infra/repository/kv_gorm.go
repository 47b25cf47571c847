package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barberpro/internal/kv"
	"github.com/BruksfildServices01/barberpro/internal/models"
)

type KVGormRepository struct {
	db *gorm.DB
}

func NewKVGormRepository(db *gorm.DB) *KVGormRepository {
	return &KVGormRepository{db: db}
}

func (r *KVGormRepository) Get(
	ctx context.Context,
	key string,
) ([]byte, bool, error) {

	var entry models.KVEntry
	err := r.db.WithContext(ctx).
		Where("entry_key = ?", key).
		First(&entry).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return []byte(entry.Value), true, nil
}

func (r *KVGormRepository) Set(
	ctx context.Context,
	key string,
	value []byte,
) error {

	entry := models.KVEntry{
		Key:       key,
		Value:     string(value),
		UpdatedAt: time.Now(),
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "entry_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"entry_value", "updated_at"}),
		}).
		Create(&entry).Error
}

func (r *KVGormRepository) Delete(
	ctx context.Context,
	key string,
) error {
	return r.db.WithContext(ctx).
		Where("entry_key = ?", key).
		Delete(&models.KVEntry{}).Error
}

// Compile-time check
var _ kv.Store = (*KVGormRepository)(nil)
