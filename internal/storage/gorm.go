package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Kyz7/gallery/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSlot keeps snapshots in the kv_slots table.
type GormSlot struct {
	db *gorm.DB
}

func NewGormSlot(db *gorm.DB) *GormSlot {
	return &GormSlot{db: db}
}

func (g *GormSlot) Get(ctx context.Context, key string) ([]byte, error) {
	var row models.KVSlot
	err := g.db.WithContext(ctx).Where("key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("query kv slot: %w", err)
	}
	return []byte(row.Value), nil
}

func (g *GormSlot) Put(ctx context.Context, key string, value []byte) error {
	row := models.KVSlot{
		Key:       key,
		Value:     datatypes.JSON(value),
		UpdatedAt: time.Now(),
	}
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("upsert kv slot: %w", err)
	}
	return nil
}
