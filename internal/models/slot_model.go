package models

import (
	"time"

	"gorm.io/datatypes"
)

// KVSlot is one row of the key-value table backing catalog snapshots.
type KVSlot struct {
	Key       string         `gorm:"primaryKey;size:255" json:"key"`
	Value     datatypes.JSON `json:"value"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (KVSlot) TableName() string {
	return "kv_slots"
}
