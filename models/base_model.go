package models

import (
	"time"
)

// BaseModel tüm GORM tabloları için ortak alanlar.
type BaseModel struct {
	ID        uint      `gorm:"primarykey"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}
