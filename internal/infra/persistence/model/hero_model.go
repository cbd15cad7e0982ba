package model

import (
	"time"
)

// HeroModel mirrors the 'heroes' table. UserID references users.id.
type HeroModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UserID    int64  `gorm:"not null;index:idx_heroes_user_id"`
	Name      string `gorm:"type:varchar(100);not null"`
	Wins      int    `gorm:"not null;default:0"`
	Losses    int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (HeroModel) TableName() string {
	return "heroes"
}

// All returns every persistence model, in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&HeroModel{},
	}
}
