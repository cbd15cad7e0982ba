package model

import (
	"time"
)

// UserModel mirrors the 'users' table. Usernames are unique and compared case-sensitively.
// It is an exported type so AutoMigrate and the repositories can share it.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"type:varchar(64);not null;uniqueIndex:idx_users_username"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Salt         string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Heroes []HeroModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
