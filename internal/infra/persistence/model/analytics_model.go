package model

import (
	"time"

	"github.com/google/uuid"
)

// UserAnalyticsModel mirrors the 'user_analytics' table. Rows are append-only.
type UserAnalyticsModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	Browser   string     `gorm:"type:varchar(255)"`
	Device    string     `gorm:"type:varchar(255)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserAnalyticsModel) TableName() string {
	return "user_analytics"
}

// MultimediaModel mirrors the 'multimedia' table.
type MultimediaModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	FileType      string    `gorm:"type:varchar(20);not null"`
	URL           string    `gorm:"type:varchar(512);not null"`
	ExtractedText *string   `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (MultimediaModel) TableName() string {
	return "multimedia"
}
