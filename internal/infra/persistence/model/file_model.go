package model

import (
	"time"

	"github.com/google/uuid"
)

// FileModel mirrors the 'files' table. Path is the blob storage key.
type FileModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(512);not null"`
	Path         string    `gorm:"type:varchar(1024);not null"`
	OriginalName string    `gorm:"type:varchar(512)"`
	MimeType     string    `gorm:"type:varchar(255)"`
	Size         int64
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (FileModel) TableName() string {
	return "files"
}
