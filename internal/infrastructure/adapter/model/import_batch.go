package model

import (
	"time"
)

// ImportBatch represents the database model for one file import
type ImportBatch struct {
	ID           string    `gorm:"primaryKey;size:36"`
	FileName     string    `gorm:"not null;size:255"`
	FileSize     int64     `gorm:"not null"`
	Source       string    `gorm:"not null;size:32;index"`
	SourceType   string    `gorm:"not null;size:8"`
	RowCount     int       `gorm:"not null;default:0"`
	WarningCount int       `gorm:"not null;default:0"`
	CreatedAt    time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for ImportBatch
func (ImportBatch) TableName() string {
	return "import_batches"
}
