package entity

import (
	"time"

	"github.com/google/uuid"
)

// ImportBatch records one file-import operation
type ImportBatch struct {
	ID           string
	FileName     string
	FileSize     int64
	Source       Source
	SourceType   SourceType
	RowCount     int
	WarningCount int
	CreatedAt    time.Time
}

// NewImportBatch creates a placeholder batch with RowCount 0
func NewImportBatch(fileName string, fileSize int64, source Source, sourceType SourceType, warningCount int, now time.Time) *ImportBatch {
	return &ImportBatch{
		ID:           uuid.NewString(),
		FileName:     fileName,
		FileSize:     fileSize,
		Source:       source,
		SourceType:   sourceType,
		WarningCount: warningCount,
		CreatedAt:    now,
	}
}
