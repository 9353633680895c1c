package dto

import (
	"time"

	"github.com/amirhossein-jamali/bill-processor/internal/domain/entity"
	"github.com/amirhossein-jamali/bill-processor/internal/domain/port/usecase"
)

// BatchResponse represents one import batch
type BatchResponse struct {
	ID           string `json:"id"`
	FileName     string `json:"fileName"`
	FileSize     int64  `json:"fileSize"`
	Source       string `json:"source"`
	SourceType   string `json:"sourceType"`
	RowCount     int    `json:"rowCount"`
	WarningCount int    `json:"warningCount"`
	CreatedAt    string `json:"createdAt"`
}

// BatchListResponse wraps a page of batches
type BatchListResponse struct {
	Batches []BatchResponse `json:"batches"`
	Count   int             `json:"count"`
}

// BatchDeletionResponse reports the effect of deleting a batch
type BatchDeletionResponse struct {
	BatchID         string `json:"batchId"`
	DeletedRows     int64  `json:"deletedRows"`
	ClearedGroups   int    `json:"clearedGroups"`
	ProcessedGroups int    `json:"processedGroups"`
	DedupPending    bool   `json:"dedupPending,omitempty"`
}

// NewBatchResponse converts a batch, rendering its timestamp in loc
func NewBatchResponse(b *entity.ImportBatch, loc *time.Location) BatchResponse {
	return BatchResponse{
		ID:           b.ID,
		FileName:     b.FileName,
		FileSize:     b.FileSize,
		Source:       string(b.Source),
		SourceType:   string(b.SourceType),
		RowCount:     b.RowCount,
		WarningCount: b.WarningCount,
		CreatedAt:    b.CreatedAt.In(loc).Format(time.RFC3339),
	}
}

// NewBatchDeletionResponse converts a deletion report
func NewBatchDeletionResponse(d *usecase.BatchDeletion) BatchDeletionResponse {
	return BatchDeletionResponse{
		BatchID:         d.BatchID,
		DeletedRows:     d.DeletedRows,
		ClearedGroups:   d.ClearedGroups,
		ProcessedGroups: d.ProcessedGroups,
		DedupPending:    d.DedupPending,
	}
}
