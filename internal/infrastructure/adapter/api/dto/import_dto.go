package dto

import (
	"github.com/amirhossein-jamali/bill-processor/internal/domain/entity"
	"github.com/amirhossein-jamali/bill-processor/internal/domain/port/usecase"
)

// ParseResponse is the preview of a file: drafts and warnings, nothing persisted
type ParseResponse struct {
	Source     string                `json:"source"`
	SourceType string                `json:"sourceType"`
	DataRows   int                   `json:"dataRows"`
	Drafts     []DraftDTO            `json:"drafts"`
	Warnings   []entity.ParseWarning `json:"warnings"`
}

// CommitRequest represents the API request for persisting client-reviewed drafts
type CommitRequest struct {
	FileName     string     `json:"fileName" binding:"required"`
	FileSize     int64      `json:"fileSize" binding:"gte=0"`
	Source       string     `json:"source" binding:"required"`
	SourceType   string     `json:"sourceType"`
	Drafts       []DraftDTO `json:"drafts" binding:"required"`
	WarningCount int        `json:"warningCount" binding:"gte=0"`
}

// CommitResponse reports what a commit persisted
type CommitResponse struct {
	BatchID         string `json:"batchId,omitempty"`
	RowCount        int    `json:"rowCount"`
	SkippedCount    int    `json:"skippedCount"`
	FailedCount     int    `json:"failedCount"`
	ProcessedGroups int    `json:"processedGroups"`
	DedupPending    bool   `json:"dedupPending,omitempty"`
	BatchPending    bool   `json:"batchPending,omitempty"`
}

// ImportResponse is a parse followed by a commit
type ImportResponse struct {
	CommitResponse
	Source       string                `json:"source"`
	SourceType   string                `json:"sourceType"`
	WarningCount int                   `json:"warningCount"`
	Warnings     []entity.ParseWarning `json:"warnings,omitempty"`
}

// NewParseResponse converts a parse result
func NewParseResponse(r *entity.ParseResult) ParseResponse {
	drafts := make([]DraftDTO, len(r.Drafts))
	for i, d := range r.Drafts {
		drafts[i] = NewDraftDTO(d)
	}
	warnings := r.Warnings
	if warnings == nil {
		warnings = []entity.ParseWarning{}
	}

	return ParseResponse{
		Source:     string(r.Source),
		SourceType: string(r.SourceType),
		DataRows:   r.DataRows,
		Drafts:     drafts,
		Warnings:   warnings,
	}
}

// NewCommitResponse converts a commit result
func NewCommitResponse(r *usecase.CommitResult) CommitResponse {
	return CommitResponse{
		BatchID:         r.BatchID,
		RowCount:        r.RowCount,
		SkippedCount:    r.SkippedCount,
		FailedCount:     r.FailedCount,
		ProcessedGroups: r.ProcessedGroups,
		DedupPending:    r.DedupPending,
		BatchPending:    r.BatchPending,
	}
}

// NewImportResponse converts an import result
func NewImportResponse(r *usecase.ImportResult) ImportResponse {
	return ImportResponse{
		CommitResponse: NewCommitResponse(&r.CommitResult),
		Source:         string(r.Source),
		SourceType:     string(r.SourceType),
		WarningCount:   r.WarningCount,
		Warnings:       r.Warnings,
	}
}
