package ingest

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/bill-processor/internal/domain/entity"
	"github.com/amirhossein-jamali/bill-processor/internal/domain/port/persistence"
)

// DefaultChunkSize keeps IN lists and multi-row inserts under driver parameter limits
const DefaultChunkSize = 500

// IdempotencyHandler filters out drafts that are already persisted
type IdempotencyHandler struct {
	chunkSize int
}

// NewIdempotencyHandler creates a new IdempotencyHandler
func NewIdempotencyHandler(chunkSize int) *IdempotencyHandler {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &IdempotencyHandler{chunkSize: chunkSize}
}

// FilterNew returns the drafts whose (source, sourceRowId) is not yet stored.
// Repeated sourceRowIds inside the request keep only their first occurrence.
func (h *IdempotencyHandler) FilterNew(
	ctx context.Context,
	repo persistence.TransactionRepository,
	source entity.Source,
	drafts []entity.TransactionDraft,
) ([]entity.TransactionDraft, error) {
	ids := make([]string, 0, len(drafts))
	seen := make(map[string]struct{}, len(drafts))
	for _, d := range drafts {
		if _, ok := seen[d.SourceRowID]; ok {
			continue
		}
		seen[d.SourceRowID] = struct{}{}
		ids = append(ids, d.SourceRowID)
	}

	existing, err := h.skipSet(ctx, repo, source, ids)
	if err != nil {
		return nil, err
	}

	fresh := make([]entity.TransactionDraft, 0, len(ids)-len(existing))
	for _, d := range drafts {
		if _, ok := existing[d.SourceRowID]; ok {
			continue
		}
		// Mark as taken so later repeats are dropped
		existing[d.SourceRowID] = struct{}{}
		fresh = append(fresh, d)
	}

	return fresh, nil
}

// skipSet queries existing ids chunk by chunk
func (h *IdempotencyHandler) skipSet(
	ctx context.Context,
	repo persistence.TransactionRepository,
	source entity.Source,
	ids []string,
) (map[string]struct{}, error) {
	existing := make(map[string]struct{})

	for start := 0; start < len(ids); start += h.chunkSize {
		end := min(start+h.chunkSize, len(ids))

		found, err := repo.FindExistingSourceRowIDs(ctx, source, ids[start:end])
		if err != nil {
			return nil, fmt.Errorf("failed to check existing rows: %w", err)
		}
		for _, id := range found {
			existing[id] = struct{}{}
		}
	}

	return existing, nil
}
