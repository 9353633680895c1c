package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/bill-processor/internal/domain/entity"
)

// DedupRequest bounds a standalone dedup run; nil bounds are open
type DedupRequest struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// DedupResult reports the size of a dedup run
type DedupResult struct {
	CandidateCount  int
	ProcessedGroups int
}

// DedupUseCase defines cross-source duplicate detection
type DedupUseCase interface {
	// Detect groups candidates against the full persisted set and marks secondaries.
	// Returns the number of cross-source groups written.
	Detect(ctx context.Context, candidates []entity.DuplicateCandidate) (int, error)

	// Run loads candidates inside the request's date range and detects over them
	//
	// Possible errors:
	// - ErrCandidateSetTooLarge: If the range holds more candidates than the ceiling
	// - ErrInvalidDateRange: If start is after end
	Run(ctx context.Context, req DedupRequest) (*DedupResult, error)
}
