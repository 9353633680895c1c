package dedup

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/amirhossein-jamali/bill-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bill-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bill-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/bill-processor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bill-processor/internal/domain/port/usecase"
)

// DefaultMaxCandidates bounds one standalone run
const DefaultMaxCandidates = 100000

// Config holds deduplicator settings
type Config struct {
	// PreferredSource wins primary selection whenever it is present in a group
	PreferredSource entity.Source
	// MaxCandidates is the largest candidate set Run accepts
	MaxCandidates int
}

// Deduplicator marks rows recorded by more than one source as duplicates of a single primary
type Deduplicator struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	config       Config
}

// NewDeduplicator creates a new Deduplicator.
// Calendar days are computed in timeProvider.Location().
func NewDeduplicator(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	config Config,
) *Deduplicator {
	if config.MaxCandidates <= 0 {
		config.MaxCandidates = DefaultMaxCandidates
	}

	return &Deduplicator{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger.With(map[string]any{"component": "deduplicator"}),
		config:       config,
	}
}

var _ usecase.DedupUseCase = (*Deduplicator)(nil)

// Detect groups candidates by (calendar day, amount, direction, counterparty), re-reads each
// group from the persisted set and marks every non-primary member as a duplicate.
// Groups are written sequentially, one atomic transaction each, so a failure leaves earlier
// groups finalized and the whole call safe to rerun.
func (d *Deduplicator) Detect(ctx context.Context, candidates []entity.DuplicateCandidate) (int, error) {
	start := d.timeProvider.Now()
	keys := distinctKeys(candidates, d.timeProvider.Location())

	processed := 0
	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return processed, err
		}

		written, err := d.processGroup(ctx, key)
		if err != nil {
			d.logger.Error("Failed to process duplicate group", map[string]any{
				"group_id": key.GroupID(),
				"day":      key.Day,
				"error":    err.Error(),
			})
			return processed, fmt.Errorf("failed to process duplicate group %s: %w", key.GroupID(), err)
		}
		if written {
			processed++
		}
	}

	d.logger.Info("Duplicate detection completed", map[string]any{
		"candidates":       len(candidates),
		"keys":             len(keys),
		"processed_groups": processed,
		"duration_ms":      d.timeProvider.Since(start).Std().Milliseconds(),
	})

	return processed, nil
}

// Run loads every candidate inside the request's date range and detects over them
func (d *Deduplicator) Run(ctx context.Context, req usecase.DedupRequest) (*usecase.DedupResult, error) {
	if req.StartDate != nil && req.EndDate != nil && req.StartDate.After(*req.EndDate) {
		return nil, fmt.Errorf("%w: start %s is after end %s", errs.ErrInvalidDateRange,
			req.StartDate.Format(time.RFC3339), req.EndDate.Format(time.RFC3339))
	}

	filter := persistence.TransactionFilter{
		From:              req.StartDate,
		To:                req.EndDate,
		IncludeDuplicates: true,
	}
	repo := d.uow.GetTransactionRepository(ctx)

	// Reject oversized scopes before loading anything
	count, err := repo.CountCandidates(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count dedup candidates: %w", err)
	}
	if count > int64(d.config.MaxCandidates) {
		d.logger.Warn("Dedup candidate set too large", map[string]any{
			"candidates": count,
			"limit":      d.config.MaxCandidates,
		})
		return nil, errs.NewCandidateSetTooLargeError(d.config.MaxCandidates, count)
	}

	candidates, err := repo.FindCandidates(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load dedup candidates: %w", err)
	}

	groups, err := d.Detect(ctx, candidates)
	if err != nil {
		return nil, err
	}

	return &usecase.DedupResult{
		CandidateCount:  len(candidates),
		ProcessedGroups: groups,
	}, nil
}

// processGroup re-derives one group inside its own transaction.
// It reports false when the persisted members span fewer than two sources.
func (d *Deduplicator) processGroup(ctx context.Context, key entity.GroupKey) (bool, error) {
	txCtx, err := d.uow.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := d.uow.Rollback(txCtx); rbErr != nil {
			d.logger.Warn("Failed to roll back duplicate group", map[string]any{
				"group_id": key.GroupID(),
				"error":    rbErr.Error(),
			})
		}
	}()

	repo := d.uow.GetTransactionRepository(txCtx)
	members, err := repo.FindGroupMembers(txCtx, persistence.GroupQuery{
		From:         key.DayStart,
		To:           key.DayEnd,
		Amount:       key.Amount,
		Direction:    key.Direction,
		Counterparty: key.Counterparty,
	})
	if err != nil {
		return false, fmt.Errorf("failed to load group members: %w", err)
	}

	if distinctSources(members) < 2 {
		return false, nil
	}

	sortMembers(members)
	primary := selectPrimary(members, d.config.PreferredSource)
	groupID := key.GroupID()

	secondaries := make([]uint64, 0, len(members)-1)
	for _, m := range members {
		if m.ID != primary.ID {
			secondaries = append(secondaries, m.ID)
		}
	}

	if err := repo.MarkPrimary(txCtx, primary.ID, groupID); err != nil {
		return false, fmt.Errorf("failed to mark primary: %w", err)
	}
	if err := repo.MarkDuplicates(txCtx, secondaries, primary.ID, groupID, entity.DuplicateReasonCrossSource); err != nil {
		return false, fmt.Errorf("failed to mark duplicates: %w", err)
	}

	if err := d.uow.Commit(txCtx); err != nil {
		return false, fmt.Errorf("failed to commit duplicate group: %w", err)
	}
	committed = true

	d.logger.Debug("Duplicate group written", map[string]any{
		"group_id":   groupID,
		"primary_id": primary.ID,
		"members":    len(members),
		"source":     string(primary.Source),
	})

	return true, nil
}

// distinctKeys keeps one key per group and orders them by key text
func distinctKeys(candidates []entity.DuplicateCandidate, loc *time.Location) []entity.GroupKey {
	seen := make(map[string]entity.GroupKey, len(candidates))
	for _, c := range candidates {
		key, ok := entity.NewGroupKey(c, loc)
		if !ok {
			continue
		}
		text := key.String()
		if _, exists := seen[text]; !exists {
			seen[text] = key
		}
	}

	keys := make([]entity.GroupKey, 0, len(seen))
	for _, key := range seen {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})
	return keys
}

func distinctSources(members []*entity.Transaction) int {
	sources := make(map[entity.Source]struct{}, 2)
	for _, m := range members {
		sources[m.Source] = struct{}{}
	}
	return len(sources)
}

// sortMembers orders by (occurredAt, id)
func sortMembers(members []*entity.Transaction) {
	sort.SliceStable(members, func(i, j int) bool {
		if !members[i].OccurredAt.Equal(members[j].OccurredAt) {
			return members[i].OccurredAt.Before(members[j].OccurredAt)
		}
		return members[i].ID < members[j].ID
	})
}

// selectPrimary picks the first preferred-source member, otherwise the earliest.
// members must already be sorted.
func selectPrimary(members []*entity.Transaction, preferred entity.Source) *entity.Transaction {
	if preferred != "" {
		for _, m := range members {
			if m.Source == preferred {
				return m
			}
		}
	}
	return members[0]
}
