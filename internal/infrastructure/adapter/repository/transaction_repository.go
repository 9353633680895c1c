package repository

import (
	"context"
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/bill-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bill-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bill-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/bill-processor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/model"
)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

var _ persistence.TransactionRepository = (*TransactionRepository)(nil)

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) (model.Transaction, error) {
	var raw datatypes.JSON
	if len(transaction.SourceRaw) > 0 {
		encoded, err := json.Marshal(transaction.SourceRaw)
		if err != nil {
			return model.Transaction{}, err
		}
		raw = encoded
	}

	return model.Transaction{
		ID:                    transaction.ID,
		ImportBatchID:         transaction.ImportBatchID,
		OccurredAt:            transaction.OccurredAt.UTC(),
		Amount:                transaction.Amount,
		Direction:             string(transaction.Direction),
		Currency:              transaction.Currency,
		Counterparty:          transaction.Counterparty,
		Description:           transaction.Description,
		Category:              transaction.Category,
		AccountName:           transaction.AccountName,
		Source:                string(transaction.Source),
		SourceRowID:           transaction.SourceRowID,
		SourceRaw:             raw,
		Balance:               transaction.Balance,
		Status:                transaction.Status,
		CounterpartyAccount:   transaction.CounterpartyAccount,
		PlatformTransactionID: transaction.PlatformTransactionID,
		MerchantOrderID:       transaction.MerchantOrderID,
		Memo:                  transaction.Memo,
		IsDuplicate:           transaction.IsDuplicate,
		DuplicateGroupID:      transaction.DuplicateGroupID,
		PrimaryTransactionID:  transaction.PrimaryTransactionID,
		DuplicateReason:       transaction.DuplicateReason,
		CreatedAt:             transaction.CreatedAt,
	}, nil
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(m *model.Transaction) *entity.Transaction {
	var raw map[string]string
	if len(m.SourceRaw) > 0 {
		if err := json.Unmarshal(m.SourceRaw, &raw); err != nil {
			r.logger.Warn("Stored source payload is not a flat object", map[string]any{
				"transaction_id": m.ID,
				"error":          err.Error(),
			})
		}
	}

	return &entity.Transaction{
		TransactionDraft: entity.TransactionDraft{
			OccurredAt:            m.OccurredAt.UTC(),
			Amount:                m.Amount,
			Direction:             entity.Direction(m.Direction),
			Currency:              m.Currency,
			Counterparty:          m.Counterparty,
			Description:           m.Description,
			Category:              m.Category,
			AccountName:           m.AccountName,
			Source:                entity.Source(m.Source),
			SourceRaw:             raw,
			SourceRowID:           m.SourceRowID,
			Balance:               m.Balance,
			Status:                m.Status,
			CounterpartyAccount:   m.CounterpartyAccount,
			PlatformTransactionID: m.PlatformTransactionID,
			MerchantOrderID:       m.MerchantOrderID,
			Memo:                  m.Memo,
		},
		ID:                   m.ID,
		ImportBatchID:        m.ImportBatchID,
		CreatedAt:            m.CreatedAt,
		IsDuplicate:          m.IsDuplicate,
		DuplicateGroupID:     m.DuplicateGroupID,
		PrimaryTransactionID: m.PrimaryTransactionID,
		DuplicateReason:      m.DuplicateReason,
	}
}

// FindExistingSourceRowIDs returns the subset of sourceRowIDs already stored for source
func (r *TransactionRepository) FindExistingSourceRowIDs(ctx context.Context, source entity.Source, sourceRowIDs []string) ([]string, error) {
	if len(sourceRowIDs) == 0 {
		return nil, nil
	}

	var existing []string
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("source = ? AND source_row_id IN ?", string(source), sourceRowIDs).
		Pluck("source_row_id", &existing)

	if result.Error != nil {
		r.logger.Error("Failed to look up existing source rows", map[string]any{
			"source": string(source),
			"count":  len(sourceRowIDs),
			"error":  result.Error.Error(),
		})
		return nil, r.errorClassifier.ToDomainError(result.Error, "find existing source rows")
	}

	return existing, nil
}

// CreateMany inserts every row in one statement. On any failure nothing is inserted.
func (r *TransactionRepository) CreateMany(ctx context.Context, transactions []*entity.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	models := make([]model.Transaction, len(transactions))
	for i, txn := range transactions {
		m, err := r.entityToModel(txn)
		if err != nil {
			return &errs.ValidationError{Issues: []errs.FieldIssue{{Index: i, Field: "sourceRaw", Reason: err.Error()}}}
		}
		models[i] = m
	}

	result := r.db.WithContext(ctx).Create(&models)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Debug("Chunk contains an already imported row", map[string]any{
				"rows": len(models),
			})
		} else {
			r.logger.Error("Failed to insert transaction chunk", map[string]any{
				"rows":  len(models),
				"error": result.Error.Error(),
			})
		}
		return r.errorClassifier.ToDomainError(result.Error, "insert transactions")
	}

	for i := range models {
		transactions[i].ID = models[i].ID
	}

	r.logger.Debug("Transaction chunk inserted", map[string]any{
		"rows": len(models),
	})
	return nil
}

// Create inserts a single row
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	m, err := r.entityToModel(transaction)
	if err != nil {
		return &errs.ValidationError{Issues: []errs.FieldIssue{{Field: "sourceRaw", Reason: err.Error()}}}
	}

	result := r.db.WithContext(ctx).Create(&m)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			return r.handleDuplicateTransactionError(transaction)
		}

		r.logger.Error("Failed to create transaction", map[string]any{
			"source":        string(transaction.Source),
			"source_row_id": transaction.SourceRowID,
			"error":         result.Error.Error(),
		})
		return r.errorClassifier.ToDomainError(result.Error, "insert transaction")
	}

	transaction.ID = m.ID
	return nil
}

// handleDuplicateTransactionError handles duplicate transaction errors specifically
func (r *TransactionRepository) handleDuplicateTransactionError(transaction *entity.Transaction) error {
	r.logger.Debug("Duplicate transaction detected", map[string]any{
		"source":        string(transaction.Source),
		"source_row_id": transaction.SourceRowID,
	})
	return errs.NewDuplicateTransactionError(string(transaction.Source), transaction.SourceRowID)
}

// FindGroupMembers returns every row in [From, To) sharing amount, direction and normalized counterparty
func (r *TransactionRepository) FindGroupMembers(ctx context.Context, query persistence.GroupQuery) ([]*entity.Transaction, error) {
	var models []model.Transaction
	result := r.db.WithContext(ctx).
		Where("occurred_at >= ? AND occurred_at < ?", query.From.UTC(), query.To.UTC()).
		Where("amount = ? AND direction = ?", query.Amount, string(query.Direction)).
		Where("counterparty = ?", entity.NormalizeCounterparty(query.Counterparty)).
		Order("occurred_at, id").
		Find(&models)

	if result.Error != nil {
		r.logger.Error("Failed to load dedup group", map[string]any{
			"counterparty": query.Counterparty,
			"error":        result.Error.Error(),
		})
		return nil, r.errorClassifier.ToDomainError(result.Error, "find group members")
	}

	return r.toEntities(models), nil
}

// MarkPrimary clears duplicate state on id and stamps groupID
func (r *TransactionRepository) MarkPrimary(ctx context.Context, id uint64, groupID string) error {
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_duplicate":           false,
			"duplicate_group_id":     groupID,
			"primary_transaction_id": nil,
			"duplicate_reason":       nil,
		})

	if result.Error != nil {
		return r.errorClassifier.ToDomainError(result.Error, "mark primary")
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}
	return nil
}

// MarkDuplicates marks ids as secondaries of primaryID
func (r *TransactionRepository) MarkDuplicates(ctx context.Context, ids []uint64, primaryID uint64, groupID, reason string) error {
	if len(ids) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"is_duplicate":           true,
			"duplicate_group_id":     groupID,
			"primary_transaction_id": primaryID,
			"duplicate_reason":       reason,
		})

	if result.Error != nil {
		return r.errorClassifier.ToDomainError(result.Error, "mark duplicates")
	}
	return nil
}

// ClearDuplicateGroup resets every row of groupID
func (r *TransactionRepository) ClearDuplicateGroup(ctx context.Context, groupID string) error {
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("duplicate_group_id = ?", groupID).
		Updates(map[string]interface{}{
			"is_duplicate":           false,
			"duplicate_group_id":     nil,
			"primary_transaction_id": nil,
			"duplicate_reason":       nil,
		})

	if result.Error != nil {
		return r.errorClassifier.ToDomainError(result.Error, "clear duplicate group")
	}

	r.logger.Debug("Duplicate group cleared", map[string]any{
		"group_id": groupID,
		"rows":     result.RowsAffected,
	})
	return nil
}

// CountCandidates counts groupable rows inside filter
func (r *TransactionRepository) CountCandidates(ctx context.Context, filter persistence.TransactionFilter) (int64, error) {
	var count int64
	result := r.applyFilter(r.db.WithContext(ctx).Model(&model.Transaction{}), filter).
		Where("counterparty <> ''").
		Count(&count)

	if result.Error != nil {
		return 0, r.errorClassifier.ToDomainError(result.Error, "count candidates")
	}
	return count, nil
}

// FindCandidates loads the grouping projection of groupable rows inside filter
func (r *TransactionRepository) FindCandidates(ctx context.Context, filter persistence.TransactionFilter) ([]entity.DuplicateCandidate, error) {
	var models []model.Transaction
	result := r.applyFilter(r.db.WithContext(ctx).Model(&model.Transaction{}), filter).
		Select("id", "occurred_at", "amount", "direction", "counterparty", "source").
		Where("counterparty <> ''").
		Order("occurred_at, id").
		Find(&models)

	if result.Error != nil {
		return nil, r.errorClassifier.ToDomainError(result.Error, "find candidates")
	}

	candidates := make([]entity.DuplicateCandidate, len(models))
	for i := range models {
		candidates[i] = entity.DuplicateCandidate{
			ID:           models[i].ID,
			OccurredAt:   models[i].OccurredAt.UTC(),
			Amount:       models[i].Amount,
			Direction:    entity.Direction(models[i].Direction),
			Counterparty: models[i].Counterparty,
			Source:       entity.Source(models[i].Source),
		}
	}
	return candidates, nil
}

// List returns rows inside filter ordered by (occurred_at, id)
func (r *TransactionRepository) List(ctx context.Context, filter persistence.TransactionFilter) ([]*entity.Transaction, error) {
	query := r.applyFilter(r.db.WithContext(ctx).Model(&model.Transaction{}), filter).Order("occurred_at, id")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var models []model.Transaction
	if err := query.Find(&models).Error; err != nil {
		return nil, r.errorClassifier.ToDomainError(err, "list transactions")
	}
	return r.toEntities(models), nil
}

// GroupIDsForBatch returns the distinct duplicate groups a batch's rows belong to
func (r *TransactionRepository) GroupIDsForBatch(ctx context.Context, batchID string) ([]string, error) {
	var groupIDs []string
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("import_batch_id = ? AND duplicate_group_id IS NOT NULL", batchID).
		Distinct().
		Pluck("duplicate_group_id", &groupIDs)

	if result.Error != nil {
		return nil, r.errorClassifier.ToDomainError(result.Error, "find batch groups")
	}
	return groupIDs, nil
}

// DeleteByBatch removes every row of a batch
func (r *TransactionRepository) DeleteByBatch(ctx context.Context, batchID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("import_batch_id = ?", batchID).
		Delete(&model.Transaction{})

	if result.Error != nil {
		r.logger.Error("Failed to delete batch transactions", map[string]any{
			"batch_id": batchID,
			"error":    result.Error.Error(),
		})
		return 0, r.errorClassifier.ToDomainError(result.Error, "delete batch transactions")
	}
	return result.RowsAffected, nil
}

func (r *TransactionRepository) applyFilter(query *gorm.DB, filter persistence.TransactionFilter) *gorm.DB {
	if filter.From != nil {
		query = query.Where("occurred_at >= ?", filter.From.UTC())
	}
	if filter.To != nil {
		query = query.Where("occurred_at < ?", filter.To.UTC())
	}
	if filter.Source != "" {
		query = query.Where("source = ?", string(filter.Source))
	}
	if filter.ImportBatchID != "" {
		query = query.Where("import_batch_id = ?", filter.ImportBatchID)
	}
	if !filter.IncludeDuplicates {
		query = query.Where("is_duplicate = ?", false)
	}
	return query
}

func (r *TransactionRepository) toEntities(models []model.Transaction) []*entity.Transaction {
	out := make([]*entity.Transaction, len(models))
	for i := range models {
		out[i] = r.modelToEntity(&models[i])
	}
	return out
}
