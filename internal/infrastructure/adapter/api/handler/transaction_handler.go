package handler

import (
	"net/http"
	"time"

	coreport "github.com/amirhossein-jamali/bill-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/bill-processor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bill-processor/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// TransactionHandler serves persisted transactions to downstream consumers
type TransactionHandler struct {
	ingest usecase.IngestUseCase
	logger coreport.Logger
	loc    *time.Location
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(ingest usecase.IngestUseCase, logger coreport.Logger, loc *time.Location) *TransactionHandler {
	return &TransactionHandler{ingest: ingest, logger: logger, loc: loc}
}

// List handles GET /transactions?start=&end=&source=&batchId=&includeDuplicates=&limit=&offset=
func (h *TransactionHandler) List(c *gin.Context) {
	filter, err := h.parseFilter(c)
	if err != nil {
		respondError(c, h.logger, "Invalid transaction listing request", err)
		return
	}

	rows, err := h.ingest.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, "Failed to list transactions", err)
		return
	}

	resp := dto.TransactionListResponse{
		Transactions: make([]dto.TransactionResponse, len(rows)),
		Count:        len(rows),
	}
	for i, row := range rows {
		resp.Transactions[i] = dto.NewTransactionResponse(row, h.loc)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TransactionHandler) parseFilter(c *gin.Context) (persistence.TransactionFilter, error) {
	from, to, err := parseDateRange(c.Query("start"), c.Query("end"), h.loc)
	if err != nil {
		return persistence.TransactionFilter{}, err
	}
	source, err := querySource(c, "source")
	if err != nil {
		return persistence.TransactionFilter{}, err
	}
	includeDuplicates, err := queryBool(c, "includeDuplicates")
	if err != nil {
		return persistence.TransactionFilter{}, err
	}
	limit, offset, err := parsePage(c)
	if err != nil {
		return persistence.TransactionFilter{}, err
	}

	return persistence.TransactionFilter{
		From:              from,
		To:                to,
		Source:            source,
		ImportBatchID:     c.Query("batchId"),
		IncludeDuplicates: includeDuplicates,
		Limit:             limit,
		Offset:            offset,
	}, nil
}
