package handler

import (
	"net/http"
	"time"

	coreport "github.com/amirhossein-jamali/bill-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/bill-processor/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// BatchHandler handles import batch requests
type BatchHandler struct {
	ingest usecase.IngestUseCase
	logger coreport.Logger
	loc    *time.Location
}

// NewBatchHandler creates a new batch handler instance
func NewBatchHandler(ingest usecase.IngestUseCase, logger coreport.Logger, loc *time.Location) *BatchHandler {
	return &BatchHandler{ingest: ingest, logger: logger, loc: loc}
}

// List handles GET /batches
func (h *BatchHandler) List(c *gin.Context) {
	limit, offset, err := parsePage(c)
	if err != nil {
		respondError(c, h.logger, "Invalid batch listing request", err)
		return
	}

	batches, err := h.ingest.ListBatches(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, h.logger, "Failed to list batches", err)
		return
	}

	resp := dto.BatchListResponse{Batches: make([]dto.BatchResponse, len(batches)), Count: len(batches)}
	for i, b := range batches {
		resp.Batches[i] = dto.NewBatchResponse(b, h.loc)
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /batches/:id
func (h *BatchHandler) Get(c *gin.Context) {
	batch, err := h.ingest.GetBatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "Failed to get batch", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBatchResponse(batch, h.loc))
}

// Delete handles DELETE /batches/:id
func (h *BatchHandler) Delete(c *gin.Context) {
	deletion, err := h.ingest.DeleteBatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "Failed to delete batch", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBatchDeletionResponse(deletion))
}
