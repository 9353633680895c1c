package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	domainerr "github.com/amirhossein-jamali/bill-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bill-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/bill-processor/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// DedupHandler handles standalone dedup runs
type DedupHandler struct {
	dedup  usecase.DedupUseCase
	logger coreport.Logger
	loc    *time.Location
}

// NewDedupHandler creates a new dedup handler instance
func NewDedupHandler(dedup usecase.DedupUseCase, logger coreport.Logger, loc *time.Location) *DedupHandler {
	return &DedupHandler{dedup: dedup, logger: logger, loc: loc}
}

// Run handles POST /dedup. An empty body runs over every persisted row.
func (h *DedupHandler) Run(c *gin.Context) {
	var req dto.DedupRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(c, h.logger, "Invalid dedup request format",
			fmt.Errorf("%w: %s", domainerr.ErrInvalidRequest, err.Error()))
		return
	}

	var start, end string
	if req.StartDate != nil {
		start = *req.StartDate
	}
	if req.EndDate != nil {
		end = *req.EndDate
	}
	from, to, err := parseDateRange(start, end, h.loc)
	if err != nil {
		respondError(c, h.logger, "Invalid dedup range", err)
		return
	}

	result, err := h.dedup.Run(c.Request.Context(), usecase.DedupRequest{StartDate: from, EndDate: to})
	if err != nil {
		respondError(c, h.logger, "Dedup run failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.DedupResponse{
		CandidateCount:  result.CandidateCount,
		ProcessedGroups: result.ProcessedGroups,
	})
}
