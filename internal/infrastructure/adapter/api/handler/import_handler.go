package handler

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/amirhossein-jamali/bill-processor/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/bill-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bill-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/bill-processor/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ImportHandler handles file upload, preview and commit requests
type ImportHandler struct {
	ingest       usecase.IngestUseCase
	logger       coreport.Logger
	maxFileBytes int64
}

// NewImportHandler creates a new import handler instance
func NewImportHandler(ingest usecase.IngestUseCase, logger coreport.Logger, maxFileBytes int64) *ImportHandler {
	return &ImportHandler{
		ingest:       ingest,
		logger:       logger,
		maxFileBytes: maxFileBytes,
	}
}

// Preview handles POST /imports/preview
func (h *ImportHandler) Preview(c *gin.Context) {
	req, err := h.readUpload(c)
	if err != nil {
		respondError(c, h.logger, "Invalid upload", err)
		return
	}

	result, err := h.ingest.Parse(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, "Failed to parse file", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewParseResponse(result))
}

// Import handles POST /imports
func (h *ImportHandler) Import(c *gin.Context) {
	req, err := h.readUpload(c)
	if err != nil {
		respondError(c, h.logger, "Invalid upload", err)
		return
	}

	result, err := h.ingest.Import(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, "Failed to import file", err)
		return
	}

	status := http.StatusCreated
	if result.BatchID == "" {
		status = http.StatusOK
	}
	c.JSON(status, dto.NewImportResponse(result))
}

// Commit handles POST /imports/commit
func (h *ImportHandler) Commit(c *gin.Context) {
	var req dto.CommitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, "Invalid commit request format",
			fmt.Errorf("%w: %s", domainerr.ErrInvalidRequest, err.Error()))
		return
	}

	drafts, err := dto.ToEntity(req.Drafts)
	if err != nil {
		respondError(c, h.logger, "Undecodable drafts in commit request", err)
		return
	}

	result, err := h.ingest.Commit(c.Request.Context(), usecase.CommitRequest{
		FileName:     req.FileName,
		FileSize:     req.FileSize,
		Source:       entity.NormalizeSource(req.Source),
		SourceType:   entity.SourceType(strings.ToLower(strings.TrimSpace(req.SourceType))),
		Drafts:       drafts,
		WarningCount: req.WarningCount,
	})
	if err != nil {
		respondError(c, h.logger, "Failed to commit drafts", err)
		return
	}

	status := http.StatusCreated
	if result.BatchID == "" {
		status = http.StatusOK
	}
	c.JSON(status, dto.NewCommitResponse(result))
}

// readUpload reads the multipart "file" field plus the optional source and format hints
func (h *ImportHandler) readUpload(c *gin.Context) (usecase.ParseRequest, error) {
	header, err := c.FormFile("file")
	if err != nil {
		return usecase.ParseRequest{}, fmt.Errorf("%w: multipart field \"file\" is required", domainerr.ErrInvalidRequest)
	}
	if h.maxFileBytes > 0 && header.Size > h.maxFileBytes {
		return usecase.ParseRequest{}, domainerr.NewFileTooLargeError(h.maxFileBytes, header.Size)
	}

	f, err := header.Open()
	if err != nil {
		return usecase.ParseRequest{}, fmt.Errorf("%w: cannot open upload: %s", domainerr.ErrInvalidRequest, err.Error())
	}
	defer f.Close()

	// One byte past the ceiling is enough for the intake to reject it
	reader := io.Reader(f)
	if h.maxFileBytes > 0 {
		reader = io.LimitReader(f, h.maxFileBytes+1)
	}
	raw, err := io.ReadAll(reader)
	if err != nil {
		return usecase.ParseRequest{}, fmt.Errorf("%w: cannot read upload: %s", domainerr.ErrInvalidRequest, err.Error())
	}

	return usecase.ParseRequest{
		FileName: header.Filename,
		Raw:      raw,
		Source:   entity.NormalizeSource(c.PostForm("source")),
		Format:   entity.SourceType(strings.ToLower(strings.TrimSpace(c.PostForm("format")))),
	}, nil
}
