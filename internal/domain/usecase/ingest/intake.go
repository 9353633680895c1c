package ingest

import (
	"fmt"

	"github.com/amirhossein-jamali/bill-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bill-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bill-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/bill-processor/internal/domain/port/parser"
	"github.com/amirhossein-jamali/bill-processor/internal/domain/port/usecase"
)

// Default boundary ceilings
const (
	DefaultMaxFileBytes int64 = 10 << 20
	DefaultMaxRows            = 5000
)

// Limits bounds the work one import can cause
type Limits struct {
	MaxFileBytes int64
	MaxRows      int
	ChunkSize    int
}

func (l Limits) withDefaults() Limits {
	if l.MaxFileBytes <= 0 {
		l.MaxFileBytes = DefaultMaxFileBytes
	}
	if l.MaxRows <= 0 {
		l.MaxRows = DefaultMaxRows
	}
	if l.ChunkSize <= 0 {
		l.ChunkSize = DefaultChunkSize
	}
	return l
}

// Intake owns the boundary of a parse call: the byte ceiling on input and the
// row ceiling on output. Parsers themselves never enforce either.
type Intake struct {
	registry parser.Registry
	limits   Limits
	logger   coreport.Logger
}

// NewIntake creates a new Intake
func NewIntake(registry parser.Registry, limits Limits, logger coreport.Logger) *Intake {
	return &Intake{
		registry: registry,
		limits:   limits.withDefaults(),
		logger:   logger,
	}
}

// Parse resolves the parser for req and converts the file into drafts
func (in *Intake) Parse(req usecase.ParseRequest) (*entity.ParseResult, error) {
	size := int64(len(req.Raw))
	if size == 0 {
		return nil, fmt.Errorf("%w: file is empty", errs.ErrUnreadableFile)
	}
	if size > in.limits.MaxFileBytes {
		return nil, errs.NewFileTooLargeError(in.limits.MaxFileBytes, size)
	}

	p, err := in.registry.Resolve(req.Raw, req.Source, req.Format)
	if err != nil {
		return nil, err
	}

	result, err := p.Parse(req.Raw)
	if err != nil {
		in.logger.Warn("Failed to parse statement", map[string]any{
			"file_name": req.FileName,
			"source":    string(p.Source()),
			"error":     err.Error(),
		})
		return nil, err
	}

	if len(result.Drafts) > in.limits.MaxRows {
		return nil, errs.NewTooManyRowsError(in.limits.MaxRows, len(result.Drafts))
	}

	in.logger.Info("Statement parsed", map[string]any{
		"file_name": req.FileName,
		"source":    string(result.Source),
		"format":    string(result.SourceType),
		"drafts":    len(result.Drafts),
		"warnings":  len(result.Warnings),
		"data_rows": result.DataRows,
	})

	return result, nil
}
