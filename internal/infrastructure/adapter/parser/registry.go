package parser

import (
	"bytes"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/bill-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bill-processor/internal/domain/error"
	port "github.com/amirhossein-jamali/bill-processor/internal/domain/port/parser"
)

var (
	zipMagic = []byte("PK\x03\x04")
	pdfMagic = []byte("%PDF")
)

// Registry resolves the parser for a declared or sniffed source
type Registry struct {
	parsers  []port.StatementParser
	bySource map[entity.Source]port.StatementParser
}

// NewRegistry registers parsers in detection order
func NewRegistry(parsers ...port.StatementParser) *Registry {
	r := &Registry{
		parsers:  parsers,
		bySource: make(map[entity.Source]port.StatementParser, len(parsers)),
	}
	for _, p := range parsers {
		r.bySource[p.Source()] = p
	}
	return r
}

// NewDefaultRegistry registers every supported source, reading timestamps in loc
func NewDefaultRegistry(loc *time.Location) *Registry {
	return NewRegistry(
		NewAlipayCSVParser(loc),
		NewWechatXLSXParser(loc),
		NewICBCXLSXParser(loc),
		NewCMBPDFParser(loc),
	)
}

var _ port.Registry = (*Registry)(nil)

// SniffFormat classifies raw by its magic bytes; anything that is neither
// a zip container nor a PDF is treated as delimited text
func SniffFormat(raw []byte) entity.SourceType {
	switch {
	case bytes.HasPrefix(raw, zipMagic):
		return entity.SourceTypeXLSX
	case bytes.HasPrefix(raw, pdfMagic):
		return entity.SourceTypePDF
	default:
		return entity.SourceTypeCSV
	}
}

// Resolve returns the parser for source and format; empty hints are sniffed from raw
func (r *Registry) Resolve(raw []byte, source entity.Source, format entity.SourceType) (port.StatementParser, error) {
	sniffed := SniffFormat(raw)
	if format != "" && format != sniffed {
		return nil, fmt.Errorf("%w: declared %s but file content is %s", errs.ErrUnsupportedFormat, format, sniffed)
	}

	if source != "" {
		p, ok := r.bySource[entity.NormalizeSource(string(source))]
		if !ok {
			return nil, fmt.Errorf("%w: %q", errs.ErrUnsupportedSource, source)
		}
		if p.Format() != sniffed {
			return nil, fmt.Errorf("%w: %s exports are %s, file content is %s", errs.ErrUnsupportedFormat, p.Source(), p.Format(), sniffed)
		}
		return p, nil
	}

	for _, p := range r.parsers {
		if p.Format() == sniffed && p.Detect(raw) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: could not detect the source of a %s file", errs.ErrUnsupportedSource, sniffed)
}
