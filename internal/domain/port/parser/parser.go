package parser

import (
	"github.com/amirhossein-jamali/bill-processor/internal/domain/entity"
)

// StatementParser converts one platform's export into drafts and warnings.
// Implementations never persist anything and never fail on a single bad row.
type StatementParser interface {
	// Source returns the platform this parser understands
	Source() entity.Source

	// Format returns the file format this parser reads
	Format() entity.SourceType

	// Detect reports whether raw looks like this parser's export
	Detect(raw []byte) bool

	// Parse converts raw bytes into drafts.
	//
	// Possible errors:
	// - ErrUnreadableFile: If no header or text could be located at all
	Parse(raw []byte) (*entity.ParseResult, error)
}

// Registry resolves the parser for a declared or sniffed source and format
type Registry interface {
	// Resolve returns the parser for source/format. Empty hints are sniffed from raw.
	//
	// Possible errors:
	// - ErrUnsupportedSource: If the source hint names no registered parser
	// - ErrUnsupportedFormat: If no parser matches the sniffed format
	Resolve(raw []byte, source entity.Source, format entity.SourceType) (StatementParser, error)
}
