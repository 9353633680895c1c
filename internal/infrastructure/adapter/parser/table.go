package parser

import (
	"strings"

	"github.com/amirhossein-jamali/bill-processor/internal/domain/entity"
)

// rowFunc converts one data row; a returned error becomes a ParseWarning for that row
type rowFunc func(idx HeaderIndex, cells []string) (entity.TransactionDraft, error)

// parseTable walks every row below headerRow. A bad row is recorded and skipped,
// never aborting the rest of the file.
func parseTable(result *entity.ParseResult, rows [][]string, headerRow int, resolver *ColumnResolver, convert rowFunc) {
	idx := resolver.Index(rows[headerRow])

	for i := headerRow + 1; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}
		if isFooterRow(row) {
			break
		}

		result.DataRows++
		draft, err := convert(idx, row)
		if err != nil {
			// Spreadsheet and CSV rows are reported 1-based
			result.AddWarning(i+1, err.Error())
			continue
		}
		draft.SourceRaw = entity.NewSourceRaw(idx.Headers(), row)
		result.Drafts = append(result.Drafts, draft)
	}
}

// isFooterRow detects the separator or totals line that closes an export's data section
func isFooterRow(row []string) bool {
	first := cleanCell(row[0])
	return strings.HasPrefix(first, "---") ||
		strings.HasPrefix(first, "合计") ||
		strings.HasPrefix(first, "总计")
}
