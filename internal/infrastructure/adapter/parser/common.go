package parser

import (
	"bytes"
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/simplifiedchinese"

	"github.com/amirhossein-jamali/bill-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bill-processor/internal/domain/error"
)

// maxHeaderSearchRows bounds the scan for the real header below an export's preamble
const maxHeaderSearchRows = 64

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Timestamp layouts seen across exports, tried in order
var timeLayouts = []string{
	"2006-1-2 15:04:05",
	"2006/1/2 15:04:05",
	"2006-1-2 15:04",
	"2006/1/2 15:04",
	"2006-1-2T15:04:05",
	"2006年1月2日 15:04:05",
	"2006年1月2日 15:04",
	"20060102 15:04:05",
	"2006-1-2",
	"2006/1/2",
	"2006.1.2",
	"2006年1月2日",
	"20060102",
}

// decodeText returns raw as UTF-8, converting GBK/GB18030 exports
func decodeText(raw []byte) (string, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	decoded, err := simplifiedchinese.GB18030.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: unknown text encoding", errs.ErrUnreadableFile)
	}
	return string(decoded), nil
}

// readCSV reads every record, tolerating ragged rows and stray quotes in preambles
func readCSV(text string) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrUnreadableFile, err)
	}
	return records, nil
}

// readSheetRows returns the rows of the first worksheet
func readSheetRows(raw []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrUnreadableFile, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", errs.ErrUnreadableFile)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrUnreadableFile, err)
	}
	return rows, nil
}

// findHeaderRow returns the first row, within the search window, that resolves every
// required column. It returns -1 when no such row exists.
func findHeaderRow(rows [][]string, resolver *ColumnResolver, required ...Column) int {
	limit := min(len(rows), maxHeaderSearchRows)
	for i := 0; i < limit; i++ {
		idx := resolver.Index(rows[i])
		found := true
		for _, column := range required {
			if !idx.Has(column) {
				found = false
				break
			}
		}
		if found {
			return i
		}
	}
	return -1
}

// containsText reports whether any of the first rows holds a cell containing marker
func containsText(rows [][]string, marker string) bool {
	limit := min(len(rows), maxHeaderSearchRows)
	for i := 0; i < limit; i++ {
		for _, cell := range rows[i] {
			if strings.Contains(cell, marker) {
				return true
			}
		}
	}
	return false
}

// cleanCell strips export artifacts: padding tabs, ="..." wrappers and quotes
func cleanCell(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") {
		s = s[2 : len(s)-1]
	}
	return strings.TrimSpace(strings.Trim(s, `"'`))
}

func isEmptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// parseTime reads an offset-less timestamp as wall-clock time in loc.
// Spreadsheet date serials are accepted as well.
func parseTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errs.ErrInvalidDate
	}

	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 1 && serial < 200000 {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", errs.ErrInvalidDate, s)
}

// parseDirection maps a platform's income/expense label
func parseDirection(label string) (entity.Direction, bool) {
	switch strings.TrimSpace(label) {
	case "收入", "收", "入账", "in", "income":
		return entity.DirectionIn, true
	case "支出", "支", "出账", "out", "expense":
		return entity.DirectionOut, true
	default:
		return "", false
	}
}

// optionalAmount parses a cell that may legitimately be blank
func optionalAmount(cell string) (*decimal.Decimal, error) {
	if blankValue(cell) {
		return nil, nil
	}
	d, err := entity.ParseSignedAmount(cell)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// blankValue treats placeholders exports use for "no value" as empty
func blankValue(cell string) bool {
	switch strings.TrimSpace(cell) {
	case "", "/", "-", "--", "—":
		return true
	default:
		return false
	}
}

func valueOrEmpty(cell string) string {
	if blankValue(cell) {
		return ""
	}
	return strings.TrimSpace(cell)
}

// rowFingerprinter derives deterministic row ids for exports without a platform id.
// Identical rows within one file get successive occurrence suffixes so they stay distinct
// and re-importing the same file yields the same ids.
type rowFingerprinter struct {
	source entity.Source
	seen   map[string]int
}

func newRowFingerprinter(source entity.Source) *rowFingerprinter {
	return &rowFingerprinter{source: source, seen: make(map[string]int)}
}

func (f *rowFingerprinter) ID(parts ...string) string {
	payload := string(f.source) + "\x1f" + strings.Join(parts, "\x1f")
	f.seen[payload]++
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s\x1f%d", payload, f.seen[payload])))
	return hex.EncodeToString(sum[:])
}

// truncate caps a free-text field at max runes
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
