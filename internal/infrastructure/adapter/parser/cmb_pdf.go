package parser

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"

	"github.com/amirhossein-jamali/bill-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bill-processor/internal/domain/error"
)

var (
	// date  currency  signed amount  balance  summary  [counterparty]
	cmbLineRegex = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})\s+(\S+)\s+(-?[\d,]+\.\d{2})\s+(-?[\d,]+\.\d{2})\s+(\S+)\s*(.*)$`)
	cmbDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\b`)
)

// cmbHeaderMarker is the first column of the statement's transaction table
const cmbHeaderMarker = "记账日期"

// CMBPDFParser reads the bank's PDF account statement from its extracted text lines.
// The statement has no structured counterparty column for every row, so the summary
// text is split into a transaction type and a counterparty.
type CMBPDFParser struct {
	loc      *time.Location
	splitter *SummarySplitter
	marker   string
}

// NewCMBPDFParser creates a parser reading dates in loc
func NewCMBPDFParser(loc *time.Location) *CMBPDFParser {
	return &CMBPDFParser{
		loc:      loc,
		splitter: NewSummarySplitter(bankSummaryKeywords()),
		marker:   "招商银行",
	}
}

// Source returns entity.SourceCMB
func (p *CMBPDFParser) Source() entity.Source { return entity.SourceCMB }

// Format returns entity.SourceTypePDF
func (p *CMBPDFParser) Format() entity.SourceType { return entity.SourceTypePDF }

// Detect looks for the bank name in the extracted text
func (p *CMBPDFParser) Detect(raw []byte) bool {
	text, err := extractPDFText(raw)
	if err != nil {
		return false
	}
	return strings.Contains(text, p.marker) || strings.Contains(text, "CMB")
}

// Parse extracts the statement text and converts it into drafts
func (p *CMBPDFParser) Parse(raw []byte) (*entity.ParseResult, error) {
	text, err := extractPDFText(raw)
	if err != nil {
		return nil, err
	}
	return p.ParseText(text)
}

// ParseText converts already extracted statement text into drafts
func (p *CMBPDFParser) ParseText(text string) (*entity.ParseResult, error) {
	lines := strings.Split(text, "\n")

	header := -1
	for i, line := range lines {
		if strings.Contains(line, cmbHeaderMarker) {
			header = i
			break
		}
	}
	if header < 0 {
		return nil, fmt.Errorf("%w: cmb statement table not found", errs.ErrUnreadableFile)
	}

	result := &entity.ParseResult{Source: p.Source(), SourceType: p.Format()}
	ids := newRowFingerprinter(p.Source())

	for i := header + 1; i < len(lines); i++ {
		line := strings.Join(strings.Fields(lines[i]), " ")
		// Page headers, footers and wrapped text carry no leading date
		if !cmbDateRegex.MatchString(line) {
			continue
		}

		result.DataRows++
		draft, err := p.parseLine(line, ids)
		if err != nil {
			result.AddWarning(i+1, err.Error())
			continue
		}
		result.Drafts = append(result.Drafts, draft)
	}

	return result, nil
}

func (p *CMBPDFParser) parseLine(line string, ids *rowFingerprinter) (entity.TransactionDraft, error) {
	m := cmbLineRegex.FindStringSubmatch(line)
	if m == nil {
		return entity.TransactionDraft{}, fmt.Errorf("unrecognized statement line %q", truncate(line, 80))
	}
	dateText, currency, amountText, balanceText, summary, other := m[1], m[2], m[3], m[4], m[5], strings.TrimSpace(m[6])

	occurredAt, err := parseTime(dateText, p.loc)
	if err != nil {
		return entity.TransactionDraft{}, err
	}

	signed, err := entity.ParseSignedAmount(amountText)
	if err != nil {
		return entity.TransactionDraft{}, err
	}
	if signed.IsZero() {
		return entity.TransactionDraft{}, fmt.Errorf("%w: zero amount", errs.ErrInvalidAmount)
	}
	amount, direction := entity.SplitSigned(signed)

	balance, err := entity.ParseSignedAmount(balanceText)
	if err != nil {
		return entity.TransactionDraft{}, fmt.Errorf("balance: %w", err)
	}

	// The counterparty column is often blank; the summary then names both parts
	label, counterparty := p.splitter.Split(summary)
	if other != "" {
		counterparty = other
	}

	if currency == "人民币" || currency == "RMB" {
		currency = "CNY"
	}

	draft := entity.TransactionDraft{
		OccurredAt:   occurredAt,
		Amount:       amount,
		Direction:    direction,
		Currency:     truncate(currency, entity.MaxShortFieldLength),
		Counterparty: truncate(counterparty, entity.MaxCounterpartyLength),
		Description:  truncate(label, entity.MaxDescriptionLength),
		Source:       entity.SourceCMB,
		SourceRaw: entity.NewSourceRaw(
			[]string{"记账日期", "货币", "交易金额", "联机余额", "交易摘要", "对手信息"},
			[]string{dateText, m[2], amountText, balanceText, summary, other},
		),
		Balance: &balance,
		Memo:    truncate(strings.TrimSpace(summary+" "+other), entity.MaxMemoLength),
	}
	draft.SourceRowID = ids.ID(dateText, amountText, balanceText, summary, other)

	return draft, nil
}

// extractPDFText returns the plain text of every page, one page after another
func extractPDFText(raw []byte) (text string, err error) {
	// The reader panics on some malformed object streams
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%w: malformed pdf: %v", errs.ErrUnreadableFile, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrUnreadableFile, err)
	}

	var buf bytes.Buffer
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %v", errs.ErrUnreadableFile, i, err)
		}
		buf.WriteString(pageText)
		buf.WriteString("\n")
	}
	return buf.String(), nil
}
