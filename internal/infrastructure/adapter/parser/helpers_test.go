package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/simplifiedchinese"
)

var shanghai = time.FixedZone("CST", 8*3600)

// xlsxBytes builds a single-sheet workbook from rows
func xlsxBytes(t *testing.T, rows [][]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		values := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &values))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func gbk(t *testing.T, s string) []byte {
	t.Helper()

	encoded, err := simplifiedchinese.GBK.NewEncoder().String(s)
	require.NoError(t, err)
	return []byte(encoded)
}
