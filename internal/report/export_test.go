package report

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/phonebill/internal/logging"
	"fjacquet/phonebill/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleResults() []*models.Result {
	first := models.NewResult("555-1000")
	first.AddMinutes("555-2000", "2023-01-01", 5)
	first.AddMinutes("555-3000", "2023-01-02", 9)
	first.AddSMS("555-444-1234")

	second := models.NewResult("555-1001")
	second.AddSMS("555-444-9999")
	return []*models.Result{first, second}
}

func TestSummaryRows(t *testing.T) {
	rows := SummaryRows(sampleResults())

	assert.Equal(t, []SummaryRow{
		{Phone: "555-1000", Kind: KindMinutes, Number: "555-3000", Value: 9},
		{Phone: "555-1000", Kind: KindMinutes, Number: "555-2000", Value: 5},
		{Phone: "555-1000", Kind: KindSMS, Number: "555-444-1234", Value: 1},
		{Phone: "555-1001", Kind: KindSMS, Number: "555-444-9999", Value: 1},
	}, rows)
}

func TestCSVExporter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.summary.csv")
	exporter := NewCSVExporter(path, logging.NewMockLogger())

	for _, r := range sampleResults() {
		require.NoError(t, exporter.Flush(r))
	}
	require.NoError(t, exporter.Close())

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	var rows []SummaryRow
	require.NoError(t, gocsv.UnmarshalFile(file, &rows))
	assert.Equal(t, SummaryRows(sampleResults()), rows)
}

func TestCSVExporter_NoResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.summary.csv")
	exporter := NewCSVExporter(path, nil)

	require.NoError(t, exporter.Close())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestXLSXExporter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.xlsx")
	exporter := NewXLSXExporter(path, logging.NewMockLogger())

	for _, r := range sampleResults() {
		require.NoError(t, exporter.Flush(r))
	}
	require.NoError(t, exporter.Close())

	book, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer book.Close()

	assert.Equal(t, []string{SheetMinutes, SheetSMS}, book.GetSheetList())

	minutes, err := book.GetRows(SheetMinutes)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Phone", "Number", "Value"},
		{"555-1000", "555-3000", "9"},
		{"555-1000", "555-2000", "5"},
	}, minutes)

	sms, err := book.GetRows(SheetSMS)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Phone", "Number", "Value"},
		{"555-1000", "555-444-1234", "1"},
		{"555-1001", "555-444-9999", "1"},
	}, sms)
}

func TestXLSXExporter_NoResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, NewXLSXExporter(path, nil).Close())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
