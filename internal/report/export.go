package report

import (
	"fmt"
	"os"

	"fjacquet/phonebill/internal/logging"
	"fjacquet/phonebill/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"
)

// Summary row kinds.
const (
	KindMinutes = "minutes"
	KindSMS     = "sms"
)

// Workbook sheet names.
const (
	SheetMinutes = "Minutes"
	SheetSMS     = "SMS"
)

// SummaryRow is one destination line of a flattened result.
type SummaryRow struct {
	Phone  string `csv:"phone"`
	Kind   string `csv:"kind"`
	Number string `csv:"number"`
	Value  int    `csv:"value"`
}

// SummaryRows flattens results into rows, minutes before SMS for each phone,
// each section in report order.
func SummaryRows(results []*models.Result) []SummaryRow {
	var rows []SummaryRow
	for _, r := range results {
		for _, t := range r.MinuteTallies() {
			rows = append(rows, SummaryRow{Phone: r.Phone, Kind: KindMinutes, Number: t.Number, Value: t.Value})
		}
		for _, t := range r.SMSTallies() {
			rows = append(rows, SummaryRow{Phone: r.Phone, Kind: KindSMS, Number: t.Number, Value: t.Value})
		}
	}
	return rows
}

// CSVExporter collects results and writes them as one summary CSV on Close.
type CSVExporter struct {
	MemorySink
	path   string
	logger logging.Logger
}

// NewCSVExporter creates a CSVExporter writing to path.
func NewCSVExporter(path string, logger logging.Logger) *CSVExporter {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &CSVExporter{path: path, logger: logger}
}

// Close writes the collected results. Nothing is written when no result was
// flushed.
func (e *CSVExporter) Close() error {
	e.Closed = true
	if len(e.Results) == 0 {
		return nil
	}

	rows := SummaryRows(e.Results)
	file, err := os.Create(e.path) // #nosec G304 -- output path derived from input name
	if err != nil {
		return fmt.Errorf("failed to create summary CSV: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			e.logger.WithError(cerr).Warn("Failed to close summary CSV")
		}
	}()

	if err := gocsv.Marshal(&rows, file); err != nil {
		return fmt.Errorf("failed to write summary CSV: %w", err)
	}

	e.logger.Info("Wrote summary CSV",
		logging.Field{Key: logging.FieldOutputFile, Value: e.path},
		logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return nil
}

// XLSXExporter collects results and writes them as a workbook on Close.
type XLSXExporter struct {
	MemorySink
	path   string
	logger logging.Logger
}

// NewXLSXExporter creates an XLSXExporter writing to path.
func NewXLSXExporter(path string, logger logging.Logger) *XLSXExporter {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &XLSXExporter{path: path, logger: logger}
}

// Close writes a workbook with a Minutes and an SMS sheet. Nothing is
// written when no result was flushed.
func (e *XLSXExporter) Close() error {
	e.Closed = true
	if len(e.Results) == 0 {
		return nil
	}

	var minutes, sms [][]interface{}
	for _, row := range SummaryRows(e.Results) {
		line := []interface{}{row.Phone, row.Number, row.Value}
		if row.Kind == KindMinutes {
			minutes = append(minutes, line)
		} else {
			sms = append(sms, line)
		}
	}

	x := excelize.NewFile()
	defer func() {
		if cerr := x.Close(); cerr != nil {
			e.logger.WithError(cerr).Warn("Failed to close workbook")
		}
	}()

	var first int
	for i, sheet := range []struct {
		name string
		rows [][]interface{}
	}{
		{SheetMinutes, minutes},
		{SheetSMS, sms},
	} {
		idx, err := x.NewSheet(sheet.name)
		if err != nil {
			return fmt.Errorf("failed to add sheet %s: %w", sheet.name, err)
		}
		if i == 0 {
			first = idx
		}
		header := []interface{}{"Phone", "Number", "Value"}
		if err := writeSheetRow(x, sheet.name, 1, header); err != nil {
			return err
		}
		for r, line := range sheet.rows {
			if err := writeSheetRow(x, sheet.name, r+2, line); err != nil {
				return err
			}
		}
	}
	x.SetActiveSheet(first)
	if err := x.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	if err := x.SaveAs(e.path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	e.logger.Info("Wrote workbook",
		logging.Field{Key: logging.FieldOutputFile, Value: e.path},
		logging.Field{Key: logging.FieldCount, Value: len(e.Results)})
	return nil
}

func writeSheetRow(x *excelize.File, sheet string, row int, values []interface{}) error {
	for c, v := range values {
		cell, err := excelize.CoordinatesToCellName(c+1, row)
		if err != nil {
			return fmt.Errorf("invalid cell %d,%d: %w", c+1, row, err)
		}
		if err := x.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("failed to set %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}
