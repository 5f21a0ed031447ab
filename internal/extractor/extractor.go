// Package extractor aggregates per-number SMS counts or call minutes from
// pipe-delimited usage exports, where every row stands on its own.
package extractor

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"fjacquet/phonebill/internal/logging"
	"fjacquet/phonebill/internal/models"
	"fjacquet/phonebill/internal/parsererror"
	"fjacquet/phonebill/internal/report"
	"fjacquet/phonebill/internal/textutils"
)

const (
	minFields    = 4
	colNumber    = 3
	colMinutes   = 6
	parserName   = "extract"
	minutesField = "minutes"
	defaultSep   = '|'
)

// Extractor scans one export file and tallies numbers found in it.
type Extractor struct {
	delimiter rune
	logger    logging.Logger
}

// New creates an Extractor. A zero delimiter means '|'.
func New(delimiter rune, logger logging.Logger) *Extractor {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if delimiter == 0 {
		delimiter = defaultSep
	}
	return &Extractor{delimiter: delimiter, logger: logger}
}

// Extract opens path and tallies it in the given mode.
func (e *Extractor) Extract(path string, mode models.ExtractMode) ([]models.Tally, error) {
	file, err := os.Open(path) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return nil, &parsererror.InvalidInputError{Path: path, Reason: err.Error()}
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			e.logger.WithError(cerr).Warn("Failed to close file")
		}
	}()

	e.logger.Info("Starting parse of file",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldMode, Value: string(mode)})

	tallies, err := e.ExtractFrom(file, mode)
	if err != nil {
		return nil, fmt.Errorf("extracting %s: %w", path, err)
	}
	return tallies, nil
}

// ExtractFrom tallies rows read from r. Rows with fewer than four fields or
// without a dotted phone number in the fourth field are skipped.
func (e *Extractor) ExtractFrom(r io.Reader, mode models.ExtractMode) ([]models.Tally, error) {
	reader := textutils.NewRowReader(r, e.delimiter, textutils.SpaceQuote)

	counts := make(map[string]int)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		if len(row) < minFields {
			continue
		}

		number, ok := textutils.ExtractStrictPhone(row[colNumber])
		if !ok {
			continue
		}

		switch mode {
		case models.ModeSMS:
			counts[number]++
		case models.ModePhone:
			minutes, err := minutesOf(row, reader.Line())
			if err != nil {
				return nil, err
			}
			counts[number] += minutes
		default:
			return nil, fmt.Errorf("unknown extract mode %q", mode)
		}
	}

	e.logger.Debug("Extraction finished",
		logging.Field{Key: logging.FieldMode, Value: string(mode)},
		logging.Field{Key: logging.FieldCount, Value: len(counts)})
	return models.SortTallies(counts), nil
}

func minutesOf(row []string, line int) (int, error) {
	if len(row) <= colMinutes {
		return 0, &parsererror.ParseError{
			Parser: parserName,
			Field:  minutesField,
			Line:   line,
			Err:    fmt.Errorf("row has %d fields", len(row)),
		}
	}
	raw := row[colMinutes]
	minutes, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &parsererror.ParseError{
			Parser: parserName,
			Field:  minutesField,
			Value:  raw,
			Line:   line,
			Err:    err,
		}
	}
	return minutes, nil
}

// Print extracts path and writes the tally table to w.
func (e *Extractor) Print(w io.Writer, path string, mode models.ExtractMode) error {
	tallies, err := e.Extract(path, mode)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, report.RenderExtract(mode, tallies))
	return err
}
