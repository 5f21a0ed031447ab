package billparser

import (
	"errors"
	"fmt"
	"io"
	"os"

	"fjacquet/phonebill/internal/config"
	"fjacquet/phonebill/internal/fileutils"
	"fjacquet/phonebill/internal/logging"
	"fjacquet/phonebill/internal/models"
	"fjacquet/phonebill/internal/parsererror"
	"fjacquet/phonebill/internal/report"
	"fjacquet/phonebill/internal/textutils"
)

// Stats summarizes one parsed file.
type Stats struct {
	Rows    int
	Results int
	Unknown int
	Dropped int
}

// FileParser parses one bill file at a time and hands every finished
// Result to a report.Sink.
type FileParser struct {
	known     config.KnownConstants
	delimiter rune
	logger    logging.Logger
}

// NewFileParser creates a FileParser. known is only used to silence the
// notice for recognised single-field rows.
func NewFileParser(known config.KnownConstants, delimiter rune, logger logging.Logger) *FileParser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if known == nil {
		known = config.DefaultKnownConstants()
	}
	if delimiter == 0 {
		delimiter = ','
	}
	return &FileParser{known: known, delimiter: delimiter, logger: logger}
}

// ParseFile parses the bill at path. A path that is not a readable file is
// reported and skipped without error.
func (p *FileParser) ParseFile(path string, sink report.Sink) (Stats, error) {
	if !fileutils.FileExists(path) {
		p.logger.Warn("Not a valid file or no permissions",
			logging.Field{Key: logging.FieldFile, Value: path})
		return Stats{}, nil
	}

	file, err := os.Open(path) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		p.logger.WithError(err).Warn("Not a valid file or no permissions",
			logging.Field{Key: logging.FieldFile, Value: path})
		return Stats{}, nil
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			p.logger.WithError(cerr).Warn("Failed to close file")
		}
	}()

	p.logger.Info("Starting parse of file", logging.Field{Key: logging.FieldFile, Value: path})

	stats, err := p.Parse(file, sink)
	if err != nil {
		return stats, fmt.Errorf("parsing %s: %w", path, err)
	}

	p.logger.Debug("Finished parse of file",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: stats.Results})
	return stats, nil
}

// parseState is the current-result cursor of one parse.
type parseState struct {
	current *models.Result
	sink    report.Sink
	stats   Stats
}

// flush hands the active result to the sink and forgets it.
func (s *parseState) flush() error {
	if s.current == nil {
		return nil
	}
	result := s.current
	s.current = nil
	s.stats.Results++
	return s.sink.Flush(result)
}

// start flushes the active result and opens a new one for phone.
func (s *parseState) start(phone string) error {
	if err := s.flush(); err != nil {
		return err
	}
	s.current = models.NewResult(phone)
	return nil
}

// Parse reads bill rows from r in order. At EOF the active result is
// flushed. A malformed minutes field stops the parse with a
// *parsererror.ParseError and the active result is discarded; results
// flushed before it stay flushed.
func (p *FileParser) Parse(r io.Reader, sink report.Sink) (Stats, error) {
	reader := textutils.NewRowReader(r, p.delimiter, textutils.SpaceQuote)

	state := &parseState{sink: sink}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return state.stats, fmt.Errorf("failed to read row: %w", err)
		}
		state.stats.Rows++
		line := reader.Line()

		record, err := Classify(row)
		if err != nil {
			var parseErr *parsererror.ParseError
			if errors.As(err, &parseErr) {
				parseErr.Line = line
			}
			return state.stats, err
		}

		if err := p.apply(state, record, line); err != nil {
			return state.stats, err
		}
	}

	if err := state.flush(); err != nil {
		return state.stats, err
	}
	return state.stats, nil
}

func (p *FileParser) apply(state *parseState, record Record, line int) error {
	switch record.Kind {
	case KindConstant:
		if !p.known.Contains(record.Token) {
			state.stats.Unknown++
			p.logger.Info("Unknown",
				logging.Field{Key: logging.FieldToken, Value: record.Token},
				logging.Field{Key: logging.FieldLine, Value: line})
		}

	case KindCallHeader:
		return state.start(record.Phone)

	case KindDataHeader:
		if state.current == nil || state.current.Phone != record.Phone {
			return state.start(record.Phone)
		}

	case KindCall:
		if state.current == nil {
			p.dropped(state, record, line)
			return nil
		}
		state.current.AddMinutes(record.Number, record.Date, record.Minutes)

	case KindSMS:
		if state.current == nil {
			p.dropped(state, record, line)
			return nil
		}
		state.current.AddSMS(record.Number)
	}
	return nil
}

func (p *FileParser) dropped(state *parseState, record Record, line int) {
	state.stats.Dropped++
	p.logger.Debug("Dropping detail row outside a phone section",
		logging.Field{Key: "kind", Value: record.Kind.String()},
		logging.Field{Key: logging.FieldLine, Value: line})
}
