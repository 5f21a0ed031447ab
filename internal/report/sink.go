package report

import (
	"errors"
	"fmt"
	"os"

	"fjacquet/phonebill/internal/logging"
	"fjacquet/phonebill/internal/models"
)

// Sink receives finished results. A result handed to Flush is final.
type Sink interface {
	Flush(result *models.Result) error
	Close() error
}

// FileMode controls how a LogSink opens its file the first time.
type FileMode int

const (
	// ModeAppend appends every flush to the file.
	ModeAppend FileMode = iota
	// ModeTruncate truncates on the first write of the run, then appends.
	ModeTruncate
)

// LogSink writes rendered results to a single text file.
type LogSink struct {
	path    string
	mode    FileMode
	started bool
	logger  logging.Logger
}

// NewLogSink creates a LogSink for path.
func NewLogSink(path string, mode FileMode, logger logging.Logger) *LogSink {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &LogSink{path: path, mode: mode, logger: logger}
}

// Path returns the file the sink writes to.
func (s *LogSink) Path() string {
	return s.path
}

// Begin truncates the file up front in ModeTruncate, so a re-run replaces
// the previous content even when no result is flushed.
func (s *LogSink) Begin() error {
	if s.mode != ModeTruncate || s.started {
		return nil
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644) // #nosec G302 G304 -- report files are meant to be shared
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", s.path, err)
	}
	s.started = true
	return f.Close()
}

// Flush appends the rendered result to the file.
func (s *LogSink) Flush(result *models.Result) error {
	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	if s.mode == ModeTruncate && !s.started {
		flags = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	}

	s.logger.Info("Writing output",
		logging.Field{Key: logging.FieldOutputFile, Value: s.path},
		logging.Field{Key: logging.FieldPhone, Value: result.Phone})
	if result.IsEmpty() {
		s.logger.Debug("No calls or messages for phone",
			logging.Field{Key: logging.FieldPhone, Value: result.Phone})
	}

	f, err := os.OpenFile(s.path, flags, 0644) // #nosec G302 G304 -- report files are meant to be shared
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	s.started = true

	if _, err := f.WriteString(RenderResult(result)); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return f.Close()
}

// Close is a no-op: every flush closes its file.
func (s *LogSink) Close() error {
	return nil
}

// MemorySink keeps flushed results in memory, in flush order.
type MemorySink struct {
	Results []*models.Result
	Closed  bool
}

// Flush records result.
func (m *MemorySink) Flush(result *models.Result) error {
	m.Results = append(m.Results, result)
	return nil
}

// Close marks the sink closed.
func (m *MemorySink) Close() error {
	m.Closed = true
	return nil
}

// MultiSink fans every flush out to all of its sinks.
type MultiSink []Sink

// Flush forwards result to every sink and joins their errors.
func (m MultiSink) Flush(result *models.Result) error {
	var errs []error
	for _, s := range m {
		if err := s.Flush(result); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close closes every sink and joins their errors.
func (m MultiSink) Close() error {
	var errs []error
	for _, s := range m {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
