package billparser

import (
	"path/filepath"

	"fjacquet/phonebill/internal/fileutils"
	"fjacquet/phonebill/internal/logging"
	"fjacquet/phonebill/internal/report"
)

// Output file extensions.
const (
	LogExt        = ".log"
	SummaryCSVExt = ".summary.csv"
	WorkbookExt   = ".xlsx"
	inputExt      = ".csv"
)

// Options controls where and in which formats results are written.
type Options struct {
	OutputDir  string
	ExportCSV  bool
	ExportXLSX bool
}

// Summary reports what a directory run did.
type Summary struct {
	Files   int
	Failed  int
	Results int
}

// BuildSink returns the log sink for logPath together with the sink that
// fans out to it and to the enabled exporters. Export files sit next to the
// log and share its base name.
func BuildSink(logPath string, mode report.FileMode, opts Options, logger logging.Logger) (*report.LogSink, report.MultiSink) {
	logSink := report.NewLogSink(logPath, mode, logger)
	sinks := report.MultiSink{logSink}

	dir := filepath.Dir(logPath)
	if opts.ExportCSV {
		sinks = append(sinks, report.NewCSVExporter(fileutils.OutputPathFor(dir, logPath, SummaryCSVExt), logger))
	}
	if opts.ExportXLSX {
		sinks = append(sinks, report.NewXLSXExporter(fileutils.OutputPathFor(dir, logPath, WorkbookExt), logger))
	}
	return logSink, sinks
}

// DirectoryParser runs a FileParser over every bill in a directory.
type DirectoryParser struct {
	files  *FileParser
	opts   Options
	logger logging.Logger
}

// NewDirectoryParser creates a DirectoryParser.
func NewDirectoryParser(files *FileParser, opts Options, logger logging.Logger) *DirectoryParser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "output"
	}
	return &DirectoryParser{files: files, opts: opts, logger: logger}
}

// ProcessDir parses every *.csv entry directly in dir, in listing order,
// writing <output_dir>/<name>.log for each. A file that fails to parse is
// logged and the remaining files are still processed. A path that is not a
// readable directory is reported and skipped without error.
func (d *DirectoryParser) ProcessDir(dir string) (Summary, error) {
	var summary Summary

	if !fileutils.DirectoryExists(dir) {
		d.logger.Warn("Not a valid directory or no permissions",
			logging.Field{Key: logging.FieldDirectory, Value: dir})
		return summary, nil
	}

	names, err := fileutils.ListFilesWithExtension(dir, inputExt)
	if err != nil {
		d.logger.WithError(err).Warn("Not a valid directory or no permissions",
			logging.Field{Key: logging.FieldDirectory, Value: dir})
		return summary, nil
	}

	if err := fileutils.EnsureDirectoryExists(d.opts.OutputDir); err != nil {
		return summary, err
	}

	for _, name := range names {
		summary.Files++
		results, err := d.processFile(dir, name)
		summary.Results += results
		if err != nil {
			summary.Failed++
			d.logger.WithError(err).Error("Failed to parse file",
				logging.Field{Key: logging.FieldFile, Value: name})
		}
	}

	d.logger.Info("Directory processed",
		logging.Field{Key: logging.FieldDirectory, Value: dir},
		logging.Field{Key: logging.FieldCount, Value: summary.Files},
		logging.Field{Key: logging.FieldFailed, Value: summary.Failed})
	return summary, nil
}

func (d *DirectoryParser) processFile(dir, name string) (int, error) {
	outPath := fileutils.OutputPathFor(d.opts.OutputDir, name, LogExt)
	d.logger.Info("Processing",
		logging.Field{Key: logging.FieldFile, Value: name},
		logging.Field{Key: logging.FieldOutputFile, Value: outPath})

	logSink, sink := BuildSink(outPath, report.ModeTruncate, d.opts, d.logger)
	if err := logSink.Begin(); err != nil {
		return 0, err
	}

	stats, err := d.files.ParseFile(filepath.Join(dir, name), sink)
	if cerr := sink.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return stats.Results, err
}
