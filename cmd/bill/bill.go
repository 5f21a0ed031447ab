// Package bill handles the carrier bill parsing command
package bill

import (
	"time"

	"fjacquet/phonebill/cmd/root"
	"fjacquet/phonebill/internal/billparser"
	"fjacquet/phonebill/internal/config"
	"fjacquet/phonebill/internal/fileutils"
	"fjacquet/phonebill/internal/logging"
	"fjacquet/phonebill/internal/parsererror"
	"fjacquet/phonebill/internal/report"

	"github.com/spf13/cobra"
)

// Usage lines printed when the argument count is wrong.
var usageLines = []string{
	"Invalid number of arguments.",
	"Usage: phonebill bill <dir_path | file_path>",
}

// usageExitCode is -1 as seen by the shell.
const usageExitCode = 255

// now is replaced in tests.
var now = time.Now

// Cmd represents the bill command
var Cmd = &cobra.Command{
	Use:   "bill <dir_path | file_path>",
	Short: "Summarize carrier CSV bills",
	Long: `Summarize carrier CSV bill exports per phone line.

Given a directory, every *.csv file directly inside it is parsed and the report
for <name>.csv is written to <output_dir>/<name>.log, replacing any previous
run. Given a single file, the report is appended to
results_YYYY_MM_DD_HH_MM_SS.log in the current directory.

Example:
  phonebill bill bills/
  phonebill bill --csv --xlsx bills/march.csv`,
	Args: validateArgs,
	RunE: billFunc,
}

func init() {
	Cmd.Flags().String("output-dir", "output", "Directory for per-file reports in directory mode")
	Cmd.Flags().Bool("csv", false, "Also write a <name>.summary.csv next to each report")
	Cmd.Flags().Bool("xlsx", false, "Also write a <name>.xlsx workbook next to each report")
}

func validateArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return &parsererror.UsageError{Lines: usageLines, ExitCode: usageExitCode}
	}
	return nil
}

func billFunc(cmd *cobra.Command, args []string) error {
	cfg := root.GetConfig()
	logger := root.GetLogger()
	path := args[0]

	known, err := config.LoadKnownConstants(cfg.Bill.ConstantsFile)
	if err != nil {
		return err
	}

	files := billparser.NewFileParser(known, cfg.BillDelimiter(), logger)
	opts := billparser.Options{
		OutputDir:  cfg.Bill.OutputDir,
		ExportCSV:  cfg.Export.CSV,
		ExportXLSX: cfg.Export.XLSX,
	}

	switch {
	case fileutils.DirectoryExists(path):
		summary, err := billparser.NewDirectoryParser(files, opts, logger).ProcessDir(path)
		if err != nil {
			return err
		}
		logger.Info("Bill processing completed",
			logging.Field{Key: logging.FieldCount, Value: summary.Results},
			logging.Field{Key: logging.FieldFailed, Value: summary.Failed})
		return nil

	case fileutils.FileExists(path):
		return parseSingleFile(files, path, opts, logger)

	default:
		logger.Debug("Path is neither a file nor a directory",
			logging.Field{Key: logging.FieldFile, Value: path})
		return nil
	}
}

// parseSingleFile appends the reports for path to a timestamped log in the
// current directory.
func parseSingleFile(files *billparser.FileParser, path string, opts billparser.Options, logger logging.Logger) error {
	logSink, sink := billparser.BuildSink(fileutils.TimestampedLogName(now()), report.ModeAppend, opts, logger)

	stats, err := files.ParseFile(path, sink)
	if cerr := sink.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	logger.Info("Bill processing completed",
		logging.Field{Key: logging.FieldOutputFile, Value: logSink.Path()},
		logging.Field{Key: logging.FieldCount, Value: stats.Results})
	return nil
}
