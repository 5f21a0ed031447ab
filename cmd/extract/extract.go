// Package extract handles the ad-hoc usage export command
package extract

import (
	"fmt"

	"fjacquet/phonebill/cmd/root"
	"fjacquet/phonebill/internal/extractor"
	"fjacquet/phonebill/internal/models"
	"fjacquet/phonebill/internal/parsererror"

	"github.com/spf13/cobra"
)

const invalidModeMessage = "Invalid arg. Use either phone or sms"

var usageLines = []string{
	"######## USAGE #######",
	"phonebill extract <file_name> phone|sms",
}

// Cmd represents the extract command
var Cmd = &cobra.Command{
	Use:   "extract <file_path> phone|sms",
	Short: "Tally numbers in a pipe-delimited usage export",
	Long: `Tally the dotted phone numbers (555.123.4567) found in the fourth field of a
pipe-delimited usage export. In sms mode every matching row counts once; in
phone mode the seventh field is summed as minutes.

Example:
  phonebill extract usage.txt sms`,
	Args: validateArgs,
	RunE: extractFunc,
}

func validateArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return &parsererror.UsageError{Lines: usageLines, ExitCode: 2}
	}
	return nil
}

func extractFunc(cmd *cobra.Command, args []string) error {
	mode, err := models.ParseExtractMode(args[1])
	if err != nil {
		_, werr := fmt.Fprintln(cmd.OutOrStdout(), invalidModeMessage)
		return werr
	}

	cfg := root.GetConfig()
	e := extractor.New(cfg.ExtractDelimiter(), root.GetLogger())
	return e.Print(cmd.OutOrStdout(), args[0], mode)
}
