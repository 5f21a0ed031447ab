// Package report renders aggregated phone usage and writes it to its
// destinations: the per-input text log and the optional CSV and XLSX exports.
package report

import (
	"fmt"
	"strings"

	"fjacquet/phonebill/internal/models"
)

const rule = "####### ####### ####### ####### ########"

// Extract table headers, printed exactly as the downstream tooling expects.
const (
	SMSHeader     = "Number   |  Count "
	MinutesHeader = "Number | Minutes"
)

// RenderResult formats a Result as the fixed-layout text block written to
// the result logs.
func RenderResult(r *models.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "####### Analysis for %s ########\n", r.Phone)
	fmt.Fprintf(&b, "####### From period %s to %s ########\n", r.FirstCallDate(), r.LastCallDate())
	b.WriteString(rule + "\n")

	b.WriteString(" \n SMS Info \n")
	b.WriteString(" \tPhone Number\t\tCount\n")
	for _, t := range r.SMSTallies() {
		fmt.Fprintf(&b, "\t%s\t\t%d\n", t.Number, t.Value)
	}

	b.WriteString(" \n Phone Info \n")
	b.WriteString(" \tPhone Number\t\tMinutes\n")
	for _, t := range r.MinuteTallies() {
		fmt.Fprintf(&b, "\t%s\t\t%d\n", t.Number, t.Value)
	}

	b.WriteString("\n" + rule + "\n")
	return b.String()
}

// RenderExtract formats the ad-hoc extractor table for mode.
func RenderExtract(mode models.ExtractMode, tallies []models.Tally) string {
	var b strings.Builder
	if mode == models.ModeSMS {
		b.WriteString(SMSHeader + "\n")
	} else {
		b.WriteString(MinutesHeader + "\n")
	}
	for _, t := range tallies {
		fmt.Fprintf(&b, "%s %d\n", t.Number, t.Value)
	}
	return b.String()
}
