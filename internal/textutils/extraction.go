// Package textutils provides the row reader and the phone-number shape rules
// used by the parsers.
//
// Two shapes are in use and they are deliberately kept apart. The bill parser
// accepts any three digit groups with arbitrary separators, while the ad-hoc
// extractor only accepts the dotted ddd.ddd.dddd form.
package textutils

import (
	"regexp"
	"strings"
)

const (
	// LoosePhonePattern matches three digit groups separated by anything.
	LoosePhonePattern = `\d{3}.*\d{3}.*\d{4}`
	// StrictPhonePattern matches a dotted ddd.ddd.dddd number.
	StrictPhonePattern = `\d{3}\.\d{3}\.\d{4}`
)

var (
	loosePhoneRE  = regexp.MustCompile(LoosePhonePattern)
	strictPhoneRE = regexp.MustCompile(StrictPhonePattern)
)

// MatchesLoosePhone reports whether s contains a loosely phone-shaped token.
func MatchesLoosePhone(s string) bool {
	return loosePhoneRE.MatchString(s)
}

// ExtractStrictPhone returns the first ddd.ddd.dddd token in s.
func ExtractStrictPhone(s string) (string, bool) {
	match := strictPhoneRE.FindString(s)
	return match, match != ""
}

// CleanField trims surrounding whitespace from a CSV field.
func CleanField(s string) string {
	return strings.TrimSpace(s)
}
