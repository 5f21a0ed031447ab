package models

import "fmt"

// ExtractMode selects what the ad-hoc extractor aggregates.
type ExtractMode string

const (
	// ModePhone sums call minutes per number.
	ModePhone ExtractMode = "phone"
	// ModeSMS counts messages per number.
	ModeSMS ExtractMode = "sms"
)

// ParseExtractMode validates a mode argument.
func ParseExtractMode(s string) (ExtractMode, error) {
	switch ExtractMode(s) {
	case ModePhone, ModeSMS:
		return ExtractMode(s), nil
	default:
		return "", fmt.Errorf("unknown extract mode %q", s)
	}
}
