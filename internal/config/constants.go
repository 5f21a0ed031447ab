package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultKnownConstants are the plan and feature labels that appear as
// single-field rows in carrier exports.
var defaultKnownConstants = []string{
	"AT&T",
	"SDDV=Plan minutes",
	"SDDV=Shared Minutes",
	"WIFI=Call over Wi-Fi",
	"NBSY=NumberSync",
	"MPSDG4=MobileShare Value 45GB",
	"MPSDG4=Mobile Share Value 45GB",
	"UNLMSG=Plan messages",
	"UNLMSG=Shared Messaging",
	"MPSDG3=Promo for Mobile Share Value 30GB with Rollover Data",
	"MPSDG3=Promofor Mobile Share Value 30GB with Rollover Data",
	"",
}

// KnownConstants is a read-only allow-list of single-field row values.
type KnownConstants map[string]struct{}

// constantsFile is the YAML layout of bill.constants_file.
type constantsFile struct {
	KnownConstants []string `yaml:"known_constants"`
}

// NewKnownConstants builds a set from values.
func NewKnownConstants(values ...string) KnownConstants {
	set := make(KnownConstants, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// DefaultKnownConstants returns the built-in allow-list.
func DefaultKnownConstants() KnownConstants {
	return NewKnownConstants(defaultKnownConstants...)
}

// Contains reports whether value is a known constant.
func (k KnownConstants) Contains(value string) bool {
	_, ok := k[value]
	return ok
}

// LoadKnownConstants returns the defaults merged with the labels listed in
// the YAML file at path. An empty path returns the defaults.
func LoadKnownConstants(path string) (KnownConstants, error) {
	known := DefaultKnownConstants()
	if path == "" {
		return known, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from user configuration
	if err != nil {
		return nil, fmt.Errorf("failed to read constants file: %w", err)
	}

	var file constantsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse constants file %s: %w", path, err)
	}

	for _, v := range file.KnownConstants {
		known[v] = struct{}{}
	}
	return known, nil
}
