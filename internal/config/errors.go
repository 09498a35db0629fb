package config

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigMissing is returned by Load when the settings file does not
	// exist. LoadOrCreate handles it by writing the defaults first.
	ErrConfigMissing = errors.New("settings file not found")

	// ErrMissingKey is wrapped by FormatError when a required section or
	// key is absent.
	ErrMissingKey = errors.New("missing key")
)

// FormatError reports a settings value that is absent or cannot be
// converted to the type its key requires. It is fatal: the run stops
// before any network activity.
type FormatError struct {
	// Key is the offending key, or the bracketed section name when the
	// section is missing or the file cannot be parsed at all.
	Key string

	// Value is the raw value as read from the file.
	Value string

	// Err is the underlying parse error or ErrMissingKey.
	Err error
}

func (e *FormatError) Error() string {
	switch {
	case errors.Is(e.Err, ErrMissingKey):
		return fmt.Sprintf("settings: %s: %v", e.Key, e.Err)
	case e.Key == "["+SectionName+"]":
		return fmt.Sprintf("settings: malformed file: %v", e.Err)
	}
	return fmt.Sprintf("settings: invalid value %q for %s: %v", e.Value, e.Key, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
