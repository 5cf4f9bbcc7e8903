package record

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig is matched by every *ConfigError.
	ErrConfig = errors.New("record configuration error")

	// ErrSingleRow is matched by every *SingleRowError.
	ErrSingleRow = errors.New("single-row operation violated")

	// ErrNotFound is returned by GetByKey when no row matches.
	ErrNotFound = errors.New("row not found")
)

// ConfigError reports a missing or contradictory piece of declarative
// configuration for an entity type.
type ConfigError struct {
	Type      string
	Attribute string
	Detail    string
}

func (e *ConfigError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s configuration on %s: %s", e.Attribute, e.Type, e.Detail)
	}
	return fmt.Sprintf("missing %s configuration on %s", e.Attribute, e.Type)
}

// Is reports whether target is ErrConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// SingleRowError is returned when a write affected a row count other than one.
// The surrounding transaction has already been rolled back.
type SingleRowError struct {
	Affected int64
}

func (e *SingleRowError) Error() string {
	return fmt.Sprintf("single-row operation affected %d rows", e.Affected)
}

// Is reports whether target is ErrSingleRow.
func (e *SingleRowError) Is(target error) bool {
	return target == ErrSingleRow
}
