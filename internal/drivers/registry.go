// Package drivers lists the database/sql drivers leaprecord can connect
// through and the placeholder style each one expects by default.
package drivers

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/leapstack-labs/leaprecord/pkg/record"
)

// Driver describes a supported database/sql driver.
type Driver struct {
	// Name is the driver name used in configuration and passed to sql.Open.
	Name string
	// Placeholder is the parameter style used when a profile does not set one.
	Placeholder record.PlaceholderStyle
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Driver)
)

// Register adds a driver to the registry.
// Called from init() next to the driver's blank import.
func Register(d Driver) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[strings.ToLower(d.Name)] = d
}

// Get retrieves a driver by name (case-insensitive).
func Get(name string) (Driver, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	d, ok := registry[strings.ToLower(name)]
	return d, ok
}

// List returns all registered driver names (sorted).
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a driver is registered.
func IsRegistered(name string) bool {
	_, ok := Get(name)
	return ok
}

// UnknownDriverError is returned when a profile names an unsupported driver.
type UnknownDriverError struct {
	Name      string
	Available []string
}

func (e *UnknownDriverError) Error() string {
	return fmt.Sprintf("unknown driver %q\nAvailable drivers: %v\nHint: Check connections.<name>.driver in leaprecord.yaml", e.Name, e.Available)
}

// Lookup returns the driver or an *UnknownDriverError.
func Lookup(name string) (Driver, error) {
	d, ok := Get(name)
	if !ok {
		return Driver{}, &UnknownDriverError{Name: name, Available: List()}
	}
	return d, nil
}
