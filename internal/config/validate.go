package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"sort"

	"github.com/leapstack-labs/leaprecord/internal/drivers"
	"github.com/leapstack-labs/leaprecord/pkg/record"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}

	for _, name := range c.ConnectionNames() {
		if _, err := c.Connections[name].toRecord(name); err != nil {
			return err
		}
	}

	if len(c.Connections) > 0 {
		if _, ok := c.Connections[c.DefaultConnection]; !ok {
			return fmt.Errorf("default_connection %q is not defined\nHint: Add it under connections: or pass --connection", c.DefaultConnection)
		}
	}
	return nil
}

// Level returns the configured log level; Verbose forces debug.
func (c *Config) Level() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	var level slog.Level
	_ = level.UnmarshalText([]byte(c.LogLevel))
	return level
}

// ConnectionNames returns the configured profile names (sorted).
func (c *Config) ConnectionNames() []string {
	names := make([]string, 0, len(c.Connections))
	for name := range c.Connections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RecordConnections converts every profile into a record.Connection.
func (c *Config) RecordConnections() ([]record.Connection, error) {
	conns := make([]record.Connection, 0, len(c.Connections))
	for _, name := range c.ConnectionNames() {
		rc, err := c.Connections[name].toRecord(name)
		if err != nil {
			return nil, err
		}
		conns = append(conns, rc)
	}
	return conns, nil
}

func (cc ConnectionConfig) toRecord(name string) (record.Connection, error) {
	d, err := drivers.Lookup(cc.Driver)
	if err != nil {
		return record.Connection{}, fmt.Errorf("connection %q: %w", name, err)
	}
	if cc.DSN == "" {
		return record.Connection{}, fmt.Errorf("connection %q: dsn is required", name)
	}

	style := d.Placeholder
	if cc.Placeholder != "" {
		style, err = record.ParsePlaceholderStyle(cc.Placeholder)
		if err != nil {
			return record.Connection{}, fmt.Errorf("connection %q: %w", name, err)
		}
	}

	return record.Connection{
		Name:        name,
		Driver:      d.Name,
		DSN:         cc.DSN,
		Placeholder: style,
	}, nil
}

var passwordPattern = regexp.MustCompile(`(?i)(password=)(\S+)`)

// MaskDSN hides passwords in URL and key=value style DSNs.
func MaskDSN(dsn string) string {
	if u, err := url.Parse(dsn); err == nil && u.User != nil {
		if _, ok := u.User.Password(); ok {
			u.User = url.UserPassword(u.User.Username(), "xxxxx")
			return u.String()
		}
	}
	return passwordPattern.ReplaceAllString(dsn, "${1}xxxxx")
}
