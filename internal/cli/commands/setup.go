// Package commands implements the leaprecord subcommands.
package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leaprecord/internal/config"
	"github.com/leapstack-labs/leaprecord/pkg/record"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg    *config.Config
	Logger *slog.Logger
	Source *record.Source
}

// NewCommandContext creates a CommandContext with a Source over every
// configured connection.
// Returns the context and a cleanup function that must be called (typically via defer).
func NewCommandContext(cmd *cobra.Command) (*CommandContext, func(), error) {
	cfg := config.GetConfig(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	if len(cfg.Connections) == 0 {
		return nil, nil, errors.New("no connections configured\nHint: Add a connections: section to leaprecord.yaml")
	}

	conns, err := cfg.RecordConnections()
	if err != nil {
		return nil, nil, err
	}
	src := record.NewSource(logger, conns...)

	cleanup := func() {
		if err := src.Close(); err != nil {
			logger.Warn("failed to close connections", slog.Any("error", err))
		}
	}

	return &CommandContext{
		Cfg:    cfg,
		Logger: logger,
		Source: src,
	}, cleanup, nil
}

// tableFlags selects the table a row command works on.
type tableFlags struct {
	table string
	key   string
}

func addTableFlags(cmd *cobra.Command, f *tableFlags) {
	cmd.Flags().StringVar(&f.table, "table", "", "Table to operate on")
	cmd.Flags().StringVar(&f.key, "key", "id", "Primary key column")
	_ = cmd.MarkFlagRequired("table")
}

// Row is an entity without mapped fields. Every column lives in the field
// store, so any table can be read and written without a Go type for it.
type Row struct {
	record.Entity
}

// registerRow binds Row to the selected table on the default connection.
func (c *CommandContext) registerRow(f tableFlags) error {
	err := record.Register[Row](c.Source, record.Meta{
		Name:       "row",
		Table:      f.table,
		PrimaryKey: f.key,
		Connection: c.Cfg.DefaultConnection,
	})
	if err != nil {
		return fmt.Errorf("failed to register table %s: %w", f.table, err)
	}
	return nil
}
