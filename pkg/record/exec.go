package record

import (
	"context"
	"fmt"
	"log/slog"
)

// runSingleRowCommand executes cmd in its own connection and transaction and
// commits only if exactly one row was affected.
func (e *Entity) runSingleRowCommand(ctx context.Context, cmd Command) error {
	db, err := e.src.DB(e.schema.connection)
	if err != nil {
		return err
	}
	logger := e.src.logger.With(slog.String("table", e.schema.table))

	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("unable to process single-row operation: %w", err)
	}
	defer func() { _ = conn.Close() }()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("unable to process single-row operation: %w", err)
	}

	logger.Debug("executing command", slog.String("sql", cmd.SQL))
	result, err := tx.ExecContext(ctx, cmd.SQL, cmd.Args...)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("unable to process single-row operation: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("unable to process single-row operation: %w", err)
	}

	if affected != 1 {
		_ = tx.Rollback()
		logger.Warn("single-row operation rolled back",
			slog.String("sql", cmd.SQL),
			slog.Int64("rows", affected))
		return &SingleRowError{Affected: affected}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("unable to process single-row operation: %w", err)
	}
	logger.Debug("command committed", slog.Int64("rows", affected))
	return nil
}
