package record

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
)

// GetBySQL runs query on T's connection and materialises one T per row.
// Arguments are bound by the driver; pass sql.Named values to bind by name.
//
// Every returned column is written through Entity.Set, so mapped columns land
// in their typed field and unknown columns land in the field store. The
// result is fully loaded before GetBySQL returns.
func GetBySQL[T any, PT interface {
	*T
	model
}](ctx context.Context, src *Source, query string, args ...any) ([]PT, error) {
	sc, ok := src.schemaFor(reflect.TypeFor[T]())
	if !ok {
		return nil, unregistered(reflect.TypeFor[T]())
	}

	db, err := src.DB(sc.connection)
	if err != nil {
		return nil, err
	}

	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query rows: %w", err)
	}
	defer func() { _ = conn.Close() }()

	src.logger.Debug("executing query", slog.String("table", sc.table), slog.String("sql", query))
	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query rows: %w", err)
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	var items []PT
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		item, err := New[T, PT](src)
		if err != nil {
			return nil, err
		}
		e := item.entity()
		for i, col := range cols {
			if err := e.Set(col, values[i]); err != nil {
				return nil, fmt.Errorf("failed to load row: %w", err)
			}
		}
		e.persisted = true
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return items, nil
}
