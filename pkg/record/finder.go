package record

import (
	"context"
	"reflect"
)

// GetAll loads every row of T's table.
func GetAll[T any, PT interface {
	*T
	model
}](ctx context.Context, src *Source) ([]PT, error) {
	sc, _, err := lookup[T](src)
	if err != nil {
		return nil, err
	}
	return GetBySQL[T, PT](ctx, src, BuildSelect(sc.table))
}

// GetByProperty loads the rows whose column equals value. The value is bound
// as a parameter and may come from untrusted input.
func GetByProperty[T any, PT interface {
	*T
	model
}](ctx context.Context, src *Source, column string, value any) ([]PT, error) {
	sc, style, err := lookup[T](src)
	if err != nil {
		return nil, err
	}
	cmd := BuildSelectWhere(sc.table, column, value, style)
	return GetBySQL[T, PT](ctx, src, cmd.SQL, cmd.Args...)
}

// GetByKey loads the row whose primary key equals value. It returns
// ErrNotFound when no row matches.
func GetByKey[T any, PT interface {
	*T
	model
}](ctx context.Context, src *Source, value any) (PT, error) {
	sc, _, err := lookup[T](src)
	if err != nil {
		return nil, err
	}
	items, err := GetByProperty[T, PT](ctx, src, sc.primaryKey, value)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}
	return items[0], nil
}

// GetBySQLCriteriaUnsafe loads the rows matching "column <criteria>", where
// criteria is appended to the statement verbatim, e.g. "> 5" or "IN (1,2,3)".
//
// UNSAFE: criteria is not parameterized. It exists as an escape hatch for
// predicates GetByProperty cannot express and must never contain untrusted
// input. Use GetByProperty for equality matches on user-supplied values.
func GetBySQLCriteriaUnsafe[T any, PT interface {
	*T
	model
}](ctx context.Context, src *Source, column, criteria string) ([]PT, error) {
	sc, _, err := lookup[T](src)
	if err != nil {
		return nil, err
	}
	query := BuildSelect(sc.table) + " WHERE " + column + " " + criteria
	return GetBySQL[T, PT](ctx, src, query)
}

func lookup[T any](src *Source) (*schema, PlaceholderStyle, error) {
	sc, ok := src.schemaFor(reflect.TypeFor[T]())
	if !ok {
		return nil, PlaceholderNamed, unregistered(reflect.TypeFor[T]())
	}
	style, err := src.placeholder(sc.connection)
	if err != nil {
		return nil, PlaceholderNamed, err
	}
	return sc, style, nil
}
