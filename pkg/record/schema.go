package record

import (
	"fmt"
	"log/slog"
	"maps"
	"reflect"
)

// model is implemented by every struct embedding Entity.
type model interface {
	entity() *Entity
}

// accessor reads and writes one typed field of a bound entity instance.
type accessor struct {
	get func() any
	set func(any) error
}

// Field maps a column name to a typed struct field of T.
type Field[T any] struct {
	name string
	bind func(*T) accessor
}

// Column declares that the struct field returned by sel is the system of
// record for column. Values written through Entity.Set are converted to V.
func Column[T, V any](column string, sel func(*T) *V) Field[T] {
	return Field[T]{
		name: column,
		bind: func(t *T) accessor {
			p := sel(t)
			return accessor{
				get: func() any { return *p },
				set: func(v any) error { return assign(p, v) },
			}
		},
	}
}

// schema is the resolved, registration-time view of an entity type.
type schema struct {
	meta       Meta
	table      string
	primaryKey string
	connection string
	columns    []string
	bind       func(any) map[string]accessor
}

// Register declares the metadata and mapped fields of entity type T on src.
// Table, primary key and connection are resolved immediately; any missing
// piece, a duplicate column, or a name that is both a default and a column is
// reported as a *ConfigError. Registering T again replaces its schema.
func Register[T any, PT interface {
	*T
	model
}](src *Source, meta Meta, fields ...Field[T]) error {
	if meta.Name == "" {
		meta.Name = reflect.TypeFor[T]().Name()
	}
	sc, err := newSchema(meta, fields)
	if err != nil {
		return err
	}
	src.setSchema(reflect.TypeFor[T](), sc)
	src.logger.Debug("registered entity",
		slog.String("type", meta.typeName()),
		slog.String("table", sc.table),
		slog.String("primary_key", sc.primaryKey),
		slog.String("connection", sc.connection))
	return nil
}

func newSchema[T any](meta Meta, fields []Field[T]) (*schema, error) {
	table, err := ResolveTableName(&meta)
	if err != nil {
		return nil, err
	}
	pk, err := ResolvePrimaryKey(&meta)
	if err != nil {
		return nil, err
	}
	conn, err := ResolveConnectionString(&meta)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(fields))
	columns := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.name == "" || f.bind == nil {
			return nil, &ConfigError{Type: meta.typeName(), Attribute: "column", Detail: "empty column mapping"}
		}
		if _, dup := seen[f.name]; dup {
			return nil, &ConfigError{Type: meta.typeName(), Attribute: "column", Detail: fmt.Sprintf("column %q mapped twice", f.name)}
		}
		if _, both := meta.Defaults[f.name]; both {
			return nil, &ConfigError{Type: meta.typeName(), Attribute: "default/column", Detail: fmt.Sprintf("%q has both a default value and a column mapping", f.name)}
		}
		seen[f.name] = struct{}{}
		columns = append(columns, f.name)
	}

	meta.Defaults = maps.Clone(meta.Defaults)
	bound := append([]Field[T](nil), fields...)
	return &schema{
		meta:       meta,
		table:      table,
		primaryKey: pk,
		connection: conn,
		columns:    columns,
		bind: func(instance any) map[string]accessor {
			t := instance.(*T)
			acc := make(map[string]accessor, len(bound))
			for _, f := range bound {
				acc[f.name] = f.bind(t)
			}
			return acc
		},
	}, nil
}
