package record

import (
	"context"
	"fmt"
	"reflect"
)

// Entity is the persistence state embedded in every concrete entity type.
// The zero value is not usable; instances must come from New or a finder.
//
// An Entity is not safe for concurrent use.
type Entity struct {
	persisted bool
	fields    *FieldStore
	accessors map[string]accessor
	schema    *schema
	src       *Source
}

func (e *Entity) entity() *Entity { return e }

// New constructs a T bound to src. Defaults are registered and every mapped
// column is written to the field store with the field's current value, so
// mapped columns take part in generated SQL from the start.
func New[T any, PT interface {
	*T
	model
}](src *Source) (PT, error) {
	sc, ok := src.schemaFor(reflect.TypeFor[T]())
	if !ok {
		return nil, unregistered(reflect.TypeFor[T]())
	}

	item := PT(new(T))
	e := item.entity()
	e.src = src
	e.schema = sc
	e.fields = NewFieldStore()
	for k, v := range sc.meta.Defaults {
		e.fields.SetDefault(k, v)
	}
	e.accessors = sc.bind(item)
	for _, col := range sc.columns {
		e.fields.Set(col, e.accessors[col].get())
	}
	return item, nil
}

// Persisted reports whether the row backing this instance exists in storage.
func (e *Entity) Persisted() bool {
	return e.persisted
}

// Get returns the value of field. Mapped columns are read from their typed
// field; other names are read from the field store, including defaults.
func (e *Entity) Get(field string) any {
	if a, ok := e.accessors[field]; ok {
		return a.get()
	}
	return e.fields.Get(field)
}

// Set writes field. Mapped columns are converted into their typed field and
// mirrored into the field store; other names go to the field store only.
func (e *Entity) Set(field string, value any) error {
	if a, ok := e.accessors[field]; ok {
		if err := a.set(value); err != nil {
			return fmt.Errorf("failed to set %s.%s: %w", e.schema.meta.typeName(), field, err)
		}
		e.fields.Set(field, a.get())
		return nil
	}
	e.fields.Set(field, value)
	return nil
}

// Keys returns the columns that take part in generated SQL.
func (e *Entity) Keys() []string {
	return e.fields.Keys()
}

// Fields exposes the raw field store.
func (e *Entity) Fields() *FieldStore {
	return e.fields
}

// Mapped reports whether field is backed by a typed struct field.
func (e *Entity) Mapped(field string) bool {
	_, ok := e.accessors[field]
	return ok
}

// Table returns the resolved table name.
func (e *Entity) Table() string {
	return e.schema.table
}

// PrimaryKey returns the resolved primary-key column name.
func (e *Entity) PrimaryKey() string {
	return e.schema.primaryKey
}

// Save inserts the row when the entity is not yet persisted and updates it
// otherwise. On success the entity is marked persisted.
func (e *Entity) Save(ctx context.Context) error {
	style, err := e.src.placeholder(e.schema.connection)
	if err != nil {
		return fmt.Errorf("failed to save row: %w", err)
	}

	var cmd Command
	if e.persisted {
		if !HasNonPKColumns(e, e.schema.primaryKey) {
			return fmt.Errorf("failed to save row: %w", &ConfigError{
				Type:      e.schema.meta.typeName(),
				Attribute: "update",
				Detail:    "no columns stored besides the primary key",
			})
		}
		cmd = BuildUpdate(e.schema.table, e.schema.primaryKey, e, style)
	} else {
		cmd = BuildInsert(e.schema.table, e, style)
	}

	if err := e.runSingleRowCommand(ctx, cmd); err != nil {
		return fmt.Errorf("failed to save row: %w", err)
	}
	e.persisted = true
	return nil
}

// Delete removes the backing row. It does nothing for an entity that was
// never persisted. On success the entity is marked not persisted.
func (e *Entity) Delete(ctx context.Context) error {
	if !e.persisted {
		return nil
	}

	style, err := e.src.placeholder(e.schema.connection)
	if err != nil {
		return fmt.Errorf("failed to delete row: %w", err)
	}

	cmd := BuildDelete(e.schema.table, e.schema.primaryKey, e, style)
	if err := e.runSingleRowCommand(ctx, cmd); err != nil {
		return fmt.Errorf("failed to delete row: %w", err)
	}
	e.persisted = false
	return nil
}
