package record

// Meta is the declarative description of an entity type.
//
// Table and PrimaryKey are never inherited: they are read from the Meta
// itself only. Connection is inherited by walking Parent until a non-empty
// value is found, so an abstract ancestor can declare the connection profile
// once for a family of entities.
type Meta struct {
	// Name identifies the entity type in error messages.
	Name string

	Table      string
	PrimaryKey string

	// Connection names a profile registered on the Source.
	Connection string

	Parent *Meta

	// Defaults maps field names to values returned by reads before the
	// field is first written. Defaults are not inherited.
	Defaults map[string]any
}

func (m *Meta) typeName() string {
	if m == nil || m.Name == "" {
		return "<unnamed entity>"
	}
	return m.Name
}

// ResolveTableName returns the table declared directly on m.
func ResolveTableName(m *Meta) (string, error) {
	if m == nil || m.Table == "" {
		return "", &ConfigError{Type: m.typeName(), Attribute: "table name"}
	}
	return m.Table, nil
}

// ResolvePrimaryKey returns the primary-key column declared directly on m.
func ResolvePrimaryKey(m *Meta) (string, error) {
	if m == nil || m.PrimaryKey == "" {
		return "", &ConfigError{Type: m.typeName(), Attribute: "primary key"}
	}
	return m.PrimaryKey, nil
}

// ResolveConnectionString returns the connection profile of m or of its
// nearest ancestor that declares one. A Parent chain that loops back on
// itself before any connection is found is a configuration error.
func ResolveConnectionString(m *Meta) (string, error) {
	seen := make(map[*Meta]bool)
	for cur := m; cur != nil; cur = cur.Parent {
		if seen[cur] {
			return "", &ConfigError{Type: m.typeName(), Attribute: "connection string", Detail: "parent cycle"}
		}
		seen[cur] = true
		if cur.Connection != "" {
			return cur.Connection, nil
		}
	}
	return "", &ConfigError{Type: m.typeName(), Attribute: "connection string"}
}
