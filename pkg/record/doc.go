// Package record is a small active-record persistence layer on top of
// database/sql.
//
// A concrete entity embeds Entity and is described once at startup by a Meta
// (table, primary key, connection profile) plus an optional list of typed
// Column fields:
//
//	type User struct {
//		record.Entity
//		Name string
//	}
//
//	err := record.Register[User](src, record.Meta{
//		Name:       "User",
//		Table:      "users",
//		PrimaryKey: "id",
//		Parent:     &AppEntity, // inherits Connection
//	}, record.Column("name", func(u *User) *string { return &u.Name }))
//
// Instances are created with New, mutated through the uniform Get/Set
// accessor and persisted with Save and Delete. Every write runs in its own
// connection and transaction and must affect exactly one row.
//
// Finders (GetAll, GetByKey, GetByProperty, GetBySQL) materialise fresh
// entities. GetBySQLCriteriaUnsafe appends a caller-supplied SQL fragment
// verbatim and must never receive untrusted input.
package record
