package record

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leaprecord/internal/testutil"
)

var appEntity = Meta{Name: "AppEntity", Connection: "main"}

type User struct {
	Entity
	ID   string
	Name string
	Age  int
}

func userMeta() Meta {
	return Meta{
		Name:       "User",
		Table:      "users",
		PrimaryKey: "id",
		Parent:     &appEntity,
		Defaults:   map[string]any{"status": "active"},
	}
}

func userFields() []Field[User] {
	return []Field[User]{
		Column("id", func(u *User) *string { return &u.ID }),
		Column("name", func(u *User) *string { return &u.Name }),
		Column("age", func(u *User) *int { return &u.Age }),
	}
}

// Event has no mapped fields; every column lives in the field store.
type Event struct {
	Entity
}

func eventMeta() Meta {
	return Meta{Name: "Event", Table: "events", PrimaryKey: "kind", Parent: &appEntity}
}

// newMockSource returns a Source whose "main" profile is backed by sqlmock
// with exact query matching.
func newMockSource(t *testing.T, style PlaceholderStyle) (*Source, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	src := NewSource(testutil.NewTestLogger(t))
	src.Attach("main", db, style)
	require.NoError(t, Register[User](src, userMeta(), userFields()...))
	require.NoError(t, Register[Event](src, eventMeta()))
	return src, mock
}
