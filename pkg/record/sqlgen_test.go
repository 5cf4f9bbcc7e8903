package record

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newStore(kv ...any) *FieldStore {
	s := NewFieldStore()
	for i := 0; i < len(kv); i += 2 {
		s.Set(kv[i].(string), kv[i+1])
	}
	return s
}

func TestBuildStatements(t *testing.T) {
	store := newStore("name", "Ann", "id", "u1", "age", 30)

	tests := []struct {
		name     string
		build    func(PlaceholderStyle) Command
		style    PlaceholderStyle
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "insert named",
			build:    func(s PlaceholderStyle) Command { return BuildInsert("users", store, s) },
			style:    PlaceholderNamed,
			wantSQL:  "INSERT INTO users (age,id,name) VALUES (@age,@id,@name)",
			wantArgs: []any{sql.Named("age", 30), sql.Named("id", "u1"), sql.Named("name", "Ann")},
		},
		{
			name:     "insert question",
			build:    func(s PlaceholderStyle) Command { return BuildInsert("users", store, s) },
			style:    PlaceholderQuestion,
			wantSQL:  "INSERT INTO users (age,id,name) VALUES (?,?,?)",
			wantArgs: []any{30, "u1", "Ann"},
		},
		{
			name:     "update dollar numbers key last",
			build:    func(s PlaceholderStyle) Command { return BuildUpdate("users", "id", store, s) },
			style:    PlaceholderDollar,
			wantSQL:  "UPDATE users SET age=$1,name=$2 WHERE id=$3",
			wantArgs: []any{30, "Ann", "u1"},
		},
		{
			name:     "update named",
			build:    func(s PlaceholderStyle) Command { return BuildUpdate("users", "id", store, s) },
			style:    PlaceholderNamed,
			wantSQL:  "UPDATE users SET age=@age,name=@name WHERE id=@id",
			wantArgs: []any{sql.Named("age", 30), sql.Named("name", "Ann"), sql.Named("id", "u1")},
		},
		{
			name:     "delete",
			build:    func(s PlaceholderStyle) Command { return BuildDelete("users", "id", store, s) },
			style:    PlaceholderQuestion,
			wantSQL:  "DELETE FROM users WHERE id=?",
			wantArgs: []any{"u1"},
		},
		{
			name:     "select where",
			build:    func(s PlaceholderStyle) Command { return BuildSelectWhere("users", "name", "O'Brien", s) },
			style:    PlaceholderDollar,
			wantSQL:  "SELECT * FROM users WHERE name=$1",
			wantArgs: []any{"O'Brien"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := tt.build(tt.style)
			assert.Equal(t, tt.wantSQL, cmd.SQL)
			assert.Equal(t, tt.wantArgs, cmd.Args)
		})
	}

	assert.Equal(t, "SELECT * FROM users", BuildSelect("users"))
}

func TestListHelpers(t *testing.T) {
	store := newStore("b", 2, "a", 1, "c", 3)

	assert.Equal(t, "a,b,c", ColumnList(store))
	assert.Equal(t, "@a,@b,@c", ParameterList(store, PlaceholderNamed))
	assert.Equal(t, "$1,$2,$3", ParameterList(store, PlaceholderDollar))
	assert.Equal(t, "a=?,c=?", NonPKAssignments(store, "b", PlaceholderQuestion))
	assert.Equal(t, "b=@b", PKCondition(store, "b", PlaceholderNamed))
}

// The primary key is excluded from SET case-insensitively, but its value is
// looked up case-sensitively for the WHERE clause.
func TestPrimaryKeyCaseAsymmetry(t *testing.T) {
	store := newStore("ID", "u1", "name", "Ann")

	assert.Equal(t, "name=?", NonPKAssignments(store, "id", PlaceholderQuestion))

	cmd := BuildUpdate("users", "id", store, PlaceholderQuestion)
	assert.Equal(t, "UPDATE users SET name=? WHERE id=?", cmd.SQL)
	assert.Equal(t, []any{"Ann", nil}, cmd.Args)
}

func TestParsePlaceholderStyle(t *testing.T) {
	for _, style := range []PlaceholderStyle{PlaceholderNamed, PlaceholderQuestion, PlaceholderDollar} {
		got, err := ParsePlaceholderStyle(style.String())
		assert.NoError(t, err)
		assert.Equal(t, style, got)
	}

	got, err := ParsePlaceholderStyle(" Dollar ")
	assert.NoError(t, err)
	assert.Equal(t, PlaceholderDollar, got)

	_, err = ParsePlaceholderStyle("colon")
	assert.Error(t, err)
}

func TestNamedPlaceholders_InvalidColumnNames(t *testing.T) {
	store := newStore("_rev", 3, "id", "u1", "p1", "x", "unit-price", 9.5)

	cmd := BuildInsert("docs", store, PlaceholderNamed)
	assert.Equal(t, "INSERT INTO docs (_rev,id,p1,unit-price) VALUES (@p1,@id,@p3,@p4)", cmd.SQL)
	assert.Equal(t, []any{
		sql.Named("p1", 3),
		sql.Named("id", "u1"),
		sql.Named("p3", "x"),
		sql.Named("p4", 9.5),
	}, cmd.Args)

	cmd = BuildUpdate("docs", "id", newStore("_rev", 4, "id", "u1"), PlaceholderNamed)
	assert.Equal(t, "UPDATE docs SET _rev=@p1 WHERE id=@id", cmd.SQL)
	assert.Equal(t, []any{sql.Named("p1", 4), sql.Named("id", "u1")}, cmd.Args)

	// other styles are positional and unaffected
	assert.Equal(t, "?,?,?,?", ParameterList(store, PlaceholderQuestion))
}

func TestValidParamName(t *testing.T) {
	for name, want := range map[string]bool{
		"id":         true,
		"createdAt":  true,
		"col_2":      true,
		"":           false,
		"_rev":       false,
		"2fa":        false,
		"unit-price": false,
		"a b":        false,
	} {
		assert.Equal(t, want, validParamName(name), name)
	}
}

func TestHasNonPKColumns(t *testing.T) {
	assert.True(t, HasNonPKColumns(newStore("id", 1, "name", "Ann"), "id"))
	assert.False(t, HasNonPKColumns(newStore("ID", 1), "id"))
	assert.False(t, HasNonPKColumns(NewFieldStore(), "id"))
}
