package record

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// PlaceholderStyle defines how query parameters are formatted.
type PlaceholderStyle int

const (
	// PlaceholderNamed uses @column and binds sql.Named arguments (SQLite).
	// Columns that are not valid parameter names are bound as @p<n>.
	PlaceholderNamed PlaceholderStyle = iota
	// PlaceholderQuestion uses ? for all parameters (DuckDB, MySQL, SQLite).
	PlaceholderQuestion
	// PlaceholderDollar uses $1, $2, etc. for parameters (PostgreSQL, DuckDB).
	PlaceholderDollar
)

// String returns the configuration name of the style.
func (p PlaceholderStyle) String() string {
	switch p {
	case PlaceholderQuestion:
		return "question"
	case PlaceholderDollar:
		return "dollar"
	default:
		return "named"
	}
}

// ParsePlaceholderStyle parses a configuration name as returned by String.
func ParsePlaceholderStyle(s string) (PlaceholderStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "named", "@":
		return PlaceholderNamed, nil
	case "question", "?":
		return PlaceholderQuestion, nil
	case "dollar", "$":
		return PlaceholderDollar, nil
	}
	return PlaceholderNamed, fmt.Errorf("unknown placeholder style %q", s)
}

// binder formats placeholders and collects their arguments in statement order.
type binder struct {
	style PlaceholderStyle
	args  []any
	used  map[string]bool // named style parameter names already bound
}

func (b *binder) bind(column string, value any) string {
	switch b.style {
	case PlaceholderQuestion:
		b.args = append(b.args, value)
		return "?"
	case PlaceholderDollar:
		b.args = append(b.args, value)
		return "$" + strconv.Itoa(len(b.args))
	default:
		name := b.paramName(column)
		b.args = append(b.args, sql.Named(name, value))
		return "@" + name
	}
}

// paramName reuses the column name when it is a valid, unused parameter
// name and falls back to p<n> otherwise, e.g. for "_rev" or "unit-price".
func (b *binder) paramName(column string) string {
	if b.used == nil {
		b.used = make(map[string]bool)
	}
	name := column
	if !validParamName(name) || b.used[name] {
		for n := len(b.args) + 1; ; n++ {
			name = "p" + strconv.Itoa(n)
			if !b.used[name] {
				break
			}
		}
	}
	b.used[name] = true
	return name
}

// validParamName reports whether s is accepted by sql.Named and can follow
// '@' in statement text: a letter, then letters, digits or underscores.
func validParamName(s string) bool {
	for i, r := range s {
		switch {
		case unicode.IsLetter(r):
		case i > 0 && (r == '_' || unicode.IsDigit(r)):
		default:
			return false
		}
	}
	return s != ""
}
