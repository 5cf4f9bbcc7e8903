package record

import "strings"

// Row is the column view the SQL generator works from. Both *FieldStore and
// *Entity implement it; Entity reads mapped columns from their typed field.
type Row interface {
	Keys() []string
	Get(key string) any
}

// Command is a generated statement together with its bound arguments.
type Command struct {
	SQL  string
	Args []any
}

// ColumnList joins the stored column names in enumeration order.
func ColumnList(r Row) string {
	return strings.Join(r.Keys(), ",")
}

// ParameterList returns one placeholder per stored column, in ColumnList order.
func ParameterList(r Row, style PlaceholderStyle) string {
	return parameterList(r, &binder{style: style})
}

// NonPKAssignments returns column=placeholder pairs for every stored column
// except the primary key. The primary key is matched case-insensitively.
func NonPKAssignments(r Row, pk string, style PlaceholderStyle) string {
	return nonPKAssignments(r, pk, &binder{style: style})
}

// PKCondition returns the primary-key equality predicate.
func PKCondition(r Row, pk string, style PlaceholderStyle) string {
	return pkCondition(r, pk, &binder{style: style})
}

func parameterList(r Row, b *binder) string {
	keys := r.Keys()
	params := make([]string, 0, len(keys))
	for _, k := range keys {
		params = append(params, b.bind(k, r.Get(k)))
	}
	return strings.Join(params, ",")
}

// HasNonPKColumns reports whether r stores any column other than pk, i.e.
// whether NonPKAssignments is non-empty.
func HasNonPKColumns(r Row, pk string) bool {
	for _, k := range r.Keys() {
		if !strings.EqualFold(k, pk) {
			return true
		}
	}
	return false
}

func nonPKAssignments(r Row, pk string, b *binder) string {
	var sets []string
	for _, k := range r.Keys() {
		if strings.EqualFold(k, pk) {
			continue
		}
		sets = append(sets, k+"="+b.bind(k, r.Get(k)))
	}
	return strings.Join(sets, ",")
}

// pkCondition looks the key value up case-sensitively, unlike the exclusion
// in nonPKAssignments.
func pkCondition(r Row, pk string, b *binder) string {
	return pk + "=" + b.bind(pk, r.Get(pk))
}

// BuildInsert returns INSERT INTO table (columns) VALUES (params).
func BuildInsert(table string, r Row, style PlaceholderStyle) Command {
	b := &binder{style: style}
	sql := "INSERT INTO " + table + " (" + ColumnList(r) + ") VALUES (" + parameterList(r, b) + ")"
	return Command{SQL: sql, Args: b.args}
}

// BuildUpdate returns UPDATE table SET assignments WHERE pk=param.
// r must hold at least one column besides pk; see HasNonPKColumns.
func BuildUpdate(table, pk string, r Row, style PlaceholderStyle) Command {
	b := &binder{style: style}
	sets := nonPKAssignments(r, pk, b)
	sql := "UPDATE " + table + " SET " + sets + " WHERE " + pkCondition(r, pk, b)
	return Command{SQL: sql, Args: b.args}
}

// BuildDelete returns DELETE FROM table WHERE pk=param.
func BuildDelete(table, pk string, r Row, style PlaceholderStyle) Command {
	b := &binder{style: style}
	return Command{SQL: "DELETE FROM " + table + " WHERE " + pkCondition(r, pk, b), Args: b.args}
}

// BuildSelect returns the unfiltered SELECT for table.
func BuildSelect(table string) string {
	return "SELECT * FROM " + table
}

// BuildSelectWhere returns a SELECT with a single parameterized equality predicate.
func BuildSelectWhere(table, column string, value any, style PlaceholderStyle) Command {
	b := &binder{style: style}
	sql := BuildSelect(table) + " WHERE " + column + "=" + b.bind(column, value)
	return Command{SQL: sql, Args: b.args}
}
