package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"
)

// renderRows writes rows as a table or as JSON.
func renderRows(w io.Writer, rows []*Row, format string) error {
	var cols []string
	results := make([]map[string]any, 0, len(rows))
	for _, r := range rows {
		result := make(map[string]any)
		for _, k := range r.Keys() {
			if !slices.Contains(cols, k) {
				cols = append(cols, k)
			}
			v := r.Get(k)
			// Convert []byte to string for readability
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			result[k] = v
		}
		results = append(results, result)
	}
	slices.Sort(cols)

	switch format {
	case "json":
		return renderJSON(w, results)
	case "table", "":
		return renderTable(w, cols, results)
	default:
		return fmt.Errorf("unknown output format %q (expected table or json)", format)
	}
}

func renderTable(w io.Writer, cols []string, results []map[string]any) error {
	if len(results) == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	headerRow := make(table.Row, len(cols))
	for i, col := range cols {
		headerRow[i] = col
	}
	t.AppendHeader(headerRow)

	for _, result := range results {
		row := make(table.Row, len(cols))
		for i, col := range cols {
			row[i] = formatValue(result[col])
		}
		t.AppendRow(row)
	}

	t.Render()
	if len(results) == 1 {
		_, _ = fmt.Fprintln(w, "(1 row)")
	} else {
		_, _ = fmt.Fprintf(w, "(%d rows)\n", len(results))
	}
	return nil
}

func renderJSON(w io.Writer, results []map[string]any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func formatValue(v any) string {
	if v == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", v)
}
