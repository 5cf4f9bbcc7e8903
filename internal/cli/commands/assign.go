package commands

import (
	"fmt"
	"strings"
)

// assignment is one column=value pair from the command line.
type assignment struct {
	column string
	value  string
}

func parseAssignment(s string) (assignment, error) {
	column, value, ok := strings.Cut(s, "=")
	column = strings.TrimSpace(column)
	if !ok || column == "" {
		return assignment{}, fmt.Errorf("invalid assignment %q, expected column=value", s)
	}
	return assignment{column: column, value: value}, nil
}

func parseAssignments(pairs []string) ([]assignment, error) {
	out := make([]assignment, 0, len(pairs))
	seen := make(map[string]bool, len(pairs))
	for _, p := range pairs {
		a, err := parseAssignment(p)
		if err != nil {
			return nil, err
		}
		if seen[a.column] {
			return nil, fmt.Errorf("column %q assigned more than once", a.column)
		}
		seen[a.column] = true
		out = append(out, a)
	}
	return out, nil
}
