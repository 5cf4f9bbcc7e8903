package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leaprecord/pkg/record"
)

type findOptions struct {
	tableFlags
	id       string
	where    string
	column   string
	criteria string
	query    string
}

// NewFindCommand creates the find command.
func NewFindCommand() *cobra.Command {
	opts := &findOptions{}

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Load rows from a table",
		Long: `Load rows from a table and print them.

Without a filter every row is returned. --id matches the primary key,
--where matches one column by equality. Both bind the value as a parameter.

--criteria appends a raw predicate to --column and is not parameterized:
never pass untrusted input to it.`,
		Example: `  leaprecord find --table users
  leaprecord find --table users --id 42
  leaprecord find --table users --where status=active -o json
  leaprecord find --table users --column age --criteria "> 30"
  leaprecord find --table users --sql "SELECT id, name FROM users ORDER BY name"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFind(cmd, opts)
		},
	}

	addTableFlags(cmd, &opts.tableFlags)
	cmd.Flags().StringVar(&opts.id, "id", "", "Primary key value to match")
	cmd.Flags().StringVar(&opts.where, "where", "", "Equality filter as column=value")
	cmd.Flags().StringVar(&opts.column, "column", "", "Column for --criteria")
	cmd.Flags().StringVar(&opts.criteria, "criteria", "", "Raw SQL predicate applied to --column (UNSAFE)")
	cmd.Flags().StringVar(&opts.query, "sql", "", "Full SELECT statement to run")
	cmd.MarkFlagsMutuallyExclusive("id", "where", "criteria", "sql")
	cmd.MarkFlagsRequiredTogether("column", "criteria")

	return cmd
}

func runFind(cmd *cobra.Command, opts *findOptions) error {
	cc, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := cc.registerRow(opts.tableFlags); err != nil {
		return err
	}

	ctx := cmd.Context()
	var rows []*Row

	switch {
	case opts.id != "":
		row, err := record.GetByKey[Row](ctx, cc.Source, opts.id)
		if errors.Is(err, record.ErrNotFound) {
			return fmt.Errorf("no row in %s with %s = %s", opts.table, opts.key, opts.id)
		}
		if err != nil {
			return err
		}
		rows = []*Row{row}
	case opts.where != "":
		a, err := parseAssignment(opts.where)
		if err != nil {
			return err
		}
		rows, err = record.GetByProperty[Row](ctx, cc.Source, a.column, a.value)
		if err != nil {
			return err
		}
	case opts.criteria != "":
		cc.Logger.Warn("running unparameterized criteria", "column", opts.column, "criteria", opts.criteria)
		rows, err = record.GetBySQLCriteriaUnsafe[Row](ctx, cc.Source, opts.column, opts.criteria)
		if err != nil {
			return err
		}
	case opts.query != "":
		rows, err = record.GetBySQL[Row](ctx, cc.Source, opts.query)
		if err != nil {
			return err
		}
	default:
		rows, err = record.GetAll[Row](ctx, cc.Source)
		if err != nil {
			return err
		}
	}

	return renderRows(cmd.OutOrStdout(), rows, cc.Cfg.Output)
}
