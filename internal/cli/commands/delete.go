package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leaprecord/pkg/record"
)

type deleteOptions struct {
	tableFlags
	id string
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand() *cobra.Command {
	opts := &deleteOptions{}

	cmd := &cobra.Command{
		Use:     "delete",
		Short:   "Delete one row by primary key",
		Example: `  leaprecord delete --table users --id 42`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDelete(cmd, opts)
		},
	}

	addTableFlags(cmd, &opts.tableFlags)
	cmd.Flags().StringVar(&opts.id, "id", "", "Primary key value of the row")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func runDelete(cmd *cobra.Command, opts *deleteOptions) error {
	cc, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := cc.registerRow(opts.tableFlags); err != nil {
		return err
	}

	row, err := record.GetByKey[Row](cmd.Context(), cc.Source, opts.id)
	if errors.Is(err, record.ErrNotFound) {
		return fmt.Errorf("no row in %s with %s = %s", opts.table, opts.key, opts.id)
	}
	if err != nil {
		return err
	}

	if err := row.Delete(cmd.Context()); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted 1 row from %s\n", opts.table)
	return nil
}
