package commands

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leaprecord/pkg/record"
)

type saveOptions struct {
	tableFlags
	set         []string
	update      bool
	generateKey bool
}

// NewSaveCommand creates the save command.
func NewSaveCommand() *cobra.Command {
	opts := &saveOptions{}

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Insert or update one row",
		Long: `Insert a new row, or update an existing one with --update.

An update loads the row by the primary key given in --set, applies the
other assignments and writes every column back. Either form fails unless
exactly one row is affected.`,
		Example: `  leaprecord save --table users --set id=42 --set name=Ada
  leaprecord save --table users --generate-key --set name=Grace
  leaprecord save --table users --update --set id=42 --set status=inactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSave(cmd, opts)
		},
	}

	addTableFlags(cmd, &opts.tableFlags)
	cmd.Flags().StringArrayVar(&opts.set, "set", nil, "Column assignment as column=value (repeatable)")
	cmd.Flags().BoolVar(&opts.update, "update", false, "Update the existing row instead of inserting")
	cmd.Flags().BoolVar(&opts.generateKey, "generate-key", false, "Use a random UUID as the primary key when none is set")
	cmd.MarkFlagsMutuallyExclusive("update", "generate-key")

	return cmd
}

func runSave(cmd *cobra.Command, opts *saveOptions) error {
	assignments, err := parseAssignments(opts.set)
	if err != nil {
		return err
	}
	var keyValue *string
	for i := range assignments {
		if assignments[i].column == opts.key {
			keyValue = &assignments[i].value
		}
	}
	if opts.update && keyValue == nil {
		return fmt.Errorf("--update requires --set %s=<value>", opts.key)
	}

	cc, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := cc.registerRow(opts.tableFlags); err != nil {
		return err
	}

	ctx := cmd.Context()
	var row *Row
	if opts.update {
		row, err = record.GetByKey[Row](ctx, cc.Source, *keyValue)
		if errors.Is(err, record.ErrNotFound) {
			return fmt.Errorf("no row in %s with %s = %s", opts.table, opts.key, *keyValue)
		}
	} else {
		row, err = record.New[Row](cc.Source)
	}
	if err != nil {
		return err
	}

	if !opts.update && keyValue == nil && opts.generateKey {
		if err := row.Set(opts.key, uuid.NewString()); err != nil {
			return err
		}
	}
	for _, a := range assignments {
		if err := row.Set(a.column, a.value); err != nil {
			return err
		}
	}

	if err := row.Save(ctx); err != nil {
		return err
	}
	cc.Logger.Debug("row saved", "table", opts.table, "key", row.Get(opts.key), "update", opts.update)

	return renderRows(cmd.OutOrStdout(), []*Row{row}, cc.Cfg.Output)
}
