package commands

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// pingConcurrency bounds how many connections are checked at once.
const pingConcurrency = 4

type pingResult struct {
	name    string
	elapsed time.Duration
	err     error
}

// NewPingCommand creates the ping command.
func NewPingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ping [connection...]",
		Short: "Check that connections are reachable",
		Long: `Open and ping each named connection, or every configured connection
when none is given. Exits with an error if any connection fails.`,
		RunE: runPing,
	}
}

func runPing(cmd *cobra.Command, args []string) error {
	cc, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	names := args
	if len(names) == 0 {
		names = cc.Source.Connections()
	}

	results := make([]pingResult, len(names))
	var g errgroup.Group
	g.SetLimit(pingConcurrency)
	for i, name := range names {
		g.Go(func() error {
			start := time.Now()
			err := cc.Source.Ping(cmd.Context(), name)
			results[i] = pingResult{name: name, elapsed: time.Since(start), err: err}
			return err
		})
	}
	waitErr := g.Wait()

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"connection", "status", "time"})
	for _, r := range results {
		status := "ok"
		if r.err != nil {
			status = "FAILED: " + r.err.Error()
		}
		t.AppendRow(table.Row{r.name, status, r.elapsed.Round(time.Millisecond)})
	}
	t.Render()

	if waitErr != nil {
		return fmt.Errorf("connection check failed: %w", waitErr)
	}
	return nil
}
