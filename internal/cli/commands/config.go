package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/leaprecord/internal/config"
)

// NewConfigCommand creates the config command.
func NewConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print the configuration after merging defaults, leaprecord.yaml,
LEAPRECORD_* environment variables and flags. Passwords in DSNs are masked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetConfig(cmd.Context())
			w := cmd.OutOrStdout()

			if cfg.File != "" {
				_, _ = fmt.Fprintf(w, "# config file: %s\n", cfg.File)
			}

			masked := *cfg
			masked.Connections = make(map[string]config.ConnectionConfig, len(cfg.Connections))
			for name, c := range cfg.Connections {
				c.DSN = config.MaskDSN(c.DSN)
				masked.Connections[name] = c
			}

			enc := yaml.NewEncoder(w)
			enc.SetIndent(2)
			if err := enc.Encode(&masked); err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}
			return enc.Close()
		},
	}
}
