package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// BatchCmd mints a batch id for grouping scheduled sends.
func BatchCmd(g *globalFlags) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Create a batch id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := LoadConfig(g.envFile)
			if err != nil {
				return err
			}

			a, err := newApp(ctx, cfg, cmd.ErrOrStderr(), appOptions{dryRun: dryRun})
			if err != nil {
				return err
			}
			defer a.Close()

			id, err := a.mailer.CreateBatchID(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "generate a local id instead of calling the provider")

	return cmd
}
