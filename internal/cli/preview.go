package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// PreviewCmd prints the payload a send would submit.
func PreviewCmd(g *globalFlags) *cobra.Command {
	var flags messageFlags

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the JSON payload without sending",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := LoadConfig(g.envFile)
			if err != nil {
				return err
			}

			a, err := newApp(ctx, cfg, cmd.ErrOrStderr(), appOptions{templatesDir: g.templatesDir, dryRun: true})
			if err != nil {
				return err
			}
			defer a.Close()

			msg, err := flags.message(a.mailer)
			if err != nil {
				return err
			}

			payload, err := msg.Build(ctx)
			if err != nil {
				return err
			}
			out, err := payload.JSON(true)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}
