package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/gridmail/pkg/mailer"
)

// SendCmd builds a message from flags and delivers it.
func SendCmd(g *globalFlags) *cobra.Command {
	var (
		flags  messageFlags
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a message",
		Long: `Send a message through the configured provider (MAILER_PROVIDER).
With --dry-run the payload is logged instead and nothing leaves the machine.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := LoadConfig(g.envFile)
			if err != nil {
				return err
			}

			a, err := newApp(ctx, cfg, cmd.ErrOrStderr(), appOptions{templatesDir: g.templatesDir, dryRun: dryRun})
			if err != nil {
				return err
			}
			defer a.Close()

			msg, err := flags.message(a.mailer)
			if err != nil {
				return err
			}

			ok := a.mailer.Send(ctx, msg)

			raw, err := a.mailer.RawResponses(ctx)
			if err == nil && len(raw) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), raw[len(raw)-1])
			}

			if !ok {
				errs, err := a.mailer.Errors(ctx)
				if err != nil {
					return errors.Join(mailer.ErrSendFailed, err)
				}
				return fmt.Errorf("%w: %s", mailer.ErrSendFailed, strings.Join(errs, "; "))
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "log the payload instead of sending it")

	return cmd
}
