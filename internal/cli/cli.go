// Package cli implements the gridmail command line.
package cli

import "github.com/spf13/cobra"

type globalFlags struct {
	envFile      string
	templatesDir string
}

// Root returns the gridmail command tree.
func Root() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "gridmail",
		Short: "Build and send v3 Mail Send messages",
		Long: `gridmail builds SendGrid v3 Mail Send payloads from command line flags or
markdown templates and delivers them through SendGrid, Resend or the log.
Configuration is read from the environment and an optional .env file.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&g.envFile, "env-file", "", "load environment from this file (default .env if present)")
	root.PersistentFlags().StringVar(&g.templatesDir, "templates-dir", "", "directory with markdown templates and layouts/")

	root.AddCommand(SendCmd(g))
	root.AddCommand(PreviewCmd(g))
	root.AddCommand(BatchCmd(g))

	return root
}
