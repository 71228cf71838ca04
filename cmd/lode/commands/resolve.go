package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/lode/internal/app"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [entry]",
		Short: "Resolve the module graph rooted at an entry specifier",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry := ""
			if len(args) > 0 {
				entry = args[0]
			}
			workdir, _ := cmd.Flags().GetString("workdir")
			reportPath, _ := cmd.Flags().GetString("report")
			progress, _ := cmd.Flags().GetBool("progress")
			return c.app.Run(cmd.Context(), app.RunOptions{
				Entry:      entry,
				Workdir:    workdir,
				ReportPath: reportPath,
				Progress:   progress,
			})
		},
	}
	cmd.Flags().StringP("workdir", "w", "", "Directory to start lodefile discovery from")
	cmd.Flags().StringP("report", "r", "", "Write a JSON resolution report to this path")
	cmd.Flags().BoolP("progress", "p", false, "Show terminal progress output")
	return cmd
}
