package cmd

import (
	"github.com/spf13/cobra"

	"dotcov.dev/pkg/dotcov/internal/domain"
)

// detectCmd represents the detect command.
var detectCmd = newDetectCmd()

func newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <report.xml>...",
		Short: "Detect dotCover XML reports",
		Long:  detectLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workflow, err := newWorkflow(cmd, false)
			if err != nil {
				return err
			}

			return workflow.Detect(cmd.Context(), domain.DetectArgs{Reports: parsePaths(args)})
		},
	}
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
