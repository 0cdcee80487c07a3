package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"dotcov.dev/pkg/dotcov/internal/controller"
	"dotcov.dev/pkg/dotcov/internal/domain"
	m "dotcov.dev/pkg/dotcov/internal/model"
)

var viewTUIFlag bool

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously converted coverage",
		Long:  "View coverage results previously written by convert to the output directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			interactive := viper.GetBool(tuiConfigKey) && controller.IsTTY(os.Stdout)

			workflow, err := newWorkflow(cmd, interactive)
			if err != nil {
				return err
			}

			return workflow.View(cmd.Context(), domain.ViewArgs{Output: m.Path(viper.GetString(outputFlagName))})
		},
	}

	cmd.Flags().BoolVar(&viewTUIFlag, tuiFlagName, viper.GetBool(tuiConfigKey), "browse results in an interactive table when attached to a terminal")
	bindFlagToConfig(cmd.Flags().Lookup(tuiFlagName), tuiConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
