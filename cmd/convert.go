package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"dotcov.dev/pkg/dotcov/internal/adapter"
	"dotcov.dev/pkg/dotcov/internal/domain"
	m "dotcov.dev/pkg/dotcov/internal/model"
)

var convertFormatFlag string
var convertParallelFlag int
var baseDirFlag string
var requireSourcesFlag bool

// convertCmd represents the convert command.
var convertCmd = newConvertCmd()

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <report.xml>...",
		Short: "Convert dotCover XML reports",
		Long:  convertLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := adapter.ParseStoreFormat(viper.GetString(formatConfigKey))
			if err != nil {
				return err
			}

			workflow, err := newWorkflow(cmd, false)
			if err != nil {
				return err
			}

			return workflow.Convert(cmd.Context(), domain.ConvertArgs{
				Reports: parsePaths(args),
				Output:  m.Path(viper.GetString(outputFlagName)),
				Format:  format,
				Threads: viper.GetInt(parallelConfigKey),
			})
		},
	}

	configureConvertFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func configureConvertFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&convertFormatFlag, formatFlagName, "f", viper.GetString(formatConfigKey), "output format: yaml or json")
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), formatConfigKey)

	cmd.Flags().IntVarP(&convertParallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of reports parsed in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)

	cmd.Flags().StringVar(&baseDirFlag, baseDirFlagName, viper.GetString(baseDirConfigKey), "directory relative source file names are resolved against (default: working directory)")
	bindFlagToConfig(cmd.Flags().Lookup(baseDirFlagName), baseDirConfigKey)

	cmd.Flags().BoolVar(&requireSourcesFlag, requireSourcesFlagName, viper.GetBool(requireSourcesConfigKey), "fail when a source file named in a report does not exist")
	bindFlagToConfig(cmd.Flags().Lookup(requireSourcesFlagName), requireSourcesConfigKey)
}
