// Package cmd provides the root command and CLI setup for dotcov.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"dotcov.dev/pkg/dotcov/internal/adapter"
	"dotcov.dev/pkg/dotcov/internal/controller"
	"dotcov.dev/pkg/dotcov/internal/domain"
	m "dotcov.dev/pkg/dotcov/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var detector domain.FormatDetector

// reportsOutputDirFlag is a root-level flag shared by commands that read/write results.
var reportsOutputDirFlag string

// readerModeFlag selects the XML cursor implementation.
var readerModeFlag string

// verboseFlag switches logging to Debug.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	detector = domain.NewDotCoverDetector()
}

const reportArgsHelp = `Reports are dotCover XML files, as produced by
  dotCover cover ... --ReportType=XML
  dotCover report --Source=snapshot.dcvr --ReportType=XML`

const rootLongDescription = `dotcov converts dotCover XML coverage reports into per-source-file
line coverage, stores the result and summarises it.

` + reportArgsHelp

const convertLongDescription = `Convert one or more dotCover XML reports into per-file coverage.

Files referenced by several reports are merged. The result is written to the
output directory as coverage.yaml (or coverage.json).

` + reportArgsHelp

const detectLongDescription = `Check whether files are dotCover XML reports and print their version.

` + reportArgsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dotcov",
		Short: "dotCover coverage report converter",
		Long:  rootLongDescription,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if configLoadErr != nil {
				return fmt.Errorf("read %s: %w", configFileName, configLoadErr)
			}

			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for converted coverage results",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringVar(&readerModeFlag, modeFlagName, viper.GetString(modeConfigKey), "XML reader: stream (single pass) or dom (in memory)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(modeFlagName), modeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

// newWorkflow assembles the workflow from the current configuration.
func newWorkflow(cmd *cobra.Command, interactive bool) (domain.Workflow, error) {
	mode, err := adapter.ParseCursorMode(viper.GetString(modeConfigKey))
	if err != nil {
		return nil, err
	}

	parser := domain.NewDotCoverParser(fsAdapter, domain.ParseOptions{
		BaseDir:        m.Path(viper.GetString(baseDirConfigKey)),
		RequireSources: viper.GetBool(requireSourcesConfigKey),
	})

	return domain.NewWorkflow(
		adapter.NewLocalReportReader(mode),
		reportStore,
		fsAdapter,
		controller.NewUI(cmd, interactive),
		detector,
		parser,
	), nil
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
