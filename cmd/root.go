package cmd

import (
	"errors"
	"os"

	"github.com/fatih/color"
	"github.com/seventv/hashparse/cmd/args"
	cmdErrors "github.com/seventv/hashparse/cmd/errors"
	"github.com/seventv/hashparse/cmd/ui"
	"github.com/seventv/hashparse/constants"
	"github.com/seventv/hashparse/logger"
	"github.com/seventv/hashparse/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var Args = args.Args

func init() {
	rootCmd.PersistentFlags().BoolVar(&Args.Debug, "debug", false, "Enable debug mode (traces every matched argument)")
	rootCmd.PersistentFlags().BoolVar(&Args.NonInteractive, "term", false, "Disable interactive mode")
	rootCmd.PersistentFlags().StringVarP(&Args.File, "file", "f", constants.DefaultManifest, "Parser manifest to use, - for stdin")

	wd, _ := os.Getwd()
	Args.Context = wd

	cobra.OnInitialize(func() {
		logger.SetDebug(Args.Debug)
		ManifestFuture.Reset()
	})
}

// manifestPath resolves the --file flag against the working directory.
func manifestPath() string {
	return utils.MergeRelativePath(Args.Context, Args.File)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, cmdErrors.ErrParseFailed) {
			logger.Errorf("%s", err.Error())
		}

		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   constants.ProgramName,
	Short: "hp is a hash based command line argument parser",
	Long: `hp resolves command line arguments against declared templates in a single pass,
checking value counts and subcommand context, and generates the --help listing.`,
	Args:          ui.SubCommandRequired(cobra.NoArgs),
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		zap.S().Infof("* %s *\r", color.CyanString("hp"))

		cmds := make([]ui.SelectableCommand, 0, len(cmd.Commands()))
		for _, cmd := range cmd.Commands() {
			if !cmd.Hidden && cmd.Name() != "help" {
				cmds = append(cmds, ui.CmdSelectable(cmd))
			}
		}

		return ui.RunSubCommand(cmd, cmds)
	},
}
