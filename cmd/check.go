package cmd

import (
	"errors"
	"fmt"

	"github.com/seventv/hashparse/argparse"
	cmdErrors "github.com/seventv/hashparse/cmd/errors"
	"github.com/seventv/hashparse/cmd/ui"
	"github.com/seventv/hashparse/logger"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

type checkReport struct {
	Program string                `yaml:"program"`
	Args    []string              `yaml:"args"`
	Matches []argparse.Occurrence `yaml:"matches"`
}

var checkCmd = &cobra.Command{
	Use:   "check [-- args...]",
	Short: "Parse arguments against a manifest and print what matched",
	Long: `Parse arguments against the templates of a manifest and print every match as YAML.
Pass the arguments after "--". Without arguments you are prompted for them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		parser, err := loadParser()
		if err != nil {
			return err
		}

		if len(args) == 0 && ui.UseInteractive() {
			args, err = ui.PromptArgs(parser.Name())
			if err != nil {
				return err
			}
			if len(args) == 0 {
				logger.Warnf("no arguments given, nothing to check")
			}
		}

		logger.Debugf("checking %d arguments against %d templates", len(args), parser.Len())

		res, err := parser.Parse(args)
		if errors.Is(err, argparse.ErrHelp) {
			fmt.Fprintln(cmd.OutOrStdout(), parser.Usage())
			return nil
		}
		if err != nil {
			logger.Error(argparse.FormatError(err))
			return cmdErrors.ErrParseFailed
		}

		matches := res.Occurrences()
		logger.Infof("%d templates matched in %d arguments", len(matches), len(args))

		if args == nil {
			args = []string{}
		}

		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(&checkReport{
			Program: parser.Name(),
			Args:    args,
			Matches: matches,
		}); err != nil {
			return err
		}

		return enc.Close()
	},
}
