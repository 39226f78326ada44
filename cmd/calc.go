package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/seventv/hashparse/argparse"
	"github.com/seventv/hashparse/calc"
	cmdErrors "github.com/seventv/hashparse/cmd/errors"
	"github.com/seventv/hashparse/logger"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(calcCmd)
}

var calcCmd = &cobra.Command{
	Use:   "calc [operator numbers...]...",
	Short: "Evaluate add/sub/mul/div operators left to right",
	Long: `Evaluate operators left to right from a total of 0. Every operator takes
any number of values, e.g. "hp calc add 2 2 mul 3" prints 12.`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := calc.New()

		total, err := c.Run(args)
		if errors.Is(err, argparse.ErrHelp) {
			fmt.Fprintln(cmd.OutOrStdout(), c.Usage())
			return nil
		}
		if err != nil {
			logger.Error(argparse.FormatError(err))
			return cmdErrors.ErrParseFailed
		}

		fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(total, 'g', -1, 64))

		return nil
	},
}
