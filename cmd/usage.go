package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(usageCmd)
}

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Print the generated help of a manifest",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		parser, err := loadParser()
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), parser.Usage())

		return nil
	},
}
