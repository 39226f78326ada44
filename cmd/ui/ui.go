package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/seventv/hashparse/cmd/args"
	cmdErrors "github.com/seventv/hashparse/cmd/errors"
	"github.com/seventv/hashparse/constants"
	"github.com/seventv/hashparse/logger"
	"github.com/seventv/hashparse/types"
	"github.com/seventv/hashparse/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var faintColor = color.New(color.Faint)

func UseInteractive() bool {
	return !args.Args.NonInteractive && constants.InTerm() && !constants.StdinUsed()
}

type SelectableCommand interface {
	types.Selectable
	Command() *cobra.Command
}

func CmdSelectable(cmd *cobra.Command) SelectableCommand {
	return cmdSelectable{
		Cmd: cmd,
	}
}

type cmdSelectable struct {
	Cmd *cobra.Command
}

func (c cmdSelectable) Command() *cobra.Command {
	return c.Cmd
}

func (c cmdSelectable) Label() string {
	return fmt.Sprintf("%s %s", color.CyanString(c.Cmd.Name()), faintColor.Sprint(c.Cmd.Short))
}

func (c cmdSelectable) Selected() string {
	return c.Cmd.Name()
}

func (c cmdSelectable) Details() string {
	return ""
}

func (c cmdSelectable) Match(input string) bool {
	return strings.Contains(c.Cmd.Name(), strings.ToLower(input))
}

// SubCommandRequired rejects a bare root invocation unless the command can
// be picked interactively.
func SubCommandRequired(next ...cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if !UseInteractive() {
			return cmdErrors.ErrSubcommandRequired
		}

		for _, f := range next {
			if err := f(cmd, args); err != nil {
				return err
			}
		}

		return nil
	}
}

// RunSubCommand lets the user pick one of cmds and runs it without
// arguments.
func RunSubCommand(cmd *cobra.Command, cmds []SelectableCommand) error {
	items := make([]types.Selectable, len(cmds))
	for i, c := range cmds {
		items[i] = c
	}

	logger.Rewrite()

	idx, err := utils.Selector("Select a command", false, items)
	if err != nil {
		return err
	}

	c := cmds[idx].Command()
	cmd.Root().SetArgs([]string{c.Name()})

	return cmd.Root().Execute()
}

// PromptArgs asks for an argument line and splits it on whitespace. An
// aborted prompt yields no arguments.
func PromptArgs(program string) ([]string, error) {
	line, err := utils.Prompt(utils.PromptMessage[string]{
		Label: fmt.Sprintf("%s arguments", program),
	})
	if err == promptui.ErrAbort || err == promptui.ErrInterrupt {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	zap.S().Infof("%s: %s", faintColor.Sprint("arguments"), line)

	return utils.SplitArgs(line), nil
}
