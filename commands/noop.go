package commands

import (
	"fmt"

	"github.com/josephlewis42/coin/core/vos"
)

// NoOpCommand describes a command that ignores its input.
type NoOpCommand struct {
	Name     string
	Use      string
	Short    string
	Stdout   string
	ExitCode int
}

// ToCommand converts the no-op command description to a functioning command.
func (c *NoOpCommand) ToCommand() vos.ProcessFunc {
	return func(proc *vos.Proc) int {
		cmd := &SimpleCommand{
			Use:   c.Use,
			Short: c.Short,
			// Never bail, even if args are bad.
			NeverBail: true,
		}

		return cmd.Run(proc, func() int {
			if c.Stdout != "" {
				fmt.Fprintln(proc.Stdout(), c.Stdout)
			}

			return c.ExitCode
		})
	}
}

var noOpBinCommands = []NoOpCommand{
	{
		Name:  "true",
		Use:   "true",
		Short: "Do nothing, successfully.",
	},
	{
		Name:     "false",
		Use:      "false",
		Short:    "Do nothing, unsuccessfully.",
		ExitCode: 1,
	},
}

func init() {
	for _, cmd := range noOpBinCommands {
		addBinCmd(cmd.Name, cmd.ToCommand())
	}
}
