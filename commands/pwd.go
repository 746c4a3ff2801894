package commands

import (
	"fmt"

	"github.com/josephlewis42/coin/core/vos"
)

// Pwd implements the UNIX pwd command.
func Pwd(proc *vos.Proc) int {
	cmd := &SimpleCommand{
		Use:   "pwd",
		Short: "Print the name of the current working directory.",
	}

	return cmd.Run(proc, func() int {
		fmt.Fprintln(proc.Stdout(), proc.Dir)
		return 0
	})
}

var _ vos.ProcessFunc = Pwd

func init() {
	addBinCmd("pwd", Pwd)
}
