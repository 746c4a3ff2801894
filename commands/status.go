package commands

import (
	"fmt"
	"strconv"

	"github.com/josephlewis42/coin/core/vos"
)

// Status exits with the code given as its only argument. The interpreter
// keeps the low 8 bits.
func Status(proc *vos.Proc) int {
	cmd := &SimpleCommand{
		Use:   "status [N]",
		Short: "Exit with status N, 0 if not given.",
	}

	return cmd.Run(proc, func() int {
		args := cmd.Flags().Args()
		switch len(args) {
		case 0:
			return 0
		case 1:
			code, err := strconv.Atoi(args[0])
			if err != nil || code < 0 {
				fmt.Fprintf(proc.Stderr(), "status: %s: numeric argument required\n", args[0])
				return 2
			}
			return code
		default:
			fmt.Fprintln(proc.Stderr(), "status: too many arguments")
			return 2
		}
	})
}

var _ vos.ProcessFunc = Status

func init() {
	addBinCmd("status", Status)
}
