package commands

import (
	"fmt"

	"github.com/josephlewis42/coin/core/vos"
)

// Segfault fails the way a crashing program looks from a shell.
func Segfault(proc *vos.Proc) int {
	fmt.Fprintf(proc.Stdout(), "%s: Segmentation fault\n", commandName(proc))

	return 139
}

var _ vos.ProcessFunc = Segfault

func init() {
	addBinCmd("segfault", Segfault)
}
