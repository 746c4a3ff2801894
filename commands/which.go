package commands

import (
	"fmt"
	"strings"

	"github.com/josephlewis42/coin/core/vos"
)

// Which implements the UNIX which command over the directories in PATH.
func Which(proc *vos.Proc) int {
	cmd := &SimpleCommand{
		Use:   "which [COMMAND...]",
		Short: "Locate a command.",
		// Never bail, even if args are bad.
		NeverBail: true,
	}

	return cmd.RunEachArg(proc, func(arg string) error {
		if strings.Contains(arg, "/") {
			if !isExecutable(proc, arg) {
				return fmt.Errorf("no %s", arg)
			}
			fmt.Fprintln(proc.Stdout(), arg)
			return nil
		}

		for _, dir := range strings.Split(proc.Getenv("PATH"), ":") {
			if dir == "" {
				continue
			}
			if candidate := dir + "/" + arg; isExecutable(proc, candidate) {
				fmt.Fprintln(proc.Stdout(), candidate)
				return nil
			}
		}
		return fmt.Errorf("no %s in (%s)", arg, proc.Getenv("PATH"))
	})
}

func isExecutable(proc *vos.Proc, p string) bool {
	info, err := proc.Fs.Stat(resolve(proc, p))
	return err == nil && !info.IsDir() && info.Mode()&0111 != 0
}

var _ vos.ProcessFunc = Which

func init() {
	addBinCmd("which", Which)
}
