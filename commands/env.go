package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/josephlewis42/coin/core/vos"
)

// Env prints the environment the interpreter gave the program, sorted by
// name. -u hides a variable and -0 ends each entry with NUL instead of a
// newline.
func Env(proc *vos.Proc) int {
	cmd := &SimpleCommand{
		Use:   "env [-0] [-u NAME] ...",
		Short: "Print the program environment.",
	}

	opt := cmd.Flags()
	nulTerminated := opt.Bool('0', "end each output line with NUL, not newline")
	unset := opt.List('u', "remove variable from the environment", "NAME")

	return cmd.Run(proc, func() int {
		if len(opt.Args()) > 0 {
			fmt.Fprintf(proc.Stderr(), "env: running programs is not supported: %s\n", opt.Arg(0))
			return 125
		}

		hidden := make(map[string]bool)
		for _, name := range *unset {
			hidden[name] = true
		}

		terminator := "\n"
		if *nulTerminated {
			terminator = "\x00"
		}

		var vars []string
		for _, kv := range proc.Env {
			name, _, _ := strings.Cut(kv, "=")
			if !hidden[name] {
				vars = append(vars, kv)
			}
		}
		sort.Strings(vars)

		w := proc.Stdout()
		for _, kv := range vars {
			fmt.Fprint(w, kv, terminator)
		}
		return 0
	})
}

var _ vos.ProcessFunc = Env

func init() {
	addBinCmd("env", Env)
}
