package commands

import (
	"fmt"

	"github.com/josephlewis42/coin/core/vos"
)

// Utsname holds the values reported by uname.
type Utsname struct {
	Sysname  string
	Nodename string
	Release  string
	Version  string
	Machine  string
}

// SystemInfo is the identity of the in-memory OS.
var SystemInfo = Utsname{
	Sysname:  "Linux",
	Nodename: "coin",
	Release:  "5.15.0-coin",
	Version:  "#1 SMP",
	Machine:  "x86_64",
}

// Uname implements the POSIX command by the same name.
func Uname(proc *vos.Proc) int {
	cmd := &SimpleCommand{
		Use:   "uname [OPTIONS...]",
		Short: "Display system information.",
	}

	opts := cmd.Flags()
	showAll := opts.BoolLong("all", 'a', "print all information")
	showKernelName := opts.BoolLong("kernel-name", 's', "print the kernel name")
	showNodename := opts.BoolLong("nodename", 'n', "print the network node name")
	showRelease := opts.BoolLong("kernel-release", 'r', "print the kernel release")
	showVersion := opts.BoolLong("kernel-version", 'v', "print the kernel version")
	showMachine := opts.BoolLong("machine", 'm', "print the machine name")

	return cmd.Run(proc, func() int {
		w := proc.Stdout()
		uname := SystemInfo
		anyPrinted := false
		for _, entry := range []struct {
			flag     *bool
			property string
		}{
			{showKernelName, uname.Sysname},
			{showNodename, uname.Nodename},
			{showRelease, uname.Release},
			{showVersion, uname.Version},
			{showMachine, uname.Machine},
		} {
			if *entry.flag || *showAll {
				if anyPrinted {
					fmt.Fprint(w, " ")
				}
				fmt.Fprint(w, entry.property)
				anyPrinted = true
			}
		}

		if !anyPrinted {
			fmt.Fprint(w, uname.Sysname)
		}

		fmt.Fprintln(w)

		return 0
	})
}

var _ vos.ProcessFunc = Uname

func init() {
	addBinCmd("uname", Uname)
}
