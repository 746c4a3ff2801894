package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/josephlewis42/coin/core/vos"
)

// Hostname implements the Linux command by the same name. The name comes
// from /etc/hostname when it exists.
func Hostname(proc *vos.Proc) int {
	cmd := &SimpleCommand{
		Use:   "hostname",
		Short: "Show the system's hostname.",
		// Never bail, even if flags are bad.
		NeverBail: true,
	}

	return cmd.Run(proc, func() int {
		host := SystemInfo.Nodename
		if data, err := afero.ReadFile(proc.Fs, "/etc/hostname"); err == nil {
			if name := strings.TrimSpace(string(data)); name != "" {
				host = name
			}
		}

		fmt.Fprintln(proc.Stdout(), host)
		return 0
	})
}

var _ vos.ProcessFunc = Hostname

func init() {
	addBinCmd("hostname", Hostname)
}
