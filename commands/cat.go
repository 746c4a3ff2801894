package commands

import (
	"io"

	"github.com/josephlewis42/coin/core/vos"
)

// Cat implements the UNIX cat command. With no files it copies stdin.
func Cat(proc *vos.Proc) int {
	cmd := &SimpleCommand{
		Use:   "cat [FILE]...",
		Short: "Concatenate FILE(s) to standard output.",
	}

	return cmd.RunE(proc, func() error {
		args := cmd.Flags().Args()
		if len(args) == 0 {
			_, err := io.Copy(proc.Stdout(), proc.Stdin())
			return err
		}

		for _, arg := range args {
			if err := catFile(proc, arg); err != nil {
				return err
			}
		}
		return nil
	})
}

func catFile(proc *vos.Proc, name string) error {
	fd, err := proc.Fs.Open(resolve(proc, name))
	if err != nil {
		return err
	}
	defer fd.Close()

	_, err = io.Copy(proc.Stdout(), fd)
	return err
}

var _ vos.ProcessFunc = Cat

func init() {
	addBinCmd("cat", Cat)
}
