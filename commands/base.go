// Package commands holds the programs installed in the in-memory OS used by
// coin playground.
package commands

import (
	"fmt"
	"io"
	"path"
	"sort"

	getopt "github.com/pborman/getopt/v2"

	"github.com/josephlewis42/coin/core/vos"
)

// AllCommands holds a list of all registered commands keyed by path.
var AllCommands = make(map[string]vos.ProcessFunc)

// addBinCmd adds a command under /bin and /usr/bin.
func addBinCmd(name string, cmd vos.ProcessFunc) {
	AllCommands[path.Join("/bin", name)] = cmd
	AllCommands[path.Join("/usr/bin", name)] = cmd
}

// Install places every registered command in memOS.
func Install(memOS *vos.MemOS) error {
	var paths []string
	for p := range AllCommands {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, p := range paths {
		if err := memOS.Install(p, AllCommands[p]); err != nil {
			return fmt.Errorf("installing %s: %w", p, err)
		}
	}
	return nil
}

type SimpleCommand struct {
	// Use holds a one line usage string
	Use string
	// Short holds a one line description of the command.
	Short string
	// ShowHelp sets whether help is displayed or not.
	// If this is non-nil when Run() is called, then the default help flag isn't
	// added.
	ShowHelp *bool
	// NeverBail skips interacting with stdout/stderr on failure and
	// always runs the callback.
	NeverBail bool

	flags *getopt.Set
}

// Flags gets the command's flag set.
func (s *SimpleCommand) Flags() *getopt.Set {
	if s.flags == nil {
		s.flags = getopt.New()
	}

	return s.flags
}

// PrintHelp writes help for the command to the given writer.
func (s *SimpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, s.Use)
	fmt.Fprintln(w, s.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	s.Flags().PrintOptions(w)
}

// Run the command, if flag parsing was succcessful call the callback.
func (s *SimpleCommand) Run(proc *vos.Proc, callback func() int) int {
	opts := s.Flags()

	// Add help flag if not overridden.
	if s.ShowHelp == nil {
		s.ShowHelp = opts.BoolLong("help", 'h', "show this help and exit")
	}

	err := opts.Getopt(proc.Args, nil)
	if err != nil && !s.NeverBail {
		fmt.Fprintf(proc.Stderr(), "error: %s\n\n", err)

		s.PrintHelp(proc.Stdout())
		return 1
	}

	if *s.ShowHelp {
		s.PrintHelp(proc.Stdout())
		return 0
	}

	return callback()
}

// RunE is like Run but reports a returned error on stderr and exits 1.
func (s *SimpleCommand) RunE(proc *vos.Proc, callback func() error) int {
	return s.Run(proc, func() int {
		if err := callback(); err != nil {
			fmt.Fprintf(proc.Stderr(), "%s: %v\n", commandName(proc), err)
			return 1
		}
		return 0
	})
}

// RunEachArg calls callback for every positional argument. Failures are
// reported as they happen and make the command exit 1.
func (s *SimpleCommand) RunEachArg(proc *vos.Proc, callback func(string) error) int {
	return s.Run(proc, func() int {
		code := 0
		for _, arg := range s.Flags().Args() {
			if err := callback(arg); err != nil {
				fmt.Fprintf(proc.Stderr(), "%s: %v\n", commandName(proc), err)
				code = 1
			}
		}
		return code
	})
}

func commandName(proc *vos.Proc) string {
	if len(proc.Args) == 0 {
		return ""
	}
	return path.Base(proc.Args[0])
}

// resolve makes p absolute against the process's working directory.
func resolve(proc *vos.Proc, p string) string {
	if path.IsAbs(p) {
		return path.Clean(p)
	}
	return path.Join(proc.Dir, p)
}
