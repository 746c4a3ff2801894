// Package vostest holds helpers for running programs in a deterministic OS.
package vostest

import (
	"bytes"
	"io"

	"github.com/josephlewis42/coin/core/vos"
)

// NewDeterministicOS returns an in-memory OS with the given programs
// installed, keyed by absolute path.
func NewDeterministicOS(programs map[string]vos.ProcessFunc) (*vos.MemOS, error) {
	memOS := vos.NewMemOS(nil)
	for p, fn := range programs {
		if err := memOS.Install(p, fn); err != nil {
			return nil, err
		}
	}
	return memOS, nil
}

// Cmd is similar to exec.Cmd.
type Cmd struct {
	// Process function
	Process vos.ProcessFunc
	// Process arguments, the first argument should be the process name.
	Argv []string
	// Env gives the environment variables for the new process in the form
	// returned by Environ.
	Env []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	ExitStatus int

	// Setup runs against the OS before the process starts.
	Setup func(*vos.MemOS) error
}

// Command builds a Cmd that runs process as /bin/<name>.
func Command(process vos.ProcessFunc, name string, arg ...string) *Cmd {
	return &Cmd{
		Process: process,
		Argv:    append([]string{name}, arg...),
	}
}

// CombinedOutput runs the command and returns stdout and stderr interleaved.
func (c *Cmd) CombinedOutput() ([]byte, error) {
	buf := &bytes.Buffer{}
	c.Stdout = buf
	c.Stderr = buf

	err := c.Run()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Run starts the comand and waits for it to complete.
func (c *Cmd) Run() error {
	binPath := "/bin/" + c.Argv[0]
	memOS, err := NewDeterministicOS(map[string]vos.ProcessFunc{binPath: c.Process})
	if err != nil {
		return err
	}

	if c.Setup != nil {
		if err := c.Setup(memOS); err != nil {
			return err
		}
	}

	proc, err := memOS.StartProcess(binPath, c.Argv, &vos.ProcAttr{
		Env:   c.Env,
		Files: vos.NewVIOAdapter(c.Stdin, c.Stdout, c.Stderr),
	})
	if err != nil {
		return err
	}

	status, err := proc.Wait()
	if err != nil {
		return err
	}
	c.ExitStatus = status.ExitStatus()
	return nil
}
