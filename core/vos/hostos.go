package vos

import (
	"errors"
	"io/fs"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// HostOS is the real operating system.
type HostOS struct{}

var _ VOS = HostOS{}

// Getwd implements VOS.Getwd.
func (HostOS) Getwd() (string, error) {
	return unix.Getwd()
}

// Chdir implements VOS.Chdir.
func (HostOS) Chdir(dir string) error {
	if err := unix.Chdir(dir); err != nil {
		return &fs.PathError{Op: "chdir", Path: dir, Err: err}
	}
	return nil
}

// Access implements VOS.Access.
func (HostOS) Access(path string, mode uint32) error {
	if err := unix.Access(path, mode); err != nil {
		return &fs.PathError{Op: "access", Path: path, Err: err}
	}
	return nil
}

// StartProcess implements VOS.StartProcess. The path is used exactly as
// given, no search is performed.
func (HostOS) StartProcess(path string, argv []string, attr *ProcAttr) (Process, error) {
	files := attr.Files
	if files == nil {
		files = NewNullIO()
	}

	cmd := &exec.Cmd{
		Path:   path,
		Args:   argv,
		Env:    append([]string{}, attr.Env...),
		Stdin:  files.Stdin(),
		Stdout: files.Stdout(),
		Stderr: files.Stderr(),
	}

	// Start returns after the child has either replaced its image or reported
	// why it couldn't.
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	return &hostProcess{cmd: cmd}, nil
}

type hostProcess struct {
	cmd *exec.Cmd
}

func (p *hostProcess) Pid() int {
	return p.cmd.Process.Pid
}

// Wait blocks until the child exits. Interrupted waits are retried by the
// runtime, so a signal delivered to the interpreter never abandons a child.
func (p *hostProcess) Wait() (WaitStatus, error) {
	err := p.cmd.Wait()

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		// I/O copying failed but the process may still have a status.
		if p.cmd.ProcessState == nil {
			return ExitedWith(1), err
		}
	}

	ws, ok := p.cmd.ProcessState.Sys().(syscall.WaitStatus)
	if !ok {
		return ExitedWith(p.cmd.ProcessState.ExitCode()), nil
	}
	return WaitStatus(uint32(ws)), nil
}
