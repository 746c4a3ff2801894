// Package vos is the slice of the operating system the interpreter needs:
// a working directory, permission checks and process creation.
package vos

import (
	"io"
)

// AccessExecute asks Access whether a path may be executed. It has the same
// value as X_OK.
const AccessExecute uint32 = 0x1

// VOS provides a virtual OS interface.
type VOS interface {
	// Getwd returns the working directory as the kernel reports it.
	Getwd() (string, error)

	// Chdir changes the working directory.
	Chdir(dir string) error

	// Access checks the calling user's permission to use path. Relative paths
	// are resolved against the working directory.
	Access(path string, mode uint32) error

	// StartProcess starts the program at path with the given argv. It returns
	// once the program image has been loaded or failed to load.
	StartProcess(path string, argv []string, attr *ProcAttr) (Process, error)
}

// ProcAttr holds the attributes that will be applied to a new process.
type ProcAttr struct {
	// Env is the complete environment of the process, nothing is inherited.
	Env []string

	// Files holds the standard streams of the process.
	Files VIO
}

// Process is a started program.
type Process interface {
	// Pid returns the process ID.
	Pid() int

	// Wait blocks until the process terminates.
	Wait() (WaitStatus, error)
}

// WaitStatus is a raw status word in the layout wait(2) produces.
type WaitStatus uint32

// ExitedWith builds the status of a process that exited with code.
func ExitedWith(code int) WaitStatus {
	return WaitStatus(uint32(code&0xff) << 8)
}

// ExitStatus extracts the low 8 bits of the exit code.
func (w WaitStatus) ExitStatus() int {
	return int((uint32(w) >> 8) & 0xff)
}

// Signaled reports whether the process was terminated by a signal.
func (w WaitStatus) Signaled() bool {
	sig := uint32(w) & 0x7f
	return sig != 0 && sig != 0x7f
}

// Signal returns the signal that terminated the process, or 0 if it exited.
func (w WaitStatus) Signal() int {
	if !w.Signaled() {
		return 0
	}
	return int(uint32(w) & 0x7f)
}

// VIO holds the standard streams of a process.
type VIO interface {
	Stdin() io.ReadCloser
	Stdout() io.WriteCloser
	Stderr() io.WriteCloser
}
