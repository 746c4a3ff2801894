package vos

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"syscall"

	"github.com/spf13/afero"
)

// ProcessFunc is the body of a program installed in a MemOS. It returns the
// program's exit code.
type ProcessFunc func(proc *Proc) int

// Proc is the view a ProcessFunc has of its own process.
type Proc struct {
	VIO

	// Args holds the argv the program was started with.
	Args []string
	// Env holds the complete environment of the program.
	Env []string
	// Dir is the working directory at the time of the start.
	Dir string
	// Fs is the filesystem of the OS the program runs in.
	Fs afero.Fs
}

// Getenv returns the value of key in the program's environment.
func (p *Proc) Getenv(key string) string {
	prefix := key + "="
	for i := len(p.Env) - 1; i >= 0; i-- {
		if len(p.Env[i]) >= len(prefix) && p.Env[i][:len(prefix)] == prefix {
			return p.Env[i][len(prefix):]
		}
	}
	return ""
}

// MemOS is an in-memory OS. Its filesystem is an afero.Fs and its executables
// are Go functions registered by absolute path.
type MemOS struct {
	fs       afero.Fs
	cwd      string
	programs map[string]ProcessFunc
	lastPid  int
}

var _ VOS = (*MemOS)(nil)

// NewMemOS creates an OS over vfs with the working directory at /.
func NewMemOS(vfs afero.Fs) *MemOS {
	if vfs == nil {
		vfs = afero.NewMemMapFs()
	}

	return &MemOS{
		fs:       vfs,
		cwd:      "/",
		programs: make(map[string]ProcessFunc),
		lastPid:  1,
	}
}

// Fs returns the backing filesystem.
func (m *MemOS) Fs() afero.Fs {
	return m.fs
}

// Install places an executable at the absolute path p.
func (m *MemOS) Install(p string, fn ProcessFunc) error {
	if !path.IsAbs(p) {
		return fmt.Errorf("install %q: path must be absolute", p)
	}
	p = path.Clean(p)
	if err := m.fs.MkdirAll(path.Dir(p), 0755); err != nil {
		return err
	}

	script := fmt.Sprintf("#!%s\n", p)
	if err := afero.WriteFile(m.fs, p, []byte(script), 0755); err != nil {
		return err
	}
	// WriteFile only applies the mode when it creates the file.
	if err := m.fs.Chmod(p, 0755); err != nil {
		return err
	}

	m.programs[p] = fn
	return nil
}

// Programs lists the paths of installed executables in sorted order.
func (m *MemOS) Programs() []string {
	var out []string
	for p := range m.programs {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

func (m *MemOS) abs(p string) string {
	if !path.IsAbs(p) {
		p = path.Join(m.cwd, p)
	}
	return path.Clean(p)
}

// Getwd implements VOS.Getwd.
func (m *MemOS) Getwd() (string, error) {
	return m.cwd, nil
}

// Chdir implements VOS.Chdir.
func (m *MemOS) Chdir(dir string) error {
	target := m.abs(dir)
	info, err := m.fs.Stat(target)
	switch {
	case err != nil:
		return &fs.PathError{Op: "chdir", Path: dir, Err: syscall.ENOENT}
	case !info.IsDir():
		return &fs.PathError{Op: "chdir", Path: dir, Err: syscall.ENOTDIR}
	case info.Mode()&0111 == 0:
		return &fs.PathError{Op: "chdir", Path: dir, Err: syscall.EACCES}
	}

	m.cwd = target
	return nil
}

// Access implements VOS.Access using the permission bits alone.
func (m *MemOS) Access(p string, mode uint32) error {
	info, err := m.fs.Stat(m.abs(p))
	if err != nil {
		return &fs.PathError{Op: "access", Path: p, Err: syscall.ENOENT}
	}
	if mode&AccessExecute != 0 && info.Mode()&0111 == 0 {
		return &fs.PathError{Op: "access", Path: p, Err: syscall.EACCES}
	}
	return nil
}

// StartProcess implements VOS.StartProcess.
func (m *MemOS) StartProcess(p string, argv []string, attr *ProcAttr) (Process, error) {
	if err := m.Access(p, AccessExecute); err != nil {
		return nil, &fs.PathError{Op: "fork/exec", Path: p, Err: errnoOf(err)}
	}

	resolved := m.abs(p)
	if info, err := m.fs.Stat(resolved); err == nil && info.IsDir() {
		return nil, &fs.PathError{Op: "fork/exec", Path: p, Err: syscall.EACCES}
	}
	fn, ok := m.programs[resolved]
	if !ok {
		return nil, &fs.PathError{Op: "fork/exec", Path: p, Err: syscall.ENOEXEC}
	}

	files := attr.Files
	if files == nil {
		files = NewNullIO()
	}

	m.lastPid++
	return &memProcess{
		pid: m.lastPid,
		fn:  fn,
		proc: &Proc{
			VIO:  files,
			Args: append([]string{}, argv...),
			Env:  append([]string{}, attr.Env...),
			Dir:  m.cwd,
			Fs:   m.fs,
		},
	}, nil
}

func errnoOf(err error) error {
	if pe, ok := err.(*fs.PathError); ok {
		return pe.Err
	}
	return err
}

type memProcess struct {
	pid    int
	fn     ProcessFunc
	proc   *Proc
	status *WaitStatus
}

func (p *memProcess) Pid() int {
	return p.pid
}

// Wait runs the program to completion the first time it's called.
func (p *memProcess) Wait() (WaitStatus, error) {
	if p.status == nil {
		status := ExitedWith(p.fn(p.proc))
		p.status = &status
	}
	return *p.status, nil
}
