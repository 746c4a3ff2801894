package vos

import (
	"os/exec"
)

// ErrNotFound is the error resulting if a path search failed to find an executable file.
var ErrNotFound = exec.ErrNotFound

// LookPath finds the program to run for file. If file can be executed as
// typed, relative to the working directory or not, it is returned unchanged.
// Otherwise each of dirs is probed in order and the first executable
// "dir/file" wins.
//
// When nothing matches, file is returned unchanged along with ErrNotFound so
// the caller can still attempt (and fail) to run it.
func LookPath(vos VOS, dirs []string, file string) (string, error) {
	if err := vos.Access(file, AccessExecute); err == nil {
		return file, nil
	}

	for _, dir := range dirs {
		candidate := dir + "/" + file
		if err := vos.Access(candidate, AccessExecute); err == nil {
			return candidate, nil
		}
	}

	return file, ErrNotFound
}
