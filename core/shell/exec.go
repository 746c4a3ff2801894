package shell

import (
	"errors"
	"io/fs"

	"github.com/josephlewis42/coin/core/logger"
	"github.com/josephlewis42/coin/core/vos"
)

// launch resolves the program and runs it to completion in the foreground.
func (s *Session) launch(cmd Command) {
	resolved, lookErr := vos.LookPath(s.VirtualOS, s.Config.SearchDirs, cmd[0])

	argv := cmd.Clone()
	argv[0] = resolved

	ws, err := s.execute(argv)
	s.status = ws.ExitStatus()
	s.remember(argv)

	entry := &logger.LogEntry{
		Type:         logger.EventLaunch,
		Command:      cmd.Clone(),
		ResolvedPath: resolved,
		Signal:       ws.Signal(),
	}
	switch {
	case lookErr != nil:
		entry.Error = lookErr.Error()
	case err != nil:
		entry.Error = errorReason(err)
	}
	s.record(entry)
}

// execute starts argv[0] with the configured environment and the session's
// stdio and waits for it.
func (s *Session) execute(argv Command) (vos.WaitStatus, error) {
	proc, err := s.VirtualOS.StartProcess(argv[0], argv, &vos.ProcAttr{
		Env:   s.Config.Environ(),
		Files: s.Files,
	})
	if err != nil {
		// Same outcome as a child whose exec failed.
		return vos.ExitedWith(1), err
	}

	ws, err := proc.Wait()
	if err != nil {
		s.Log.Printf("waiting for %s: %v", argv[0], err)
	}
	return ws, nil
}

// errorReason strips the operation and path from err, leaving the OS's
// description of what went wrong.
func errorReason(err error) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	return err.Error()
}
