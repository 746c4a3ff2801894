package shell

import (
	"fmt"

	"github.com/josephlewis42/coin/core/logger"
)

// AllBuiltins holds a list of all registered shell builtins
var AllBuiltins = make(map[string]ShellBuiltin)

// replayBuiltins are the builtins !! will run again. Anything else recalled
// by !! is only echoed.
var replayBuiltins = make(map[string]ShellBuiltin)

// ShellBuiltin is a command the session runs itself. Main reports whether the
// command was handled; unhandled commands go on to be launched.
type ShellBuiltin interface {
	Main(s *Session, args Command) bool
}

type ShellBuiltinFunc func(s *Session, args Command) bool

func (f ShellBuiltinFunc) Main(s *Session, args Command) bool {
	return f(s, args)
}

var _ ShellBuiltin = (ShellBuiltinFunc)(nil)

// Exit stops the session after the current command, arguments are ignored.
func Exit(s *Session, args Command) bool {
	s.running = false
	s.recordBuiltin(args)
	return true
}

// Cd is the cd shell builtin. Only the first argument is looked at: none or
// "~" go to HOME and "-" swaps with the previous directory.
func Cd(s *Session, args Command) bool {
	var target, token string
	var swapped string
	swap := false

	switch {
	case len(args) == 1, len(args) == 2 && args[1] == "~":
		s.oldcwd = s.getwd()
		target = s.Config.Home
		token = target
	case len(args) == 2 && args[1] == "-":
		swapped = s.getwd()
		target = s.oldcwd
		token = "-"
		swap = true
	default:
		s.oldcwd = s.getwd()
		target = args[1]
		token = target
	}

	if err := s.VirtualOS.Chdir(target); err != nil {
		reason := errorReason(err)
		s.diag.Fprintf(s.stdout(), "coin: cd: %s - could not change directory (%s)\n", target, reason)
		s.status = 1
		s.record(&logger.LogEntry{
			Type:    logger.EventChdirFailure,
			Command: []string{"cd", target},
			Error:   reason,
		})
		return true
	}

	s.cwd = s.getwd()
	if swap {
		s.oldcwd = swapped
	}
	s.status = 0
	s.remember(Command{"cd", token})
	s.recordBuiltin(Command{"cd", token})
	return true
}

// Echo handles "echo $?" and nothing else; other echo lines run the echo
// program.
func Echo(s *Session, args Command) bool {
	if len(args) != 2 || args[1] != "$?" {
		return false
	}

	fmt.Fprintf(s.stdout(), "%d\n", s.status)
	s.status = 0
	s.remember(Command{"echo", "$?"})
	s.recordBuiltin(Command{"echo", "$?"})
	return true
}

// Bang prints the previous command and runs it again if it was cd or
// "echo $?". Recalled programs are not launched.
func Bang(s *Session, args Command) bool {
	if len(s.previous) == 0 {
		return true
	}

	replay := s.previous.Clone()
	fmt.Fprintln(s.stdout(), replay.String())
	s.recordBuiltin(Command{"!!"})

	if builtin, ok := replayBuiltins[replay[0]]; ok {
		builtin.Main(s, replay)
	}
	return true
}

func init() {
	AllBuiltins["exit"] = ShellBuiltinFunc(Exit)
	AllBuiltins["cd"] = ShellBuiltinFunc(Cd)
	AllBuiltins["echo"] = ShellBuiltinFunc(Echo)
	AllBuiltins["!!"] = ShellBuiltinFunc(Bang)

	replayBuiltins["cd"] = ShellBuiltinFunc(Cd)
	replayBuiltins["echo"] = ShellBuiltinFunc(Echo)
}
