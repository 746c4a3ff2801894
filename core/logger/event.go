package logger

// EventType identifies what happened in a session.
type EventType string

const (
	// EventBuiltin is a command the interpreter handled itself.
	EventBuiltin EventType = "builtin"
	// EventLaunch is an attempt to run an external program.
	EventLaunch EventType = "launch"
	// EventChdirFailure is a cd that couldn't change directory.
	EventChdirFailure EventType = "chdir_failure"
	// EventInterrupt is an input line abandoned because of SIGINT.
	EventInterrupt EventType = "interrupt"
	// EventEndOfInput is the end of the session's input.
	EventEndOfInput EventType = "end_of_input"
)

// LogEntry is a single event.
type LogEntry struct {
	TimestampMicros int64     `json:"timestamp_micros"`
	SessionID       string    `json:"session_id,omitempty"`
	Type            EventType `json:"type"`

	// Command holds the tokens of the command the event is about.
	Command []string `json:"command,omitempty"`
	// ResolvedPath is the program path a launch used.
	ResolvedPath string `json:"resolved_path,omitempty"`
	// Status is the exit status recorded after the event.
	Status int `json:"status"`
	// Error holds the reason for a failure, if any.
	Error string `json:"error,omitempty"`
	// Signal is the signal number that killed a launched program.
	Signal int `json:"signal,omitempty"`
}

// CommandName returns the first token of the command or the empty string.
func (le *LogEntry) CommandName() string {
	if len(le.Command) == 0 {
		return ""
	}
	return le.Command[0]
}
