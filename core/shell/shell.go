// Package shell implements the coin command loop: read a line, split it on
// spaces, run a builtin or launch a program, repeat.
package shell

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/josephlewis42/coin/core/config"
	"github.com/josephlewis42/coin/core/logger"
	"github.com/josephlewis42/coin/core/vos"
)

// Session holds all state of one interpreter run. It is owned by the
// goroutine calling Run.
type Session struct {
	VirtualOS vos.VOS
	Config    *config.Configuration
	Files     vos.VIO

	// Log receives unexpected conditions.
	Log *log.Logger
	// Events receives one entry per handled line.
	Events *logger.SessionLogger
	// Interrupts is raised when the user asks to abandon the current line.
	Interrupts *InterruptFlag

	reader *LineReader
	diag   *color.Color

	cwd      string
	oldcwd   string
	previous Command
	status   int
	running  bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the diagnostic logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.Log = l
	}
}

// WithEvents sets the event log.
func WithEvents(events *logger.SessionLogger) Option {
	return func(s *Session) {
		s.Events = events
	}
}

// WithInterrupts shares an interrupt flag with the session.
func WithInterrupts(flag *InterruptFlag) Option {
	return func(s *Session) {
		s.Interrupts = flag
	}
}

// NewSession creates a session and records the starting directory.
func NewSession(virtOS vos.VOS, cfg *config.Configuration, files vos.VIO, opts ...Option) *Session {
	s := &Session{
		VirtualOS:  virtOS,
		Config:     cfg,
		Files:      files,
		Log:        log.New(io.Discard, "", 0),
		Events:     logger.NewNopLogger().Sessionless(),
		Interrupts: NewInterruptFlag(),
		running:    true,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.reader = NewLineReader(files.Stdin(), files.Stdout(), cfg.LineMax, s.Interrupts)
	s.diag = diagnosticColor(cfg.Color, files.Stdout())

	wd, err := virtOS.Getwd()
	if err != nil {
		s.Log.Printf("getwd: %v", err)
	}
	s.cwd = wd
	s.oldcwd = wd
	if wd != "" {
		if err := virtOS.Chdir(wd); err != nil {
			s.Log.Printf("entering %s: %v", wd, err)
		}
	}

	return s
}

// diagnosticColor paints cd failures red when mode allows it.
func diagnosticColor(mode string, w io.Writer) *color.Color {
	c := color.New(color.FgRed)
	switch mode {
	case config.ColorAlways:
		c.EnableColor()
	case config.ColorNever:
		c.DisableColor()
	default:
		if isTerminal(w) {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return c
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Prompt is shown before every line.
func (s *Session) Prompt() string {
	return s.cwd + s.Config.PromptSuffix
}

// Run reads and runs commands until exit or the end of input. The
// interpreter's own exit status is always 0.
func (s *Session) Run() int {
	defer s.reader.Close()

	for s.running {
		s.RunOnce()
	}
	return 0
}

// RunOnce prompts for and handles a single line.
func (s *Session) RunOnce() {
	fmt.Fprint(s.stdout(), s.Prompt())

	line, err := s.reader.ReadLine()
	switch {
	case errors.Is(err, ErrInterrupted):
		s.record(&logger.LogEntry{Type: logger.EventInterrupt})
		return
	case err != nil:
		if !errors.Is(err, io.EOF) {
			s.Log.Printf("reading input: %v", err)
		}
		s.record(&logger.LogEntry{Type: logger.EventEndOfInput})
		s.running = false
		return
	}

	cmd := Tokenize(line)
	if len(cmd) == 0 {
		return
	}

	if builtin, ok := AllBuiltins[cmd[0]]; ok && builtin.Main(s, cmd) {
		return
	}
	s.launch(cmd)
}

// Running reports whether the loop will read another line.
func (s *Session) Running() bool {
	return s.running
}

// Status is the exit status "echo $?" would print.
func (s *Session) Status() int {
	return s.status
}

// Cwd is the directory shown in the prompt.
func (s *Session) Cwd() string {
	return s.cwd
}

// OldCwd is the directory "cd -" returns to.
func (s *Session) OldCwd() string {
	return s.oldcwd
}

// Previous returns a copy of the command !! recalls.
func (s *Session) Previous() Command {
	return s.previous.Clone()
}

func (s *Session) stdout() io.Writer {
	return s.Files.Stdout()
}

func (s *Session) getwd() string {
	wd, err := s.VirtualOS.Getwd()
	if err != nil {
		s.Log.Printf("getwd: %v", err)
	}
	return wd
}

func (s *Session) remember(cmd Command) {
	s.previous = cmd.Clone()
}

func (s *Session) recordBuiltin(cmd Command) {
	s.record(&logger.LogEntry{
		Type:    logger.EventBuiltin,
		Command: cmd.Clone(),
	})
}

func (s *Session) record(entry *logger.LogEntry) {
	entry.Status = s.status
	if err := s.Events.Record(entry); err != nil {
		s.Log.Printf("recording event: %v", err)
	}
}
