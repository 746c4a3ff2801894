package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// ReadJSONLinesLog parses a newline delimited JSON log.
func ReadJSONLinesLog(r io.Reader, handler func(le *LogEntry)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var logEntry LogEntry
		if err := decoder.Decode(&logEntry); err != nil {
			return fmt.Errorf("reading event %d: %w", decoder.InputOffset(), err)
		}

		handler(&logEntry)
	}
	return nil
}

// Report holds statistics about the logged events.
type Report struct {
	LogEntries     int        `json:"log_entries"`
	Sessions       StrCounter `json:"sessions"`
	InvalidEntries StrCounter `json:"unknown_log_entries,omitempty"`

	Builtin      BuiltinReport      `json:"builtin_report"`
	Launch       LaunchReport       `json:"launch_report"`
	ChdirFailure ChdirFailureReport `json:"chdir_failure_report"`

	Interrupts  int `json:"interrupts"`
	EndOfInputs int `json:"end_of_inputs"`
}

// Update adds an event to the report.
func (r *Report) Update(le *LogEntry) {
	r.LogEntries++
	if le.SessionID != "" {
		r.Sessions.Increment(le.SessionID)
	}

	switch le.Type {
	case EventBuiltin:
		r.Builtin.update(le)
	case EventLaunch:
		r.Launch.update(le)
	case EventChdirFailure:
		r.ChdirFailure.update(le)
	case EventInterrupt:
		r.Interrupts++
	case EventEndOfInput:
		r.EndOfInputs++
	default:
		r.InvalidEntries.Increment(string(le.Type))
	}
}

type BuiltinReport struct {
	// Names of the builtins and how often they ran.
	Names StrCounter `json:"names"`
}

func (r *BuiltinReport) update(le *LogEntry) {
	r.Names.Increment(le.CommandName())
}

type LaunchReport struct {
	// Name of the command as typed.
	CommandNames StrCounter `json:"command_names"`
	// Name of the resolved program.
	ResolvedCommandPaths StrCounter `json:"resolved_command_paths"`
	// Exit statuses the programs finished with.
	Statuses StrCounter `json:"statuses"`
	// Launches that failed before the program ran.
	Failures *PathCounter `json:"failures"`
	// Signals that killed programs.
	Signals StrCounter `json:"signals"`
}

func (r *LaunchReport) update(le *LogEntry) {
	r.CommandNames.Increment(le.CommandName())
	r.ResolvedCommandPaths.Increment(le.ResolvedPath)
	r.Statuses.Increment(strconv.Itoa(le.Status))
	if le.Signal != 0 {
		r.Signals.Increment(strconv.Itoa(le.Signal))
	}

	if le.Error != "" {
		if r.Failures == nil {
			r.Failures = NewPathCounter("command", "error")
		}
		r.Failures.Increment(le.CommandName(), le.Error)
	}
}

type ChdirFailureReport struct {
	Targets StrCounter `json:"targets"`
	Errors  StrCounter `json:"errors"`
}

func (r *ChdirFailureReport) update(le *LogEntry) {
	if len(le.Command) > 1 {
		r.Targets.Increment(le.Command[1])
	}
	r.Errors.Increment(le.Error)
}

// StrCounter counts the number of strings seen.
type StrCounter struct {
	internal map[string]int
}

// Increment adds one to the given key.
func (s *StrCounter) Increment(toAdd string) {
	if s.internal == nil {
		s.internal = make(map[string]int)
	}

	s.internal[toAdd]++
}

// Get returns the count for key.
func (s *StrCounter) Get(key string) int {
	return s.internal[key]
}

// Len returns the number of distinct keys seen.
func (s *StrCounter) Len() int {
	return len(s.internal)
}

// MarshalJSON implemnts custom JSON marshaler.
func (s StrCounter) MarshalJSON() ([]byte, error) {
	if s.internal == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s.internal)
}

func NewPathCounter(cols ...string) *PathCounter {
	return &PathCounter{
		cols:     cols,
		internal: make(map[string]int),
	}
}

// PathCounter counts the number of tuples seen.
type PathCounter struct {
	cols     []string
	internal map[string]int
}

// Increment adds one to the given key.
func (ctr *PathCounter) Increment(toAdd ...string) {
	if len(toAdd) != len(ctr.cols) {
		panic("wrong number of columns to add")
	}

	ctr.internal[toKey(toAdd...)]++
}

// Get returns the count for the tuple.
func (ctr *PathCounter) Get(vals ...string) int {
	return ctr.internal[toKey(vals...)]
}

// MarshalJSON implemnts custom JSON marshaler.
func (ctr *PathCounter) MarshalJSON() ([]byte, error) {
	type Count struct {
		Count  int               `json:"count"`
		Path   string            `json:"-"`
		Fields map[string]string `json:"event"`
	}

	out := []Count{}
	for k, v := range ctr.internal {
		count := Count{
			Count:  v,
			Path:   k,
			Fields: make(map[string]string),
		}

		splitPath := fromKey(k)
		for colNum, colVal := range ctr.cols {
			count.Fields[colVal] = splitPath[colNum]
		}

		out = append(out, count)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Path < out[j].Path
		}
		return out[i].Count > out[j].Count
	})

	return json.Marshal(out)
}

func toKey(vals ...string) string {
	key, _ := json.Marshal(vals)
	return string(key)
}

func fromKey(key string) (out []string) {
	json.Unmarshal([]byte(key), &out)
	return
}
