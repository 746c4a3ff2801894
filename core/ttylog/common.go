// Package ttylog records and replays the terminal I/O of a session.
package ttylog

import (
	"io"
	"log"
	"sync"
	"time"

	"github.com/josephlewis42/coin/core/vos"
)

// FD identifies the stream an I/O event happened on.
type FD int

const (
	FDStdin FD = iota
	FDStdout
	FDStderr
)

// TTYLogEntry is a chunk of data read from or written to a terminal.
type TTYLogEntry struct {
	TimestampMicros int64
	Fd              FD
	Data            []byte
}

// LogSink receives log events.
type LogSink func(t *TTYLogEntry) error

// LogSource adapts log readers.
type LogSource interface {
	// Next fetches the next available log entry. It returns io.EOF if the source
	// has no more log entries.
	Next() (*TTYLogEntry, error)
}

// NewRealTimePlayback plays back the results in real-time.
// If maxSleep > 0, it's used as the maximum duration to pause.
func NewRealTimePlayback(maxSleep time.Duration, next LogSink) LogSink {
	var once sync.Once
	var prevTimeMicros int64

	return func(logEntry *TTYLogEntry) error {
		once.Do(func() {
			prevTimeMicros = logEntry.TimestampMicros
		})

		delta := logEntry.TimestampMicros - prevTimeMicros
		prevTimeMicros = logEntry.TimestampMicros

		sleepDuration := time.Duration(delta) * time.Microsecond
		if maxSleep > 0 && sleepDuration > maxSleep {
			sleepDuration = maxSleep
		}
		time.Sleep(sleepDuration)

		return next(logEntry)
	}
}

// NewClientOutput writes stdout and stderr to the given writer
func NewClientOutput(w io.Writer) LogSink {
	return func(logEntry *TTYLogEntry) error {
		if logEntry.Fd == FDStdin {
			return nil
		}
		_, err := w.Write(logEntry.Data)
		return err
	}
}

// Replay reads a stream of events to a callback.
func Replay(recording LogSource, callback LogSink) error {
	for {
		logEntry, err := recording.Next()
		switch {
		case err == io.EOF:
			return nil
		case err != nil:
			return err
		}

		if err := callback(logEntry); err != nil {
			return err
		}
	}
}

// Recorder is a VIO that copies everything passing through it to a LogSink.
type Recorder struct {
	*vos.VIOAdapter
	mutex  sync.Mutex
	output LogSink

	// Now is the clock used to timestamp entries.
	Now func() time.Time
}

func (r *Recorder) recordIO(fd FD, data []byte, dest func([]byte) (int, error)) (int, error) {
	eventTime := r.Now()
	amount, err := dest(data)
	if amount > 0 {
		r.mutex.Lock()
		e2 := r.output(&TTYLogEntry{
			TimestampMicros: eventTime.UnixMicro(),
			Fd:              fd,
			Data:            append([]byte{}, data[:amount]...),
		})
		r.mutex.Unlock()
		if e2 != nil {
			log.Print(e2)
		}
	}
	return amount, err
}

var _ vos.VIO = (*Recorder)(nil)

type recorderReadCloser struct {
	r       *Recorder
	fd      FD
	wrapped io.ReadCloser
}

var _ io.ReadCloser = (*recorderReadCloser)(nil)

func (rc *recorderReadCloser) Read(p []byte) (int, error) {
	return rc.r.recordIO(rc.fd, p, rc.wrapped.Read)
}

func (rc *recorderReadCloser) Close() error {
	return rc.wrapped.Close()
}

type recorderWriteCloser struct {
	r       *Recorder
	fd      FD
	wrapped io.WriteCloser
}

var _ io.WriteCloser = (*recorderWriteCloser)(nil)

func (rc *recorderWriteCloser) Write(p []byte) (int, error) {
	return rc.r.recordIO(rc.fd, p, rc.wrapped.Write)
}

func (rc *recorderWriteCloser) Close() error {
	return rc.wrapped.Close()
}

// NewRecorder creates a logger that forwards all events to output.
func NewRecorder(toWrap vos.VIO, output LogSink) *Recorder {
	recorder := &Recorder{
		output: output,
		Now:    time.Now,
	}

	recorder.VIOAdapter = vos.NewVIOAdapter(
		&recorderReadCloser{fd: FDStdin, r: recorder, wrapped: toWrap.Stdin()},
		&recorderWriteCloser{fd: FDStdout, r: recorder, wrapped: toWrap.Stdout()},
		&recorderWriteCloser{fd: FDStderr, r: recorder, wrapped: toWrap.Stderr()},
	)

	return recorder
}
