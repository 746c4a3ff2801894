package shell

import (
	"os"
	"os/signal"
	"sync/atomic"
)

// InterruptFlag records that an interrupt arrived. It is raised from the
// signal goroutine and cleared by the LineReader once it has abandoned the
// line being read.
type InterruptFlag struct {
	raised atomic.Bool
	notify chan struct{}
}

// NewInterruptFlag creates a lowered flag.
func NewInterruptFlag() *InterruptFlag {
	return &InterruptFlag{notify: make(chan struct{}, 1)}
}

// Raise sets the flag and wakes up a reader waiting on C.
func (f *InterruptFlag) Raise() {
	f.raised.Store(true)
	select {
	case f.notify <- struct{}{}:
	default:
	}
}

// IsSet reports whether the flag is raised.
func (f *InterruptFlag) IsSet() bool {
	return f.raised.Load()
}

// Clear lowers the flag and discards a pending wake up.
func (f *InterruptFlag) Clear() {
	f.raised.Store(false)
	select {
	case <-f.notify:
	default:
	}
}

// C receives a value after the flag is raised.
func (f *InterruptFlag) C() <-chan struct{} {
	return f.notify
}

// CatchInterrupts raises f on every SIGINT until stop is called. No other
// signal is touched.
func CatchInterrupts(f *InterruptFlag) (stop func()) {
	sigs := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigs, os.Interrupt)

	go func() {
		for {
			select {
			case <-sigs:
				f.Raise()
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(sigs)
		close(done)
	}
}
