package mem

import (
	"log/slog"
	"sync"
)

// AbortHandler terminates the process after an allocation failure.
type AbortHandler func(msg string, args ...any)

var (
	abortMu      sync.RWMutex
	abortHandler AbortHandler = defaultAbort
)

// Abort reports an unrecoverable allocation failure.
//
// The default handler logs at error level and raises SIGABRT (unix) or exits
// with status 3 (elsewhere). It does not return.
func Abort(msg string, args ...any) {
	abortMu.RLock()
	h := abortHandler
	abortMu.RUnlock()
	h(msg, args...)
}

// SetAbortHandler installs h and returns a function restoring the previous
// handler. Intended for tests.
func SetAbortHandler(h AbortHandler) (restore func()) {
	abortMu.Lock()
	prev := abortHandler
	abortHandler = h
	abortMu.Unlock()

	return func() {
		abortMu.Lock()
		abortHandler = prev
		abortMu.Unlock()
	}
}

func defaultAbort(msg string, args ...any) {
	slog.Error("bitset: allocation failed: "+msg, args...)
	abortProcess()
}
