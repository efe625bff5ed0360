package scalar

import (
	"runtime"
	"sync/atomic"
)

// spinLock is a short-hold mutual exclusion primitive for a single Scalar.
// Critical sections guarded by it are expected to run in nanoseconds (a
// handful of field reads/writes), so spinning beats parking a goroutine.
// It does not implement sync.Locker on purpose: the lock is an
// implementation detail of Scalar, never part of the public API.
type spinLock struct {
	held uint32
}

func (l *spinLock) lock() {
	for !atomic.CompareAndSwapUint32(&l.held, 0, 1) {
		runtime.Gosched()
	}
}

func (l *spinLock) unlock() {
	atomic.StoreUint32(&l.held, 0)
}
