package jumprand

import (
	"sync/atomic"
	"time"

	"github.com/zeebo/this"
)

// JumpThunk accumulates wall-clock time spent inside jump operations made
// from one call site, the same "compute the caller's name once, reuse it
// forever" trick as the teacher's mon.Thunk: the first Start call pays for
// runtime.Caller, every later one from the same Thunk doesn't. Zero value
// is ready to use. Don't share a Thunk between call sites -- its name is
// fixed on first use, exactly like mon.Thunk's doc comment warns.
type JumpThunk struct {
	name  atomic.Value // string
	calls int64
	nanos int64
}

// Start begins timing a jump call. Callers wrap a JumpAhead/JumpBack/
// JumpCycle call with Start/Stop; the name reported by Name is whatever
// function called Start the first time.
func (t *JumpThunk) Start() JumpTimer {
	if t.name.Load() == nil {
		t.name.Store(this.ThisN(1))
	}
	return JumpTimer{start: time.Now(), t: t}
}

// JumpTimer records elapsed time back into the Thunk that created it when
// Stop is called.
type JumpTimer struct {
	start time.Time
	t     *JumpThunk
}

// Stop records the elapsed time since Start against the owning Thunk.
func (j JumpTimer) Stop() {
	atomic.AddInt64(&j.t.nanos, int64(time.Since(j.start)))
	atomic.AddInt64(&j.t.calls, 1)
}

// Name returns the call site name latched on the first Start, or "" if
// Start has never been called.
func (t *JumpThunk) Name() string {
	if v := t.name.Load(); v != nil {
		return v.(string)
	}
	return ""
}

// Calls returns the number of completed Start/Stop pairs.
func (t *JumpThunk) Calls() int64 { return atomic.LoadInt64(&t.calls) }

// Nanos returns the cumulative nanoseconds spent between Start and Stop
// across every completed pair.
func (t *JumpThunk) Nanos() int64 { return atomic.LoadInt64(&t.nanos) }
