// Package gctune raises GOGC while the live heap is far below a threshold and
// lowers it as the heap approaches the threshold.
//
// Measurement runs hold the whole sample set in memory while hashing it many
// times. With a threshold set, the collector runs less often during those
// loops and throughput numbers carry less GC noise.
package gctune

import (
	"math/bits"
	"runtime"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

// Bounds for the GOGC value the tuner sets.
const (
	MinGCPercent = 50
	MaxGCPercent = 500
)

// Tuner adjusts GOGC after every GC cycle.
type Tuner struct {
	threshold uint64
	prev      int
	gcPercent atomic.Uint32

	mu      sync.Mutex
	stopped bool
}

// Enable starts a tuner that keeps the GC trigger near threshold bytes. It
// returns nil when threshold is zero.
func Enable(threshold uint64) *Tuner {
	if threshold == 0 {
		return nil
	}

	t := &Tuner{threshold: threshold, prev: debug.SetGCPercent(100)}
	debug.SetGCPercent(t.prev)
	t.gcPercent.Store(uint32(max(t.prev, 0)))
	t.arm()

	return t
}

// GCPercent returns the last GOGC value set by t.
func (t *Tuner) GCPercent() uint32 { return t.gcPercent.Load() }

// Stop halts tuning and restores the GOGC value seen by Enable. A nil Tuner
// is a no-op.
func (t *Tuner) Stop() {
	if t == nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.stopped {
		t.stopped = true
		debug.SetGCPercent(t.prev)
	}
}

// arm attaches a finalizer to a fresh object. The object is unreachable, so
// the finalizer runs after the next GC cycle and re-arms itself.
func (t *Tuner) arm() {
	sentinel := new([32]byte)
	runtime.SetFinalizer(sentinel, func(*[32]byte) {
		if t.tune() {
			t.arm()
		}
	})
}

// tune reports false once t is stopped.
func (t *Tuner) tune() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return false
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	p := calcGCPercent(ms.HeapInuse, t.threshold, uint32(max(t.prev, 0)))
	t.gcPercent.Store(p)
	debug.SetGCPercent(int(p))

	return true
}

// calcGCPercent solves threshold = inuse + inuse*p/100 for p and clamps the
// result to [MinGCPercent, MaxGCPercent]. def is returned for zero inputs.
func calcGCPercent(inuse, threshold uint64, def uint32) uint32 {
	if inuse == 0 || threshold == 0 {
		return def
	}
	if threshold <= inuse {
		return MinGCPercent
	}

	hi, lo := bits.Mul64(threshold-inuse, 100)
	if hi >= inuse {
		return MaxGCPercent
	}
	q, _ := bits.Div64(hi, lo, inuse)

	return uint32(min(max(q, MinGCPercent), MaxGCPercent))
}
