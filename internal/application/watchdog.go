package application

import (
	"sync/atomic"
	"time"
)

// Watchdog signals an unusually slow in-flight operation without altering
// its outcome. If the operation is still unresolved when the threshold
// elapses, the callback fires exactly once; the fired flag is set before the
// callback runs so the attempt loop can consult it afterwards.
type Watchdog struct {
	fired atomic.Bool
	timer *time.Timer
}

func StartWatchdog(threshold time.Duration, callback func()) *Watchdog {
	w := &Watchdog{}
	w.timer = time.AfterFunc(threshold, func() {
		w.fired.Store(true)
		if callback != nil {
			callback()
		}
	})
	return w
}

// Fired reports whether the threshold elapsed and the callback ran.
func (w *Watchdog) Fired() bool {
	return w.fired.Load()
}

// Stop cancels a pending fire. Safe to call more than once; a watchdog that
// already fired stays fired.
func (w *Watchdog) Stop() {
	w.timer.Stop()
}
