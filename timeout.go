package saturnlog

import "time"

// DeadlineTicker imposes a wall-clock timeout on a Driver, per spec.md
// §5 ("Timeouts: Not intrinsic; imposed by the driver via a wall-clock
// check at the loop head."). A background goroutine periodically wakes
// on a ticker, compares against a deadline, and signals once by flipping
// the Driver's cancellation flag; this system has no notion of
// retraction (an explicit Non-goal), so the signal only ever stops the
// search, it never invalidates anything already derived.
type DeadlineTicker struct {
	stop chan struct{}
}

// StartDeadline arms a ticker that calls d.Cancel() once after timeout
// elapses (checked every poll interval), and returns a handle whose
// Stop method disarms it early. A zero or negative timeout means "no
// deadline" and StartDeadline returns a no-op handle.
func StartDeadline(d *Driver, timeout, poll time.Duration) *DeadlineTicker {
	t := &DeadlineTicker{stop: make(chan struct{})}
	if timeout <= 0 {
		return t
	}
	if poll <= 0 {
		poll = 50 * time.Millisecond
	}

	deadline := time.Now().Add(timeout)
	go func() {
		ticker := time.NewTicker(poll)
		defer ticker.Stop()
		for {
			select {
			case <-t.stop:
				return
			case now := <-ticker.C:
				if now.After(deadline) {
					logger.Warn("driver deadline exceeded, cancelling search")
					d.Cancel()
					return
				}
			}
		}
	}()
	return t
}

// Stop disarms the ticker. Safe to call more than once.
func (t *DeadlineTicker) Stop() {
	select {
	case <-t.stop:
		// already stopped
	default:
		close(t.stop)
	}
}
