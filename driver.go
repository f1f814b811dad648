package saturnlog

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// PauseHook is called by the Driver between iterations, after a step has
// been applied and before the next database is popped for inspection.
// Per spec.md §5 it may yield control to an external event source (e.g.
// an interactive stepper UI) but must never mutate solver state; the
// Driver passes it the database that is about to be examined next,
// read-only by convention.
type PauseHook func(next *Database)

// Driver runs the depth-first search loop from spec.md §4.5.
type Driver struct {
	prog *Program

	stack  []*Database
	models []*Database

	cancelled atomic.Bool
	pause     PauseHook
	metrics   *driverMetrics
	maxModels int // 0 means unbounded
}

// DriverOption configures a Driver at construction time. None of these
// affect which saturated models exist — only how much work the Driver
// does to find them (spec.md §6: "No flags are load-bearing on the core
// contract").
type DriverOption func(*Driver)

// WithPauseHook installs a PauseHook.
func WithPauseHook(hook PauseHook) DriverOption {
	return func(d *Driver) { d.pause = hook }
}

// WithMaxModels stops the search once n saturated models have been
// collected. 0 (the default) means unbounded.
func WithMaxModels(n int) DriverOption {
	return func(d *Driver) { d.maxModels = n }
}

// WithMetrics attaches a Prometheus-backed metrics recorder (see
// metrics.go). Without this option the driver runs identically, just
// unobserved.
func WithMetrics(m *driverMetrics) DriverOption {
	return func(d *Driver) { d.metrics = m }
}

// NewDriver constructs a Driver over prog, seeded with prog.Seed.
func NewDriver(prog *Program, opts ...DriverOption) *Driver {
	d := &Driver{
		prog:  prog,
		stack: []*Database{prog.Seed},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Cancel requests that Run stop at the next loop head, returning
// whatever saturated models have already been collected. Safe to call
// from another goroutine (e.g. the timeout ticker in timeout.go).
func (d *Driver) Cancel() {
	d.cancelled.Store(true)
}

// Run executes the DFS loop from spec.md §4.5 to completion (or until
// cancelled / until WithMaxModels is satisfied) and returns the
// saturated models found, in the order the search encountered them.
func (d *Driver) Run() []*Database {
	for len(d.stack) > 0 {
		if d.cancelled.Load() {
			logger.Debug("driver cancelled, returning partial results")
			break
		}
		if d.maxModels > 0 && len(d.models) >= d.maxModels {
			break
		}

		top := d.stack[len(d.stack)-1]

		if top.QueueLen() == 0 {
			d.stack = d.stack[:len(d.stack)-1]
			d.models = append(d.models, top)
			d.recordModel()
			if d.pause != nil && len(d.stack) > 0 {
				d.pause(d.stack[len(d.stack)-1])
			}
			continue
		}

		successors := Step(d.prog, top)
		d.recordStep(len(successors))

		switch len(successors) {
		case 0:
			d.stack = d.stack[:len(d.stack)-1]
		case 1:
			d.stack[len(d.stack)-1] = successors[0]
		default:
			d.stack = d.stack[:len(d.stack)-1]
			// DFS: the first alternative is explored first, so it must
			// end up on top of the stack — push in reverse.
			for i := len(successors) - 1; i >= 0; i-- {
				d.stack = append(d.stack, successors[i])
			}
		}

		d.recordDepth(len(d.stack))
		if d.pause != nil && len(d.stack) > 0 {
			d.pause(d.stack[len(d.stack)-1])
		}
	}
	return d.models
}

// Models returns whatever saturated models have been collected so far
// (useful after a cancelled Run).
func (d *Driver) Models() []*Database { return d.models }

func (d *Driver) recordModel() {
	if d.metrics != nil {
		d.metrics.models.Inc()
	}
	logger.WithFields(logrus.Fields{"count": len(d.models)}).Debug("saturated model found")
}

func (d *Driver) recordStep(successorCount int) {
	if d.metrics == nil {
		return
	}
	d.metrics.steps.Inc()
	if successorCount == 0 {
		d.metrics.pruned.Inc()
	}
}

func (d *Driver) recordDepth(depth int) {
	if d.metrics != nil {
		d.metrics.stackDepth.Set(float64(depth))
	}
}
