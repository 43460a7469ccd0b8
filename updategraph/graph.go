package updategraph

import (
	"sync"

	"github.com/datatrails/go-datatrails-common/logger"
)

// Scheduler accepts actions to run once when the current step completes.
type Scheduler interface {
	ScheduleAfterCycle(action func())
}

type Options struct {
	Log       logger.Logger
	StartStep uint64
}

type Option func(*Options)

func WithLogger(log logger.Logger) Option {
	return func(o *Options) {
		o.Log = log
	}
}

func WithStartStep(step uint64) Option {
	return func(o *Options) {
		o.StartStep = step
	}
}

// UpdateGraph drives update cycles. It owns the logical clock and the queue
// of terminal notifications: actions scheduled before a cycle completes are
// each run exactly once, at the end of that cycle and before the clock
// advances.
type UpdateGraph struct {
	clock *LogicalClock
	log   logger.Logger

	mu       sync.Mutex
	terminal []func()
}

var (
	_ Clock     = (*UpdateGraph)(nil)
	_ Scheduler = (*UpdateGraph)(nil)
)

func New(opts ...Option) *UpdateGraph {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	g := &UpdateGraph{
		clock: NewLogicalClock(o.StartStep),
		log:   o.Log,
	}
	if g.log == nil && logger.Sugar != nil {
		g.log = logger.Sugar.WithServiceName("updategraph")
	}
	return g
}

var (
	defaultOnce  sync.Once
	defaultGraph *UpdateGraph
)

// Default returns the process wide graph. It is created on first use so that
// it picks up the process logger if one has been configured by then.
func Default() *UpdateGraph {
	defaultOnce.Do(func() {
		defaultGraph = New()
	})
	return defaultGraph
}

func (g *UpdateGraph) Clock() *LogicalClock { return g.clock }

func (g *UpdateGraph) CurrentStep() uint64 { return g.clock.CurrentStep() }

func (g *UpdateGraph) ScheduleAfterCycle(action func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.terminal = append(g.terminal, action)
}

// Pending returns the number of queued terminal notifications.
func (g *UpdateGraph) Pending() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.terminal)
}

func (g *UpdateGraph) StartCycle() (uint64, error) {
	step, err := g.clock.StartUpdateCycle()
	if err != nil {
		return step, err
	}
	g.debugf("cycle start: step=%d", step)
	return step, nil
}

// CompleteCycle fires the terminal notifications queued up to this point and
// then closes the step. Anything scheduled while they run waits for the next
// cycle. The step stays open while they run so that no new cycle can begin
// before every notification for this one has finished.
func (g *UpdateGraph) CompleteCycle() error {
	if g.clock.State() != Updating {
		return ErrNoCycleInProgress
	}
	step := g.clock.CurrentStep()

	g.mu.Lock()
	actions := g.terminal
	g.terminal = nil
	g.mu.Unlock()

	for _, action := range actions {
		action()
	}
	if err := g.clock.CompleteUpdateCycle(); err != nil {
		return err
	}
	g.debugf("cycle complete: step=%d, terminal=%d", step, len(actions))
	return nil
}

// RunCycle runs fn inside a single cycle. The cycle is completed even when fn
// fails; fn's error takes precedence.
func (g *UpdateGraph) RunCycle(fn func() error) error {
	if _, err := g.StartCycle(); err != nil {
		return err
	}
	fnErr := fn()
	completeErr := g.CompleteCycle()
	if fnErr != nil {
		return fnErr
	}
	return completeErr
}

func (g *UpdateGraph) debugf(format string, args ...any) {
	if g.log == nil {
		return
	}
	g.log.Debugf(format, args...)
}
