package updategraph

import "sync/atomic"

// State is the phase of the current step.
type State uint8

const (
	Idle State = iota
	Updating
)

func (s State) String() string {
	if s == Updating {
		return "Updating"
	}
	return "Idle"
}

// Clock reports the current logical step.
type Clock interface {
	CurrentStep() uint64
}

// LogicalClock is a process wide, monotonically increasing step counter.
//
// The step and the state share a single word, step<<1 | updating, so readers
// always see a consistent pair and transitions are a single compare and swap.
// Both transitions increment the word: starting sets the updating bit and
// completing carries it into the step.
type LogicalClock struct {
	word atomic.Uint64
}

var _ Clock = (*LogicalClock)(nil)

func NewLogicalClock(startStep uint64) *LogicalClock {
	c := &LogicalClock{}
	c.word.Store(startStep << 1)
	return c
}

func (c *LogicalClock) CurrentStep() uint64 {
	return c.word.Load() >> 1
}

func (c *LogicalClock) State() State {
	return State(c.word.Load() & 1)
}

// StartUpdateCycle marks the current step as updating and returns it. Work
// done while idle belongs to the step the next cycle runs in.
func (c *LogicalClock) StartUpdateCycle() (uint64, error) {
	for {
		cur := c.word.Load()
		if cur&1 == 1 {
			return cur >> 1, ErrCycleInProgress
		}
		if c.word.CompareAndSwap(cur, cur+1) {
			return cur >> 1, nil
		}
	}
}

// CompleteUpdateCycle closes the current step and advances to the next one.
func (c *LogicalClock) CompleteUpdateCycle() error {
	for {
		cur := c.word.Load()
		if cur&1 == 0 {
			return ErrNoCycleInProgress
		}
		if c.word.CompareAndSwap(cur, cur+1) {
			return nil
		}
	}
}
