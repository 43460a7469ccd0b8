package updategraph

import "sync/atomic"

// Committer runs action against target once, when the step in which it was
// activated completes. Activating an already armed committer is a no-op, so
// at most one notification per committer is ever pending.
type Committer[T any] struct {
	scheduler Scheduler
	target    T
	action    func(T)
	active    atomic.Bool
}

func NewCommitter[T any](scheduler Scheduler, target T, action func(T)) *Committer[T] {
	return &Committer[T]{
		scheduler: scheduler,
		target:    target,
		action:    action,
	}
}

// MaybeActivate arms the committer and reports whether this call armed it.
func (c *Committer[T]) MaybeActivate() bool {
	if !c.active.CompareAndSwap(false, true) {
		return false
	}
	c.scheduler.ScheduleAfterCycle(c.run)
	return true
}

// Active reports whether a notification is pending.
func (c *Committer[T]) Active() bool {
	return c.active.Load()
}

func (c *Committer[T]) run() {
	// disarm first so the action may re-arm
	c.active.Store(false)
	c.action(c.target)
}
