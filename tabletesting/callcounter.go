package tabletesting

import "github.com/forestrie/go-livetable/updategraph"

type TestCallCounter struct {
	MethodCalls map[string]int
}

func (r *TestCallCounter) IncMethodCall(name string) int {
	if r.MethodCalls == nil {
		r.MethodCalls = make(map[string]int)
	}
	r.MethodCalls[name]++
	return r.MethodCalls[name]
}

func (r *TestCallCounter) Reset() {
	r.MethodCalls = make(map[string]int)
}

func (r *TestCallCounter) MethodCallCount(name string) int {
	return r.MethodCalls[name]
}

// CountingScheduler records every registration before handing it to the
// wrapped scheduler.
type CountingScheduler struct {
	TestCallCounter
	Scheduler updategraph.Scheduler
}

var _ updategraph.Scheduler = (*CountingScheduler)(nil)

func (s *CountingScheduler) ScheduleAfterCycle(action func()) {
	s.IncMethodCall("ScheduleAfterCycle")
	s.Scheduler.ScheduleAfterCycle(action)
}

// Scheduled returns the number of registrations seen since the last Reset.
func (s *CountingScheduler) Scheduled() int {
	return s.MethodCallCount("ScheduleAfterCycle")
}
