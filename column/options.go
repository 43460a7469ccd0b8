package column

import (
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-livetable/updategraph"
	"github.com/google/uuid"
)

const defaultIndexDegree = 32

type Options struct {
	Clock       updategraph.Clock
	Scheduler   updategraph.Scheduler
	Log         logger.Logger
	ID          uuid.UUID
	IndexDegree int
}

type Option func(*Options)

// WithClock sets the clock used to detect step transitions.
func WithClock(clock updategraph.Clock) Option {
	return func(o *Options) {
		o.Clock = clock
	}
}

// WithScheduler sets where the deferred previous generation flush is
// registered.
func WithScheduler(scheduler updategraph.Scheduler) Option {
	return func(o *Options) {
		o.Scheduler = scheduler
	}
}

// WithUpdateGraph binds the store to a graph, which serves as both clock and
// scheduler.
func WithUpdateGraph(g *updategraph.UpdateGraph) Option {
	return func(o *Options) {
		o.Clock = g
		o.Scheduler = g
	}
}

func WithLogger(log logger.Logger) Option {
	return func(o *Options) {
		o.Log = log
	}
}

// WithID overrides the randomly generated store identity.
func WithID(id uuid.UUID) Option {
	return func(o *Options) {
		o.ID = id
	}
}

// WithIndexDegree sets the degree of the ordered key index.
func WithIndexDegree(degree int) Option {
	return func(o *Options) {
		o.IndexDegree = degree
	}
}

func newOptions(opts []Option) Options {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Clock == nil || o.Scheduler == nil {
		g := updategraph.Default()
		if o.Clock == nil {
			o.Clock = g
		}
		if o.Scheduler == nil {
			o.Scheduler = g
		}
	}
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.IndexDegree < 2 {
		o.IndexDegree = defaultIndexDegree
	}
	if o.Log == nil && logger.Sugar != nil {
		o.Log = logger.Sugar.WithServiceName("column")
	}
	return o
}
