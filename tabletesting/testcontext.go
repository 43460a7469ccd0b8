package tabletesting

import (
	"math/rand/v2"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-livetable/updategraph"
)

// TestContext carries what a column or tuple test needs: a logger, a private
// update graph and a seeded source of test data.
type TestContext struct {
	Log   logger.Logger
	Graph *updategraph.UpdateGraph
	Rand  *rand.Rand
	T     *testing.T
}

type TestConfig struct {
	// Seed fixes the generated data so that it is the same from run to run.
	Seed            uint64
	StartStep       uint64
	TestLabelPrefix string
	LogLevel        string // can be "" defaults to NOOP
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	level := cfg.LogLevel
	if level == "" {
		level = "NOOP"
	}
	logger.New(level)
	t.Cleanup(logger.OnExit)

	c := TestContext{T: t}
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)
	c.Graph = updategraph.New(
		updategraph.WithLogger(c.Log),
		updategraph.WithStartStep(cfg.StartStep),
	)
	c.Rand = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// Cycle runs fn inside one update cycle of the context's graph and fails the
// test if either fn or the cycle fails.
func (c *TestContext) Cycle(fn func()) {
	c.T.Helper()
	err := c.Graph.RunCycle(func() error {
		fn()
		return nil
	})
	if err != nil {
		c.T.Fatalf("update cycle: %v", err)
	}
}
