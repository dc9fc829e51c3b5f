package exprtreetesting

import (
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

type TestConfig struct {
	// TestLabelPrefix names the logger and the generated tree labels so
	// interleaved test output can be told apart.
	TestLabelPrefix string
}

// TestContext carries the per-test harness state: a test-scoped logger and
// a unique run id for anything the test emits or stores.
type TestContext struct {
	Log   *zap.Logger
	T     *testing.T
	RunID string
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{
		T:     t,
		Log:   zaptest.NewLogger(t).Named(cfg.TestLabelPrefix),
		RunID: uuid.NewString(),
	}
	return c
}

func (c *TestContext) GetLog() *zap.Logger { return c.Log }
