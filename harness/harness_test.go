package harness

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pale-ridge/sampler/checker"
	"github.com/pale-ridge/sampler/core"
	"github.com/pale-ridge/sampler/pkg/cache"
)

type generatorFunc func(ctx context.Context) (core.Sample, error)

func (f generatorFunc) Generate(ctx context.Context) (core.Sample, error) { return f(ctx) }

// countingGenerator yields 1, 2, 3, ...
func countingGenerator() core.Generator {
	n := 0
	return generatorFunc(func(ctx context.Context) (core.Sample, error) {
		n++
		return n, nil
	})
}

func atLeast(min int) *core.StaticRequirement {
	return core.NewStaticRequirement("at-least", core.KindGeneric, false,
		fmt.Sprintf("sample below %d", min),
		func(s core.Sample) bool { return s.(int) < min })
}

func TestSampleAcceptsEventually(t *testing.T) {
	c := checker.NewBasicChecker(false)
	c.SetRequirements([]core.Requirement{atLeast(3)})

	h := &Harness{
		Gen:      countingGenerator(),
		Checker:  c,
		Strategy: "basic",
	}

	sample, attempts, err := h.Sample(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, sample)
	assert.Equal(t, 3, attempts)
}

func TestSampleBudgetExhausted(t *testing.T) {
	c := checker.NewBasicChecker(false)
	c.SetRequirements([]core.Requirement{atLeast(100)})

	h := &Harness{
		Gen:     countingGenerator(),
		Checker: c,
		Budget:  core.Budget{MaxAttempts: 5},
	}

	_, attempts, err := h.Sample(context.Background())
	require.ErrorIs(t, err, ErrBudgetExhausted)
	assert.Equal(t, 5, attempts)
}

func TestSampleGeneratorError(t *testing.T) {
	boom := errors.New("boom")
	c := checker.NewBasicChecker(false)
	c.SetRequirements(nil)

	h := &Harness{
		Gen:     generatorFunc(func(ctx context.Context) (core.Sample, error) { return nil, boom }),
		Checker: c,
	}

	_, _, err := h.Sample(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestSampleContextCancelled(t *testing.T) {
	c := checker.NewBasicChecker(false)
	c.SetRequirements([]core.Requirement{atLeast(100)})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h := &Harness{
		Gen:     countingGenerator(),
		Checker: c,
	}

	_, _, err := h.Sample(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSampleUsesVerdictCache(t *testing.T) {
	// Generator repeats the same value, so the verdict for its
	// fingerprint is computed once and the budget still runs out.
	checks := 0
	req := core.NewStaticRequirement("never", core.KindGeneric, false, "always rejected",
		func(core.Sample) bool {
			checks++
			return true
		})
	c := checker.NewBasicChecker(false)
	c.SetRequirements([]core.Requirement{req})

	verdicts, err := cache.NewVerdictCache(4)
	require.NoError(t, err)

	h := &Harness{
		Gen:         generatorFunc(func(ctx context.Context) (core.Sample, error) { return 7, nil }),
		Checker:     c,
		Budget:      core.Budget{MaxAttempts: 10},
		Cache:       verdicts,
		Fingerprint: func(s core.Sample) string { return fmt.Sprint(s) },
	}

	_, _, err = h.Sample(context.Background())
	require.ErrorIs(t, err, ErrBudgetExhausted)
	assert.Equal(t, 1, checks)
	assert.Equal(t, int64(9), verdicts.Stats().Hits)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()
	assert.Equal(t, "weighted", cfg.Strategy)
	assert.Equal(t, 10, cfg.BufferSize)
	assert.Equal(t, 1000, cfg.MaxAttempts)
	assert.False(t, cfg.InitialCollisionCheck)
}
