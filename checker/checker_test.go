package checker

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pale-ridge/sampler/core"
)

func neverFalsified(core.Sample) bool { return false }

func req(name string, kind core.Kind, optional bool, pred core.Predicate) *core.StaticRequirement {
	return core.NewStaticRequirement(name, kind, optional, name+" violated", pred)
}

func TestSetRequirementsTwicePanics(t *testing.T) {
	checkers := map[string]core.SampleChecker{
		"basic":    NewBasicChecker(false),
		"weighted": NewWeightedAcceptanceChecker(0),
	}

	for name, c := range checkers {
		t.Run(name, func(t *testing.T) {
			reqs := []core.Requirement{req("r1", core.KindGeneric, false, neverFalsified)}
			c.SetRequirements(reqs)
			require.Panics(t, func() { c.SetRequirements(reqs) })
		})
	}
}

func TestCheckBeforeConfigurePanics(t *testing.T) {
	checkers := map[string]core.SampleChecker{
		"basic":    NewBasicChecker(false),
		"weighted": NewWeightedAcceptanceChecker(0),
	}

	for name, c := range checkers {
		t.Run(name, func(t *testing.T) {
			require.Panics(t, func() { c.CheckRequirements(nil) })
		})
	}
}

func TestEmptyRequirementSetAcceptsEverything(t *testing.T) {
	b := NewBasicChecker(true)
	b.SetRequirements(nil)
	ok, msg := b.CheckRequirements("anything")
	require.True(t, ok)
	require.Empty(t, msg)

	w := NewWeightedAcceptanceChecker(0)
	w.SetRequirements(nil)
	ok, msg = w.CheckRequirements("anything")
	require.True(t, ok)
	require.Empty(t, msg)
}
