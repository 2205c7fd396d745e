package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pale-ridge/sampler/core"
)

func names(reqs []core.Requirement) []string {
	out := make([]string, len(reqs))
	for i, r := range reqs {
		out[i] = r.Name()
	}
	return out
}

func TestBasicKeepsMandatoryInOrder(t *testing.T) {
	c := NewBasicChecker(false)
	c.SetRequirements([]core.Requirement{
		req("m1", core.KindGeneric, false, neverFalsified),
		req("opt", core.KindGeneric, true, neverFalsified),
		req("m2", core.KindIntersection, false, neverFalsified),
		req("m3", core.KindGeneric, false, neverFalsified),
	})

	assert.Equal(t, []string{"m1", "m2", "m3"}, names(c.Requirements()))
}

func TestBasicOptionalCollisionGating(t *testing.T) {
	build := func(intersections int) []core.Requirement {
		reqs := []core.Requirement{
			req("m1", core.KindGeneric, false, neverFalsified),
			req("collision", core.KindBlanketCollision, true, neverFalsified),
		}
		for i := 0; i < intersections; i++ {
			reqs = append(reqs, req("ix", core.KindIntersection, false, neverFalsified))
		}
		return reqs
	}

	// Enabled, three intersection requirements: the optional collision
	// check is retained.
	c := NewBasicChecker(true)
	c.SetRequirements(build(3))
	assert.Contains(t, names(c.Requirements()), "collision")

	// Only two intersection requirements: dropped.
	c = NewBasicChecker(true)
	c.SetRequirements(build(2))
	assert.NotContains(t, names(c.Requirements()), "collision")

	// Check disabled at construction: dropped even with three.
	c = NewBasicChecker(false)
	c.SetRequirements(build(3))
	assert.NotContains(t, names(c.Requirements()), "collision")

	// A non-collision optional requirement never survives.
	c = NewBasicChecker(true)
	reqs := build(3)
	reqs = append(reqs, req("stray", core.KindGeneric, true, neverFalsified))
	c.SetRequirements(reqs)
	assert.NotContains(t, names(c.Requirements()), "stray")
}

func TestBasicShortCircuitsOnFirstViolation(t *testing.T) {
	var evaluated []string
	tracked := func(name string, rejects bool) *core.StaticRequirement {
		return req(name, core.KindGeneric, false, func(core.Sample) bool {
			evaluated = append(evaluated, name)
			return rejects
		})
	}

	c := NewBasicChecker(false)
	c.SetRequirements([]core.Requirement{
		tracked("pass", false),
		tracked("reject", true),
		tracked("unreached", true),
	})

	ok, msg := c.CheckRequirements(nil)
	require.False(t, ok)
	assert.Equal(t, "reject violated", msg)
	assert.Equal(t, []string{"pass", "reject"}, evaluated)
}

func TestBasicSkipsInactiveRequirements(t *testing.T) {
	inactive := req("inactive", core.KindGeneric, false, func(core.Sample) bool {
		t.Fatal("inactive requirement must not be evaluated")
		return true
	})
	inactive.SetActive(false)

	c := NewBasicChecker(false)
	c.SetRequirements([]core.Requirement{
		inactive,
		req("pass", core.KindGeneric, false, neverFalsified),
	})

	ok, msg := c.CheckRequirements(nil)
	assert.True(t, ok)
	assert.Empty(t, msg)
}
