package checker

import (
	"sort"
	"time"

	"github.com/pale-ridge/sampler/core"
)

// DefaultBufferSize is the sliding-window capacity used when the caller
// does not supply one.
const DefaultBufferSize = 10

// WeightedAcceptanceChecker tries the requirement with the lowest
// time-weighted acceptance chance first, re-sorting on every call from a
// sliding window of observed outcomes. A requirement that almost always
// passes and is slow sorts late; one that rejects often or runs cheap
// sorts early, so the loop tends to short-circuit as cheaply as possible.
type WeightedAcceptanceChecker struct {
	base
	bufferSize int
	windows    []*window // parallel to requirements
	now        func() time.Time
}

func NewWeightedAcceptanceChecker(bufferSize int) *WeightedAcceptanceChecker {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &WeightedAcceptanceChecker{
		bufferSize: bufferSize,
		now:        time.Now,
	}
}

// SetRequirements stores the full set unfiltered and allocates one
// zero-filled window per requirement.
func (c *WeightedAcceptanceChecker) SetRequirements(requirements []core.Requirement) {
	c.base.setRequirements(requirements)

	c.windows = make([]*window, len(c.requirements))
	for i := range c.windows {
		c.windows[i] = newWindow(c.bufferSize)
	}
}

// CheckRequirements evaluates the surviving requirements in sorted order,
// timing each predicate and pushing the outcome into that requirement's
// window. The first rejection short-circuits; requirements after it are
// neither evaluated nor updated.
func (c *WeightedAcceptanceChecker) CheckRequirements(sample core.Sample) (bool, string) {
	c.mustBeConfigured()

	for _, i := range c.sortedRequirements() {
		req := c.requirements[i]

		start := c.now()
		rejected := req.FalsifiedBy(sample)
		elapsed := c.now().Sub(start).Seconds()

		m := metric{elapsed: elapsed}
		if !rejected {
			m.accepted = 1
		}
		c.windows[i].push(m)

		if rejected {
			return false, req.ViolationMsg()
		}
	}
	return true, ""
}

// sortedRequirements returns the indices of the active requirements in
// ascending score order. The sort is stable, so requirements with equal
// scores keep their configured order. Trailing optional requirements are
// then popped: checked last, an optional requirement that does not reject
// buys nothing, so it is skipped to save its cost. Optional requirements
// earlier in the order are kept.
func (c *WeightedAcceptanceChecker) sortedRequirements() []int {
	order := make([]int, 0, len(c.requirements))
	for i, req := range c.requirements {
		if req.Active() {
			order = append(order, i)
		}
	}

	sort.SliceStable(order, func(a, b int) bool {
		return c.windows[order[a]].score() < c.windows[order[b]].score()
	})

	for len(order) > 0 && c.requirements[order[len(order)-1]].Optional() {
		order = order[:len(order)-1]
	}

	return order
}
