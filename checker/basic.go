package checker

import "github.com/pale-ridge/sampler/core"

// BasicChecker evaluates requirements in their configured order, with a
// tiny bit of tuning: optional requirements are dropped at configuration
// time unless an up-front blanket collision check looks worthwhile.
type BasicChecker struct {
	base
	initialCollisionCheck bool
}

func NewBasicChecker(initialCollisionCheck bool) *BasicChecker {
	return &BasicChecker{initialCollisionCheck: initialCollisionCheck}
}

// SetRequirements keeps every non-optional requirement in its original
// position. An optional requirement survives only when it is a
// blanket-collision check, the checker was built with
// initialCollisionCheck, and the unfiltered input holds at least three
// intersection requirements.
func (c *BasicChecker) SetRequirements(requirements []core.Requirement) {
	intersections := 0
	for _, req := range requirements {
		if req.Kind() == core.KindIntersection {
			intersections++
		}
	}

	kept := make([]core.Requirement, 0, len(requirements))
	for _, req := range requirements {
		if req.Optional() {
			if req.Kind() == core.KindBlanketCollision && c.initialCollisionCheck && intersections >= 3 {
				kept = append(kept, req)
			}
			continue
		}
		kept = append(kept, req)
	}

	c.base.setRequirements(kept)
}

// CheckRequirements scans the retained requirements in order and returns
// the violation message of the first active one falsified by the sample.
func (c *BasicChecker) CheckRequirements(sample core.Sample) (bool, string) {
	c.mustBeConfigured()

	for _, req := range c.requirements {
		if req.Active() && req.FalsifiedBy(sample) {
			return false, req.ViolationMsg()
		}
	}
	return true, ""
}
