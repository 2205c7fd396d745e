// Package checker decides whether a freshly generated sample violates any
// of a fixed requirement set, and in what order the requirements are tried.
// Two strategies implement core.SampleChecker: BasicChecker evaluates in
// configured order with a static filter, WeightedAcceptanceChecker learns
// an evaluation order online from observed outcomes.
package checker

import "github.com/pale-ridge/sampler/core"

// base holds the configure-once requirement set shared by both strategies.
type base struct {
	requirements []core.Requirement
	configured   bool
}

func (b *base) setRequirements(requirements []core.Requirement) {
	if b.configured {
		panic("checker: SetRequirements called twice")
	}
	b.requirements = append([]core.Requirement(nil), requirements...)
	b.configured = true
}

func (b *base) mustBeConfigured() {
	if !b.configured {
		panic("checker: CheckRequirements called before SetRequirements")
	}
}

// Requirements returns the retained requirement set, in evaluation-table
// order. Exposed for callers that want to report what is being enforced.
func (b *base) Requirements() []core.Requirement {
	out := make([]core.Requirement, len(b.requirements))
	copy(out, b.requirements)
	return out
}
