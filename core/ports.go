package core

import "context"

// Predicate reports whether a sample violates a requirement.
type Predicate func(sample Sample) bool

// Requirement is the capability set the checker consumes. Implementations
// are owned by the caller; the checker never copies or mutates them.
type Requirement interface {
	Name() string
	Kind() Kind
	Optional() bool
	Active() bool
	ViolationMsg() string
	FalsifiedBy(sample Sample) bool
}

// SampleChecker decides whether a sample violates any configured
// requirement. SetRequirements must be called exactly once, before the
// first CheckRequirements call; violating either rule is a programmer
// error and panics.
type SampleChecker interface {
	SetRequirements(requirements []Requirement)

	// CheckRequirements returns ok=false and the violation message of the
	// first falsified requirement, or ok=true if the sample passes.
	CheckRequirements(sample Sample) (ok bool, msg string)
}

// Generator produces candidate samples.
type Generator interface {
	Generate(ctx context.Context) (Sample, error)
}
