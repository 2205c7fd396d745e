package core

import "time"

// Sample is one candidate produced by a Generator. The checker never looks
// inside it; it is handed through to requirement predicates as-is.
type Sample any

// Kind classifies a requirement for static filtering policies.
type Kind string

const (
	KindGeneric          Kind = "generic"
	KindIntersection     Kind = "intersection"
	KindBlanketCollision Kind = "blanket-collision"
)

// Budget bounds a sampling run.
type Budget struct {
	MaxAttempts int           // 0 = unlimited
	Timeout     time.Duration // wall-clock limit for external calls
}
