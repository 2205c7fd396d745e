package core

// StaticRequirement is a func-backed Requirement. Everything except the
// active flag is fixed at construction; the flag may be toggled between
// checks to take the requirement out of rotation without reconfiguring
// the checker.
type StaticRequirement struct {
	name     string
	kind     Kind
	optional bool
	active   bool
	msg      string
	pred     Predicate
}

func NewStaticRequirement(name string, kind Kind, optional bool, msg string, pred Predicate) *StaticRequirement {
	return &StaticRequirement{
		name:     name,
		kind:     kind,
		optional: optional,
		active:   true,
		msg:      msg,
		pred:     pred,
	}
}

func (r *StaticRequirement) Name() string         { return r.name }
func (r *StaticRequirement) Kind() Kind           { return r.kind }
func (r *StaticRequirement) Optional() bool       { return r.optional }
func (r *StaticRequirement) Active() bool         { return r.active }
func (r *StaticRequirement) ViolationMsg() string { return r.msg }

func (r *StaticRequirement) SetActive(active bool) { r.active = active }

func (r *StaticRequirement) FalsifiedBy(sample Sample) bool { return r.pred(sample) }
