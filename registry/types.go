// Package registry loads declarative requirement sets from YAML and binds
// them to a predicate catalog supplied by the caller.
package registry

// Entry declares one requirement in the registry document.
type Entry struct {
	Name         string `yaml:"name"`
	Kind         string `yaml:"kind"`      // generic | intersection | blanket-collision
	Predicate    string `yaml:"predicate"` // catalog key
	Optional     bool   `yaml:"optional"`
	Active       *bool  `yaml:"active"` // nil defaults to true
	ViolationMsg string `yaml:"violation_msg"`
}

// Registry is the root of the requirement configuration document.
type Registry struct {
	Requirements []Entry `yaml:"requirements"`
}
