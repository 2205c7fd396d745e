package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pale-ridge/sampler/core"
)

// Load reads and parses a requirement registry from a YAML file.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file %s: %w", path, err)
	}
	return LoadBytes(data)
}

// LoadBytes parses a requirement registry from YAML data.
func LoadBytes(data []byte) (*Registry, error) {
	var reg Registry
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("failed to parse registry YAML: %w", err)
	}
	return &reg, nil
}

// Build resolves every entry's predicate against the catalog and returns
// the requirement set in document order. Unknown kinds, unknown predicates,
// and duplicate names are configuration errors.
func Build(reg *Registry, catalog map[string]core.Predicate) ([]core.Requirement, error) {
	seen := make(map[string]bool, len(reg.Requirements))
	reqs := make([]core.Requirement, 0, len(reg.Requirements))

	for _, entry := range reg.Requirements {
		if entry.Name == "" {
			return nil, fmt.Errorf("registry entry without a name")
		}
		if seen[entry.Name] {
			return nil, fmt.Errorf("duplicate requirement name %q", entry.Name)
		}
		seen[entry.Name] = true

		kind, err := parseKind(entry.Kind)
		if err != nil {
			return nil, fmt.Errorf("requirement %q: %w", entry.Name, err)
		}

		pred, ok := catalog[entry.Predicate]
		if !ok {
			return nil, fmt.Errorf("requirement %q: unknown predicate %q", entry.Name, entry.Predicate)
		}

		msg := entry.ViolationMsg
		if msg == "" {
			msg = fmt.Sprintf("requirement %s violated", entry.Name)
		}

		req := core.NewStaticRequirement(entry.Name, kind, entry.Optional, msg, pred)
		if entry.Active != nil && !*entry.Active {
			req.SetActive(false)
		}
		reqs = append(reqs, req)
	}

	return reqs, nil
}

func parseKind(kind string) (core.Kind, error) {
	switch kind {
	case "", "generic":
		return core.KindGeneric, nil
	case "intersection":
		return core.KindIntersection, nil
	case "blanket-collision":
		return core.KindBlanketCollision, nil
	default:
		return "", fmt.Errorf("unknown kind %q", kind)
	}
}
