// Package theme loads named color roles from YAML and resolves them
// against the colr specifier tables, so applications can style output
// by role ("error", "heading") instead of hard-coded colors.
package theme

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/colr"
)

// ErrUnknownRole reports a lookup of a role the theme does not define.
var ErrUnknownRole = errors.New("unknown theme role")

// Entry is one role definition. In YAML an entry is either a bare
// scalar, read as the foreground specifier, or a mapping with fore,
// back and style keys.
type Entry struct {
	Fore  string `yaml:"fore"`
	Back  string `yaml:"back"`
	Style string `yaml:"style"`
}

func (e *Entry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		e.Fore = node.Value
		return nil
	}
	type plain Entry
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*e = Entry(p)
	return nil
}

// specs resolves the entry's specifiers, validating each against the
// color and style tables.
func (e Entry) specs() ([]colr.Spec, error) {
	var out []colr.Spec
	if e.Fore != "" {
		sp, err := colr.Resolve(colr.Fore, e.Fore)
		if err != nil {
			return nil, err
		}
		out = append(out, sp)
	}
	if e.Back != "" {
		sp, err := colr.Resolve(colr.Back, e.Back)
		if err != nil {
			return nil, err
		}
		out = append(out, sp)
	}
	if e.Style != "" {
		sp, err := colr.ResolveStyle(e.Style)
		if err != nil {
			return nil, err
		}
		out = append(out, sp)
	}
	return out, nil
}

// Theme maps role names to resolved spec lists. Entries are validated
// once at load, so lookups cannot fail on bad specifiers.
type Theme struct {
	roles map[string][]colr.Spec
}

// Load reads YAML role definitions and validates every entry.
func Load(r io.Reader) (*Theme, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}
	return Parse(data)
}

// LoadFile loads a theme from a YAML file.
func LoadFile(path string) (*Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open theme: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Parse builds a theme from YAML bytes.
func Parse(data []byte) (*Theme, error) {
	var raw map[string]Entry
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	t := &Theme{roles: make(map[string][]colr.Spec, len(raw))}
	for name, entry := range raw {
		specs, err := entry.specs()
		if err != nil {
			return nil, fmt.Errorf("role %q: %w", name, err)
		}
		t.roles[name] = specs
	}
	return t, nil
}

// Specs returns the resolved spec list for a role.
func (t *Theme) Specs(role string) ([]colr.Spec, error) {
	specs, ok := t.roles[role]
	if !ok {
		return nil, fmt.Errorf("%q: %w", role, ErrUnknownRole)
	}
	out := make([]colr.Spec, len(specs))
	copy(out, specs)
	return out, nil
}

// Style appends text styled by a role to a new chain.
func (t *Theme) Style(role, text string) (*colr.Colr, error) {
	specs, err := t.Specs(role)
	if err != nil {
		return nil, err
	}
	return colr.New().Append(text, specs...), nil
}

// Names returns the defined role names, sorted.
func (t *Theme) Names() []string {
	names := make([]string, 0, len(t.roles))
	for name := range t.roles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge overlays other's roles on top of t, returning a new theme.
// Roles defined in both take other's definition.
func (t *Theme) Merge(other *Theme) *Theme {
	merged := &Theme{roles: make(map[string][]colr.Spec, len(t.roles)+len(other.roles))}
	for name, specs := range t.roles {
		merged.roles[name] = specs
	}
	for name, specs := range other.roles {
		merged.roles[name] = specs
	}
	return merged
}
