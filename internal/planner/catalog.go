package planner

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// Option is a selectable value with its display label.
type Option struct {
	ID    string `yaml:"id" json:"id"`
	Label string `yaml:"label" json:"label"`
}

// Catalog is the table of values the form offers.
type Catalog struct {
	Parks     []Option `yaml:"parks" json:"parks"`
	AgeGroups []string `yaml:"age_groups" json:"age_groups"`
	Areas     []string `yaml:"areas" json:"areas"`
	Durations []Option `yaml:"durations" json:"durations"`
	Focuses   []string `yaml:"focuses" json:"focuses"`
}

// DefaultCatalog returns the embedded option table.
func DefaultCatalog() *Catalog {
	c, err := ParseCatalog(defaultCatalogYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

// LoadCatalog reads a catalog file. An empty path yields the embedded table.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates a YAML catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate rejects empty park lists and parks or durations sharing an id
// or a label, since two entries with the same label are indistinguishable
// on screen.
func (c *Catalog) Validate() error {
	if len(c.Parks) == 0 {
		return errors.New("catalog: no parks configured")
	}
	if err := uniqueOptions("park", c.Parks); err != nil {
		return err
	}
	return uniqueOptions("duration", c.Durations)
}

func uniqueOptions(kind string, opts []Option) error {
	ids := make(map[string]bool, len(opts))
	labels := make(map[string]string, len(opts))
	for _, o := range opts {
		if o.ID == "" {
			return fmt.Errorf("catalog: %s with label %q has no id", kind, o.Label)
		}
		if ids[o.ID] {
			return fmt.Errorf("catalog: duplicate %s id %q", kind, o.ID)
		}
		ids[o.ID] = true
		if prev, ok := labels[o.Label]; ok {
			return fmt.Errorf("catalog: %s %q and %q share label %q", kind, prev, o.ID, o.Label)
		}
		labels[o.Label] = o.ID
	}
	return nil
}

// ParkLabel returns the display name for a park id, or the id itself when
// the park is not in the table.
func (c *Catalog) ParkLabel(id string) string {
	for _, p := range c.Parks {
		if p.ID == id {
			return p.Label
		}
	}
	return id
}

// HasPark reports whether id is an offered park.
func (c *Catalog) HasPark(id string) bool {
	return slices.ContainsFunc(c.Parks, func(o Option) bool { return o.ID == id })
}

// HasDuration reports whether d is an offered duration. The empty value
// (no selection) is always accepted.
func (c *Catalog) HasDuration(d Duration) bool {
	if d == "" {
		return true
	}
	return slices.ContainsFunc(c.Durations, func(o Option) bool { return o.ID == string(d) })
}

// Offers reports whether value is a checkbox of category. Unknown
// categories offer nothing.
func (c *Catalog) Offers(category Category, value string) bool {
	switch category {
	case CategoryAgeGroup:
		return slices.Contains(c.AgeGroups, value)
	case CategoryInterests:
		return slices.Contains(c.Areas, value)
	case CategoryPriorities:
		return slices.Contains(c.Focuses, value)
	default:
		return false
	}
}
