package strain

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Strain is a named deployable variant of a site.
type Strain struct {
	Name           string `yaml:"name" json:"name"`
	Locations      `yaml:",inline"`
	Static         string `yaml:"static,omitempty" json:"static,omitempty"`
	DirectoryIndex string `yaml:"directoryIndex,omitempty" json:"directoryIndex,omitempty"`
	URL            string `yaml:"url,omitempty" json:"url,omitempty"`
}

// URLs returns the local URL wrapper of the strain locations.
func (s Strain) URLs() URLs { return NewURLs(s.Locations) }

// Config is the strain section of a project configuration file.
type Config struct {
	Strains []Strain `yaml:"strains" json:"strains"`
}

// LoadFile reads a YAML project configuration. A missing file yields an empty
// config and no error.
func LoadFile(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read strain config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse strain config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that every strain is named uniquely and has code and content.
func (c Config) Validate() error {
	seen := make(map[string]bool, len(c.Strains))
	for i, s := range c.Strains {
		if s.Name == "" {
			return fmt.Errorf("strain #%d: name is required", i)
		}
		if seen[s.Name] {
			return fmt.Errorf("strain %q: duplicate name", s.Name)
		}
		seen[s.Name] = true
		if s.Code == "" {
			return fmt.Errorf("strain %q: code is required", s.Name)
		}
		if s.Content == "" {
			return fmt.Errorf("strain %q: content is required", s.Name)
		}
	}
	return nil
}

// Names returns the strain names in file order.
func (c Config) Names() []string {
	out := make([]string, 0, len(c.Strains))
	for _, s := range c.Strains {
		out = append(out, s.Name)
	}
	return out
}
