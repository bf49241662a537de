package batch

import (
	"io"

	"github.com/Haisairova-Official/SVO-Extractor/container"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config configures a batch extraction.
type Config struct {
	In      string     `yaml:"in"`
	Out     string     `yaml:"out"`
	Log     string     `yaml:"log,omitempty"`
	Jobs    int        `yaml:"jobs,omitempty"`
	Formats FormatList `yaml:"formats,omitempty"`
	DryRun  bool       `yaml:"dryRun,omitempty"`
}

// FormatList is a list of format names. In YAML, it can be a single string or
// a list of them.
type FormatList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *FormatList) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		var s string
		if err := n.Decode(&s); err != nil {
			return err
		}
		*l = FormatList{s}
	case yaml.SequenceNode:
		var s []string
		if err := n.Decode(&s); err != nil {
			return err
		}
		*l = FormatList(s)
	default:
		return errors.Errorf("line %d: expected format name or list of format names", n.Line)
	}
	return nil
}

// LoadConfig parses a YAML config. Unknown fields are an error. Defaults are
// not applied.
func LoadConfig(r io.Reader) (*Config, error) {
	var c Config
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(&c); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "could not parse config")
	}
	return &c, nil
}

// ApplyDefaults sets the default values for unset fields.
func (c *Config) ApplyDefaults() {
	if c.Jobs == 0 {
		c.Jobs = 1
	}
	if len(c.Formats) == 0 {
		c.Formats = container.GetFormats()
	}
}

// Validate checks the config. It should be called after ApplyDefaults.
func (c *Config) Validate() error {
	if c.In == "" || c.Out == "" {
		return errors.New("in and out are required")
	}
	if c.Jobs < 1 {
		return errors.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}
	if len(c.Formats) == 0 {
		return errors.New("no formats enabled")
	}
	for _, f := range c.Formats {
		if _, ok := container.GetFormat(f); !ok {
			return errors.Errorf("unknown format %q", f)
		}
	}
	return nil
}

func (c *Config) format(path string) (container.Format, bool) {
	f, ok := container.ForPath(path)
	if !ok {
		return f, false
	}
	for _, n := range c.Formats {
		if n == f.Name {
			return f, true
		}
	}
	return f, false
}
