package content

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DateLayout is the date format used in frontmatter and the posts API.
const DateLayout = "2006-01-02"

// Date is a frontmatter date. It accepts 2006-01-02 or RFC 3339.
type Date struct {
	time.Time
}

// ParseDate parses a date in either accepted layout.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return Date{t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("date %q is not in %s or RFC 3339 form", s, DateLayout)
	}
	return Date{t}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: date must be a scalar", value.Line)
	}
	parsed, err := ParseDate(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*d = parsed
	return nil
}

// MarshalJSON writes the day in DateLayout.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// StringList accepts either a YAML sequence or a comma-separated scalar.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *StringList) UnmarshalYAML(value *yaml.Node) error {
	var items []string
	switch value.Kind {
	case yaml.ScalarNode:
		items = strings.Split(value.Value, ",")
	case yaml.SequenceNode:
		if err := value.Decode(&items); err != nil {
			return err
		}
	default:
		return fmt.Errorf("line %d: expected a list or a comma-separated string", value.Line)
	}
	out := make(StringList, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	*l = out
	return nil
}

// Flag is a frontmatter switch. Booleans, numbers and strings are all
// accepted; empty, "false", "no", "off" and zero are false and anything else
// is true.
type Flag bool

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Flag) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar flag", value.Line)
	}
	switch value.ShortTag() {
	case "!!null":
		*f = false
		return nil
	case "!!bool":
		var b bool
		if err := value.Decode(&b); err != nil {
			return err
		}
		*f = Flag(b)
		return nil
	case "!!int", "!!float":
		var n float64
		if err := value.Decode(&n); err != nil {
			return err
		}
		*f = n != 0
		return nil
	}
	switch strings.ToLower(strings.TrimSpace(value.Value)) {
	case "", "false", "no", "off", "0":
		*f = false
	default:
		*f = true
	}
	return nil
}

// Meta is a post's frontmatter.
type Meta struct {
	Title       string     `yaml:"title" json:"title"`
	Date        Date       `yaml:"date" json:"date"`
	Description string     `yaml:"description" json:"description,omitempty"`
	Keywords    StringList `yaml:"keywords" json:"keywords,omitempty"`
	Tags        StringList `yaml:"tags" json:"tags"`
	Image       string     `yaml:"image" json:"image,omitempty"`
	ImageAlt    string     `yaml:"imageAlt" json:"imageAlt,omitempty"`
	Hidden      Flag       `yaml:"hidden" json:"-"`
}
