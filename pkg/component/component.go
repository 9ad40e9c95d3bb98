// Package component models rich chat text and its canonical JSON form.
package component

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// Component is a styled run of text with optional children.
type Component struct {
	Text          string      `json:"text"`
	Translate     string      `json:"translate,omitempty"`
	With          []Component `json:"with,omitempty"`
	Color         string      `json:"color,omitempty"`
	Font          string      `json:"font,omitempty"`
	Bold          *bool       `json:"bold,omitempty"`
	Italic        *bool       `json:"italic,omitempty"`
	Underlined    *bool       `json:"underlined,omitempty"`
	Strikethrough *bool       `json:"strikethrough,omitempty"`
	Obfuscated    *bool       `json:"obfuscated,omitempty"`
	Insertion     string      `json:"insertion,omitempty"`
	Extra         []Component `json:"extra,omitempty"`
}

// Empty returns the component with no text, style or children.
func Empty() Component {
	return Component{}
}

// Text returns an unstyled component.
func Text(s string) Component {
	return Component{Text: s}
}

// Append adds children and returns the result.
func (c Component) Append(children ...Component) Component {
	c.Extra = append(append([]Component{}, c.Extra...), children...)
	return c
}

func (c Component) IsEmpty() bool {
	return c.Text == "" && c.Translate == "" && len(c.Extra) == 0 && len(c.With) == 0
}

// PlainText concatenates the text of c and its children, depth first.
// Translation keys are rendered as-is.
func (c Component) PlainText() string {
	var sb strings.Builder
	c.writePlain(&sb)
	return sb.String()
}

func (c Component) writePlain(sb *strings.Builder) {
	if c.Translate != "" {
		sb.WriteString(c.Translate)
	} else {
		sb.WriteString(c.Text)
	}
	for _, e := range c.Extra {
		e.writePlain(sb)
	}
}

// Marshal returns the canonical JSON serialization of c.
func Marshal(c Component) (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, "component: marshal")
	}
	return string(data), nil
}

// Unmarshal decodes a serialized component. Besides objects it accepts the
// shorthand forms: a bare JSON string, and an array whose first element is
// the parent and the rest are its children.
func Unmarshal(s string) (Component, error) {
	var c Component
	if err := json.Unmarshal([]byte(s), &c); err != nil {
		return Component{}, errors.Wrap(err, "component: unmarshal")
	}
	return c, nil
}

// UnmarshalJSON implements json.Unmarshaler. null leaves c unchanged.
func (c *Component) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errors.New("component: empty input")
	}
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Text(s)
		return nil
	case '[':
		var parts []Component
		if err := json.Unmarshal(data, &parts); err != nil {
			return err
		}
		if len(parts) == 0 {
			return errors.New("component: empty array")
		}
		*c = parts[0].Append(parts[1:]...)
		return nil
	case '{':
		type plain Component
		var p plain
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		*c = Component(p)
		return nil
	default:
		return errors.Errorf("component: unexpected json %q", data[:1])
	}
}
