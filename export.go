// Structured export.
//
// Posts are exported as maps from key to value: strings and integers as
// themselves, timestamps in DateLayout, multivalue keys as lists. Only keys
// that would be serialized appear, so an export carries exactly what the
// text form carries.
package mtif

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Map returns the post's fields keyed by key name.
func (p *Post) Map() map[string]any {
	m := make(map[string]any)
	for _, key := range validKeys {
		if !p.Has(key) {
			continue
		}
		if key.Multivalue() {
			vs := p.multi[key]
			list := make([]any, len(vs))
			for i, v := range vs {
				list[i] = v.native()
			}
			m[string(key)] = list
			continue
		}
		m[string(key)] = p.single[key].native()
	}
	return m
}

// native returns the value as a plain Go value for encoders.
func (v Value) native() any {
	if v.kind == KindInt {
		return v.i
	}
	return v.String()
}

// MarshalJSON implements json.Marshaler.
func (p *Post) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Map())
}

// Export writes doc to w in the named format.
func Export(w io.Writer, doc *Document, format string) error {
	posts := make([]map[string]any, len(doc.Posts))
	for i, p := range doc.Posts {
		posts[i] = p.Map()
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(posts)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(posts); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		// TOML documents are tables, so posts become an array of tables.
		return toml.NewEncoder(w).Encode(map[string]any{"posts": posts})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
