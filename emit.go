// Post serialization.
//
// Output order is fixed by the registry, never by the order fields were set:
// single-line single-value keys, single-line multivalue keys, multiline
// single-value keys, then multiline multivalue keys, each group in declared
// order. The record is closed with a field separator and the post separator.
package mtif

import (
	"strings"
	"unicode"
)

// Lines returns the serialized post as text lines without newlines. A
// multiline value contributes one element per physical line.
func (p *Post) Lines() []string {
	var out []string
	field := func(key Key, v Value) {
		out = append(out, key.Label()+": "+v.String())
	}
	block := func(key Key, v Value) {
		out = append(out, FieldSeparator, key.Label()+":")
		out = append(out, strings.Split(v.String(), "\n")...)
	}

	for _, key := range slsv {
		if v := p.single[key]; !v.Empty() {
			field(key, v)
		}
	}
	for _, key := range slmv {
		vs := p.multi[key]
		if len(vs) == 0 {
			continue
		}
		if key.CSV() {
			field(key, StringValue(joinCSV(vs)))
			continue
		}
		for _, v := range vs {
			field(key, v)
		}
	}
	for _, key := range mlsv {
		if v := p.single[key]; !v.Empty() {
			block(key, v)
		}
	}
	for _, key := range mlmv {
		for _, v := range p.multi[key] {
			block(key, v)
		}
	}

	// Every block separator is followed by its label, so the closing
	// separator is always needed.
	return append(out, FieldSeparator, PostSeparator)
}

// String returns the serialized post, newline terminated.
func (p *Post) String() string {
	return strings.Join(p.Lines(), "\n") + "\n"
}

// MarshalText implements encoding.TextMarshaler.
func (p *Post) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// joinCSV writes values as one comma-separated list, quoting any element
// that contains whitespace.
func joinCSV(vs []Value) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		s := v.String()
		if strings.ContainsFunc(s, unicode.IsSpace) {
			s = `"` + s + `"`
		}
		parts[i] = s
	}
	return strings.Join(parts, ",")
}
