// Post parsing.
//
// A post's lines are cut into blocks at every line that starts with the
// field separator. The match is anchored: five dashes in the middle of a
// line are ordinary text. The first block holds "LABEL: value" header lines;
// every later block is "-----", a "LABEL:" line, and the value lines, which
// are rejoined and stripped of trailing whitespace. A block with nothing
// after its separator is skipped.
package mtif

import (
	"strings"
	"unicode"
)

// ParsePost builds a post from one post's worth of lines. Trailing newline
// characters on each line are ignored. Unrecognized labels are recorded in
// Post.Unknown and otherwise dropped.
func ParsePost(lines []string) *Post {
	p := NewPost()
	p.Source = append([]string{}, lines...)

	for i, block := range blocks(lines) {
		if i == 0 && !separator(block[0]) {
			for _, ln := range block {
				ln = strings.TrimSpace(ln)
				if ln == "" {
					continue
				}
				label, raw, ok := strings.Cut(ln, ": ")
				if !ok {
					continue
				}
				p.store(label, raw)
			}
			continue
		}
		if len(block) < 2 {
			continue
		}
		label := strings.TrimSuffix(chomp(block[1]), ":")
		body := make([]string, 0, len(block)-2)
		for _, ln := range block[2:] {
			body = append(body, chomp(ln))
		}
		p.store(label, strings.TrimRightFunc(strings.Join(body, "\n"), unicode.IsSpace))
	}
	return p
}

// blocks splits lines before every field separator line.
func blocks(lines []string) [][]string {
	var out [][]string
	start := 0
	for i, ln := range lines {
		if i > start && separator(ln) {
			out = append(out, lines[start:i])
			start = i
		}
	}
	if start < len(lines) {
		out = append(out, lines[start:])
	}
	return out
}

func separator(line string) bool { return strings.HasPrefix(line, FieldSeparator) }

func chomp(line string) string { return strings.TrimRight(line, "\r\n") }

// store coerces raw and files it under the key named by label.
func (p *Post) store(label, raw string) {
	key, ok := ParseKey(label)
	if !ok {
		p.Unknown = append(p.Unknown, label)
		return
	}
	v := Decode(raw)

	switch {
	case key.CSV():
		// Tags are split from the raw text so "007" stays "007".
		for _, tok := range strings.Split(raw, ",") {
			tok = strings.TrimSuffix(strings.TrimPrefix(tok, `"`), `"`)
			if tok != "" {
				p.multi[key] = append(p.multi[key], StringValue(tok))
			}
		}
	case key.Multivalue():
		if !v.Empty() {
			p.multi[key] = append(p.multi[key], v)
		}
	default:
		p.single[key] = v
	}
}
