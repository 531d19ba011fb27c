// Search over post fields.
//
// Literal patterns (no regex metacharacters) take a fast path through
// strings.Contains. Anything else is compiled with regexp. Case-insensitive
// literal search lowers both needle and field text; case-insensitive regex
// search prefixes the pattern with (?i).
//
// Fields are matched in their encoded form, so a date is searched as
// "06/19/1999 07:00:00 PM" and an integer as its digits. Results are yielded
// lazily; break from the range loop to stop early.
package mtif

import (
	"fmt"
	"iter"
	"regexp"
	"slices"
	"strings"
)

// SearchOptions configures Search behaviour.
type SearchOptions struct {
	CaseSensitive bool
	Keys          []Key // restrict matching to these keys; empty means all
}

// Match is a single search result: the post, its position and the first
// key whose value matched.
type Match struct {
	Index int
	Key   Key
	Post  *Post
}

// Search yields every post with a field value matching pattern. Each post is
// reported at most once, for the first matching key in sorted key order (or
// in the order given by SearchOptions.Keys).
func (d *Document) Search(pattern string, opts SearchOptions) iter.Seq2[Match, error] {
	return func(yield func(Match, error) bool) {
		var match func(string) bool

		if regexp.QuoteMeta(pattern) == pattern {
			if opts.CaseSensitive {
				match = func(s string) bool { return strings.Contains(s, pattern) }
			} else {
				needle := strings.ToLower(pattern)
				match = func(s string) bool { return strings.Contains(strings.ToLower(s), needle) }
			}
		} else {
			expr := pattern
			if !opts.CaseSensitive {
				expr = "(?i)" + pattern
			}
			re, err := regexp.Compile(expr)
			if err != nil {
				yield(Match{}, fmt.Errorf("%w: %w", ErrInvalidPattern, err))
				return
			}
			match = re.MatchString
		}

		keys := validKeys
		if len(opts.Keys) > 0 {
			keys = opts.Keys
		}

		for i, p := range d.Posts {
			for _, key := range keys {
				if !key.Valid() {
					continue
				}
				if !slices.ContainsFunc(p.texts(key), match) {
					continue
				}
				if !yield(Match{Index: i, Key: key, Post: p}, nil) {
					return
				}
				break
			}
		}
	}
}

// texts returns the encoded values held by key.
func (p *Post) texts(key Key) []string {
	if key.Multivalue() {
		vs := p.multi[key]
		out := make([]string, len(vs))
		for i, v := range vs {
			out[i] = v.String()
		}
		return out
	}
	if v := p.single[key]; v.IsSet() {
		return []string{v.String()}
	}
	return nil
}
