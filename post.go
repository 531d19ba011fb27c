// Post records.
//
// A Post maps registered keys to typed values. Multivalue keys always hold a
// list (empty by default); single-value keys are present only once set. Every
// accessor validates the key against the registry and fails fast on misuse,
// since that is a programming error rather than bad input.
package mtif

import (
	"fmt"
	"slices"
)

// Post is one record of a document.
type Post struct {
	Source  []string // raw lines the post was parsed from
	Unknown []string // labels dropped during parsing, in encounter order

	single map[Key]Value
	multi  map[Key][]Value
}

// NewPost returns an empty post.
func NewPost() *Post {
	p := &Post{}
	p.ensure()
	return p
}

// ensure lets a zero Post be used like one from NewPost.
func (p *Post) ensure() {
	if p.single == nil {
		p.single = make(map[Key]Value)
	}
	if p.multi == nil {
		p.multi = make(map[Key][]Value, len(multivalueKeys))
		for _, k := range multivalueKeys {
			p.multi[k] = []Value{}
		}
	}
}

func single(key Key) error {
	if !key.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	if key.Multivalue() {
		return fmt.Errorf("%w: %s", ErrMultivalue, key)
	}
	return nil
}

func multi(key Key) error {
	if !key.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	if !key.Multivalue() {
		return fmt.Errorf("%w: %s", ErrSingleValue, key)
	}
	return nil
}

// Get returns the value of a single-value key. Unset keys yield the zero
// Value.
func (p *Post) Get(key Key) (Value, error) {
	if err := single(key); err != nil {
		return Value{}, err
	}
	return p.single[key], nil
}

// Set stores the value of a single-value key. Setting the zero Value unsets
// the key.
func (p *Post) Set(key Key, v Value) error {
	if err := single(key); err != nil {
		return err
	}
	p.ensure()
	if !v.IsSet() {
		delete(p.single, key)
		return nil
	}
	p.single[key] = v
	return nil
}

// Values returns a copy of the list held by a multivalue key. The result is
// never nil.
func (p *Post) Values(key Key) ([]Value, error) {
	if err := multi(key); err != nil {
		return nil, err
	}
	out := slices.Clone(p.multi[key])
	if out == nil {
		out = []Value{}
	}
	return out, nil
}

// SetValues replaces the list held by a multivalue key.
func (p *Post) SetValues(key Key, vs []Value) error {
	if err := multi(key); err != nil {
		return err
	}
	p.ensure()
	p.multi[key] = append([]Value{}, vs...)
	return nil
}

// Add appends to the list held by a multivalue key.
func (p *Post) Add(key Key, v Value) error {
	if err := multi(key); err != nil {
		return err
	}
	p.ensure()
	p.multi[key] = append(p.multi[key], v)
	return nil
}

// Unset clears a key: single-value keys become unset, multivalue keys empty.
func (p *Post) Unset(key Key) error {
	if !key.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	p.ensure()
	if key.Multivalue() {
		p.multi[key] = []Value{}
	} else {
		delete(p.single, key)
	}
	return nil
}

// Has reports whether key holds anything that would be written out.
func (p *Post) Has(key Key) bool {
	if key.Multivalue() {
		return len(p.multi[key]) > 0
	}
	return !p.single[key].Empty()
}

// Clone returns a deep copy of p.
func (p *Post) Clone() *Post {
	c := NewPost()
	c.Source = slices.Clone(p.Source)
	c.Unknown = slices.Clone(p.Unknown)
	for k, v := range p.single {
		c.single[k] = v
	}
	for k, vs := range p.multi {
		c.multi[k] = append([]Value{}, vs...)
	}
	return c
}

// get and list back the typed accessors; key is always registered there.
func (p *Post) get(key Key) Value { return p.single[key] }
func (p *Post) list(key Key) []Value {
	vs, _ := p.Values(key)
	return vs
}
