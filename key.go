// Key registry.
//
// The vocabulary is closed. Each key is classified on two independent axes:
// multiline (value lives in its own separator-delimited block) and
// multivalue (values accumulate into an ordered list). The declaration order
// of the base lists below is the serialization order, so it must not be
// sorted or otherwise rearranged.
package mtif

import (
	"slices"
	"strings"
)

// Key identifies a post field. The zero value is not a valid key.
type Key string

// Registered keys.
const (
	KeyAuthor          Key = "author"
	KeyTitle           Key = "title"
	KeyStatus          Key = "status"
	KeyBasename        Key = "basename"
	KeyDate            Key = "date"
	KeyUniqueURL       Key = "unique_url"
	KeyBody            Key = "body"
	KeyExtendedBody    Key = "extended_body"
	KeyExcerpt         Key = "excerpt"
	KeyKeywords        Key = "keywords"
	KeyAllowComments   Key = "allow_comments"
	KeyAllowPings      Key = "allow_pings"
	KeyConvertBreaks   Key = "convert_breaks"
	KeyNoEntry         Key = "no_entry"
	KeyPrimaryCategory Key = "primary_category"
	KeyCategory        Key = "category"
	KeyTags            Key = "tags"
	KeyComment         Key = "comment"
	KeyPing            Key = "ping"
)

// Separator lines.
const (
	FieldSeparator = "-----"
	PostSeparator  = "--------"
)

var (
	singleValueKeys = []Key{
		KeyAuthor, KeyTitle, KeyStatus, KeyBasename, KeyDate, KeyUniqueURL,
		KeyBody, KeyExtendedBody, KeyExcerpt, KeyKeywords, KeyAllowComments,
		KeyAllowPings, KeyConvertBreaks, KeyNoEntry, KeyPrimaryCategory,
	}
	multilineKeys  = []Key{KeyBody, KeyExtendedBody, KeyExcerpt, KeyKeywords, KeyComment, KeyPing}
	multivalueKeys = []Key{KeyCategory, KeyTags, KeyComment, KeyPing}
	csvKeys        = []Key{KeyTags}

	validKeys = sortedKeys()

	slsv = filter(singleValueKeys, func(k Key) bool { return !k.Multiline() })
	slmv = filter(multivalueKeys, func(k Key) bool { return !k.Multiline() })
	mlsv = filter(singleValueKeys, Key.Multiline)
	mlmv = filter(multivalueKeys, Key.Multiline)
)

func sortedKeys() []Key {
	keys := slices.Concat(singleValueKeys, multilineKeys, multivalueKeys)
	slices.Sort(keys)
	return slices.Compact(keys)
}

func filter(keys []Key, keep func(Key) bool) []Key {
	var out []Key
	for _, k := range keys {
		if keep(k) {
			out = append(out, k)
		}
	}
	return out
}

// Keys returns every registered key in sorted order.
func Keys() []Key { return slices.Clone(validKeys) }

// SingleLineSingleValueKeys returns keys written as one "LABEL: value" line.
func SingleLineSingleValueKeys() []Key { return slices.Clone(slsv) }

// SingleLineMultivalueKeys returns keys written as repeated "LABEL: value"
// lines, or one comma-separated line for CSV keys.
func SingleLineMultivalueKeys() []Key { return slices.Clone(slmv) }

// MultilineSingleValueKeys returns keys written as a single field block.
func MultilineSingleValueKeys() []Key { return slices.Clone(mlsv) }

// MultilineMultivalueKeys returns keys written as one field block per value.
func MultilineMultivalueKeys() []Key { return slices.Clone(mlmv) }

// ParseKey maps a field label such as "ALLOW COMMENTS" to its key. The
// second result is false when the label is not in the registry.
func ParseKey(label string) (Key, bool) {
	k := Key(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(label)), " ", "_"))
	return k, k.Valid()
}

// Valid reports whether k is a registered key.
func (k Key) Valid() bool {
	_, ok := slices.BinarySearch(validKeys, k)
	return ok
}

func (k Key) Multiline() bool { return slices.Contains(multilineKeys, k) }
func (k Key) Multivalue() bool { return slices.Contains(multivalueKeys, k) }

// CSV reports whether the key's values are written together on one
// comma-separated line.
func (k Key) CSV() bool { return slices.Contains(csvKeys, k) }

// Label returns the key as it appears in the text format.
func (k Key) Label() string {
	return strings.ToUpper(strings.ReplaceAll(string(k), "_", " "))
}

func (k Key) String() string { return string(k) }
