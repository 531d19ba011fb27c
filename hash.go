// Post fingerprints.
//
// A fingerprint is a 16 hex character hash of a post's serialized text, so
// two posts that would be written identically share a fingerprint. Merged
// exports frequently repeat posts; Dedupe drops the repeats.
package mtif

import (
	"fmt"
	"hash/fnv"

	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// Hash algorithm constants.
const (
	AlgXXHash3 = 1 // Default, fastest
	AlgFNV1a   = 2 // No external dependencies
	AlgBlake2b = 3 // Best distribution
)

// hash digests a post's serialized text (see Post.String) to 16 hex
// characters. Unknown algorithms yield "".
func hash(text string, alg int) string {
	switch alg {
	case AlgXXHash3:
		return fmt.Sprintf("%016x", xxh3.HashString(text))
	case AlgFNV1a:
		h := fnv.New64a()
		h.Write([]byte(text))
		return fmt.Sprintf("%016x", h.Sum64())
	case AlgBlake2b:
		h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
		h.Write([]byte(text))
		return fmt.Sprintf("%016x", h.Sum(nil))
	default:
		return ""
	}
}

// Fingerprint hashes the serialized post. Source and Unknown do not
// contribute.
func (p *Post) Fingerprint(alg int) string {
	return hash(p.String(), alg)
}

// Dedupe removes posts whose fingerprint matches an earlier post, keeping
// the first occurrence and the original order. It returns how many posts
// were removed.
func (d *Document) Dedupe(alg int) int {
	seen := make(map[string]bool, len(d.Posts))
	kept := d.Posts[:0]
	for _, p := range d.Posts {
		fp := p.Fingerprint(alg)
		if seen[fp] {
			continue
		}
		seen[fp] = true
		kept = append(kept, p)
	}
	removed := len(d.Posts) - len(kept)
	clear(d.Posts[len(kept):])
	d.Posts = kept
	return removed
}
