// Documents: ordered collections of posts.
//
// Splitting a document into posts matches the post separator anywhere in a
// line, not only at its start. A title containing eight dashes therefore
// ends its post early. Field separators inside a post are anchored, so the
// two layers disagree; the document layer keeps the unanchored match.
package mtif

import (
	"bufio"
	"bytes"
	"io"
	"iter"
	"log/slog"
	"strings"
)

// Config holds options for reading and writing documents. The zero value is
// usable.
type Config struct {
	Compression Compression  // archive codec (default: chosen by file extension)
	MaxLineSize int          // longest accepted line in bytes (default 16MB)
	Logger      *slog.Logger // debug output (default: discarded)
}

// MaxLineSize is the default ceiling on a single input line.
const MaxLineSize = 16 * 1024 * 1024

func (c Config) withDefaults() Config {
	if c.MaxLineSize == 0 {
		c.MaxLineSize = MaxLineSize
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}

// Document is an ordered sequence of posts.
type Document struct {
	Posts []*Post
}

// Parse splits lines into posts and parses each one. A trailing group with
// no post separator still becomes a post.
func Parse(lines []string) *Document {
	doc := &Document{}
	start := 0
	for i, ln := range lines {
		if strings.Contains(ln, PostSeparator) {
			doc.Posts = append(doc.Posts, ParsePost(lines[start:i+1]))
			start = i + 1
		}
	}
	if start < len(lines) {
		doc.Posts = append(doc.Posts, ParsePost(lines[start:]))
	}
	return doc
}

// ParseString parses a whole document held in memory.
func ParseString(text string) *Document {
	if text == "" {
		return &Document{}
	}
	return Parse(strings.Split(strings.TrimSuffix(text, "\n"), "\n"))
}

// Read parses a document from r. Only errors from r are returned.
func Read(r io.Reader, cfg Config) (*Document, error) {
	cfg = cfg.withDefaults()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, min(64*1024, cfg.MaxLineSize)), cfg.MaxLineSize)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	doc := Parse(lines)
	cfg.Logger.Debug("mtif.read", "lines", len(lines), "posts", len(doc.Posts))
	for i, p := range doc.Posts {
		for _, label := range p.Unknown {
			cfg.Logger.Debug("mtif.unknown_label", "post", i, "label", label)
		}
	}
	return doc, nil
}

// Len returns the number of posts.
func (d *Document) Len() int { return len(d.Posts) }

// Append adds posts to the end of the document.
func (d *Document) Append(posts ...*Post) {
	d.Posts = append(d.Posts, posts...)
}

// All yields posts with their position. Break from the range loop to stop.
func (d *Document) All() iter.Seq2[int, *Post] {
	return func(yield func(int, *Post) bool) {
		for i, p := range d.Posts {
			if !yield(i, p) {
				return
			}
		}
	}
}

// String concatenates the serialized posts with nothing in between.
func (d *Document) String() string {
	var b strings.Builder
	for _, p := range d.Posts {
		b.WriteString(p.String())
	}
	return b.String()
}

// Bytes is String as a byte slice.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	for _, p := range d.Posts {
		buf.WriteString(p.String())
	}
	return buf.Bytes()
}

// WriteTo implements io.WriterTo.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, p := range d.Posts {
		n, err := io.WriteString(w, p.String())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
