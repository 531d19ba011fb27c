package mtif

import (
	"slices"
	"testing"
)

func TestParseIgnoresUnanchoredSeparators(t *testing.T) {
	p := ParsePost([]string{
		"AUTHOR: The ----- Meyer Kids",
		"TITLE: Crazy Parents: -------- A Primer",
		"-----",
		"BODY:",
		"Start singing an obnoxious song and ----- never ----- stop.",
		"-----",
		"--------",
	})

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"author", p.Author().String(), "The ----- Meyer Kids"},
		{"title", p.Title().String(), "Crazy Parents: -------- A Primer"},
		{"body", p.Body().String(), "Start singing an obnoxious song and ----- never ----- stop."},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestParseHeader(t *testing.T) {
	p := ParsePost([]string{
		"AUTHOR: The Meyer Kids\n",
		"",
		"DATE: 06/19/1999 07:00:00 PM\n",
		"   ",
		"ALLOW COMMENTS: 0\n",
		"EMAIL: nobody@example.com\n",
		"not a field line",
	})

	if got := p.Author().String(); got != "The Meyer Kids" {
		t.Errorf("author = %q, want %q", got, "The Meyer Kids")
	}
	if p.Date().Kind() != KindTime {
		t.Errorf("date kind = %s, want time", p.Date().Kind())
	}
	if n, ok := p.AllowComments().Int(); !ok || n != 0 {
		t.Errorf("allow_comments = %v, want 0", p.AllowComments())
	}
	if !slices.Equal(p.Unknown, []string{"EMAIL"}) {
		t.Errorf("Unknown = %q, want [EMAIL]", p.Unknown)
	}
}

func TestParseLastOccurrenceWins(t *testing.T) {
	p := ParsePost([]string{"TITLE: First", "TITLE: Second"})
	if got := p.Title().String(); got != "Second" {
		t.Errorf("title = %q, want %q", got, "Second")
	}
}

func TestParseMultilineBlock(t *testing.T) {
	p := ParsePost([]string{
		"-----",
		"BODY:",
		"First paragraph.",
		"",
		"Second paragraph.",
		"",
		"",
		"-----",
		"EXTENDED BODY:",
		"  indented",
		"-----",
		"EXCERPT:",
		"-----",
		"--------",
	})

	if got, want := p.Body().String(), "First paragraph.\n\nSecond paragraph."; got != want {
		t.Errorf("body = %q, want %q", got, want)
	}
	if got, want := p.ExtendedBody().String(), "  indented"; got != want {
		t.Errorf("extended_body = %q, want %q", got, want)
	}
	// A label with no value lines still sets the key, to an empty string.
	if v := p.Excerpt(); !v.IsSet() || v.String() != "" {
		t.Errorf("excerpt = %v (set %v), want empty string", v, v.IsSet())
	}
}

func TestParseEmptySeparatorBlocks(t *testing.T) {
	p := ParsePost([]string{"TITLE: x", "-----", "-----", "-----", "--------"})
	if got := p.Title().String(); got != "x" {
		t.Errorf("title = %q, want %q", got, "x")
	}
	if len(p.Unknown) != 0 {
		t.Errorf("Unknown = %q, want none", p.Unknown)
	}
}

func TestParseComments(t *testing.T) {
	p := ParsePost([]string{
		"-----",
		"COMMENT:",
		"AUTHOR: Jim Meyer",
		"Yeah, that works.",
		"-----",
		"COMMENT:",
		"",
		"-----",
		"COMMENT:",
		"AUTHOR: Someone Else",
		"Me too.",
		"-----",
		"PING:",
		"TITLE: Elsewhere",
		"-----",
		"--------",
	})

	comments := p.Comments()
	if len(comments) != 2 {
		t.Fatalf("got %d comments, want 2 (empty comment dropped)", len(comments))
	}
	if got, want := comments[0].String(), "AUTHOR: Jim Meyer\nYeah, that works."; got != want {
		t.Errorf("comment[0] = %q, want %q", got, want)
	}
	if got := p.Pings(); len(got) != 1 {
		t.Errorf("got %d pings, want 1", len(got))
	}
	// Lines inside a comment block are value text, not post fields.
	if p.Author().IsSet() {
		t.Errorf("author = %v, want unset", p.Author())
	}
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"quoted and bare", `"Movable Type",foo,bar`, []string{"Movable Type", "foo", "bar"}},
		{"all quoted", `"a","b c"`, []string{"a", "b c"}},
		{"empty tokens", `a,,b,`, []string{"a", "b"}},
		{"empty quoted token", `a,"",b`, []string{"a", "b"}},
		{"numeric", `2010`, []string{"2010"}},
		{"leading zeros kept", `007,08`, []string{"007", "08"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParsePost([]string{"TAGS: " + tt.raw})
			var got []string
			for _, v := range p.Tags() {
				if v.Kind() != KindString {
					t.Errorf("tag %v kind = %s, want string", v, v.Kind())
				}
				got = append(got, v.String())
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("tags = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseTagsAccumulate(t *testing.T) {
	p := ParsePost([]string{"TAGS: a,b", "TAGS: c"})
	if n := len(p.Tags()); n != 3 {
		t.Errorf("got %d tags, want 3", n)
	}
}

func TestParseMultivalueKeepsNonEmpty(t *testing.T) {
	p := ParsePost([]string{
		"CATEGORY: News",
		"CATEGORY: 0",
		"CATEGORY: Fun!",
	})

	cats := p.Categories()
	if len(cats) != 3 {
		t.Fatalf("got %d categories, want 3", len(cats))
	}
	if cats[1].Kind() != KindInt {
		t.Errorf("category[1] kind = %s, want int", cats[1].Kind())
	}
}

func TestParseKeepsSource(t *testing.T) {
	lines := []string{"TITLE: x", "--------"}
	p := ParsePost(lines)
	lines[0] = "changed"

	if !slices.Equal(p.Source, []string{"TITLE: x", "--------"}) {
		t.Errorf("Source = %q", p.Source)
	}
}

func TestParseEmpty(t *testing.T) {
	p := ParsePost(nil)
	for _, key := range Keys() {
		if p.Has(key) {
			t.Errorf("Has(%s) = true on empty post", key)
		}
	}
}

func TestBlocks(t *testing.T) {
	lines := []string{"A: 1", "-----", "B:", "x -----", "-----x", "--------"}
	got := blocks(lines)

	want := [][]string{
		{"A: 1"},
		{"-----", "B:", "x -----"},
		{"-----x"},
		{"--------"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d blocks, want %d: %q", len(got), len(want), got)
	}
	for i := range want {
		if !slices.Equal(got[i], want[i]) {
			t.Errorf("block %d = %q, want %q", i, got[i], want[i])
		}
	}
}
