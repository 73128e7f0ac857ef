package fs

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/aretw0/notas/pkg/core"
)

func TestEncodeDecode(t *testing.T) {
	created := time.Date(2024, 3, 1, 9, 30, 0, 123456789, time.UTC)
	updated := created.Add(2 * time.Hour)

	t.Run("Round Trip", func(t *testing.T) {
		want := core.Note{
			Title:     "Groceries",
			Content:   "- milk\n- eggs\n",
			CreatedAt: created,
			UpdatedAt: updated,
			Tags:      []string{"home", "weekly"},
			Color:     "#ffcc00",
		}

		got := Decode(Encode(want), "ignored.md", time.Now())
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Encoded Layout", func(t *testing.T) {
		n := core.Note{Title: "A", Content: "body", CreatedAt: created, UpdatedAt: updated}
		want := "---\n" +
			"title: A\n" +
			"created: 2024-03-01T09:30:00.123456789Z\n" +
			"modified: 2024-03-01T11:30:00.123456789Z\n" +
			"tags: []\n" +
			"---\n\n" +
			"body"
		if got := string(Encode(n)); got != want {
			t.Errorf("unexpected document:\n%s", got)
		}
	})

	t.Run("Body Starting With Blank Lines", func(t *testing.T) {
		want := core.Note{Title: "A", Content: "\n\nindented", CreatedAt: created, UpdatedAt: created, Tags: []string{}}
		got := Decode(Encode(want), "a.md", time.Now())
		if got.Content != want.Content {
			t.Errorf("expected content %q, got %q", want.Content, got.Content)
		}
	})

	t.Run("Title Newlines Flattened", func(t *testing.T) {
		n := core.Note{Title: "two\nlines", CreatedAt: created, UpdatedAt: created}
		got := Decode(Encode(n), "a.md", time.Now())
		if got.Title != "two lines" {
			t.Errorf("expected flattened title, got %q", got.Title)
		}
	})

	t.Run("Tags Round Trip", func(t *testing.T) {
		tests := []struct {
			name string
			tags []string
		}{
			{"Null Keyword", []string{"null"}},
			{"Upper Null Mixed", []string{"NULL", "ok"}},
			{"Tilde", []string{"~"}},
			{"Embedded Comma", []string{"a,b"}},
			{"Single Quoted", []string{"'q'"}},
			{"Anchor", []string{"&x"}},
			{"Alias", []string{"*x"}},
			{"Double Quote", []string{`say "hi"`}},
			{"Brackets", []string{"[x", "y]"}},
			{"Booleans And Numbers", []string{"true", "yes", "42", "1.5"}},
			{"Comment Marker", []string{"a #b", "#c"}},
			{"Plain", []string{"home", "weekly"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				n := core.Note{Title: "T", CreatedAt: created, UpdatedAt: created, Tags: tt.tags}
				got := Decode(Encode(n), "t.md", time.Now())
				if diff := cmp.Diff(tt.tags, got.Tags); diff != "" {
					t.Errorf("tags mismatch (-want +got):\n%s", diff)
				}
			})
		}
	})

	t.Run("Plain Tags Stay Bare", func(t *testing.T) {
		n := core.Note{Title: "T", CreatedAt: created, UpdatedAt: created, Tags: []string{"work", "null"}}
		if got := string(Encode(n)); !strings.Contains(got, "tags: [work, \"null\"]\n") {
			t.Errorf("unexpected tags line in:\n%s", got)
		}
	})
}

func TestDecode(t *testing.T) {
	fallback := time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("Plain File", func(t *testing.T) {
		got := Decode([]byte("hello"), "/notes/plain.md", fallback)
		want := core.Note{
			Title:     "plain",
			Content:   "hello",
			CreatedAt: fallback,
			UpdatedAt: fallback,
			Tags:      []string{},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Unclosed Header Is Body", func(t *testing.T) {
		data := "---\ntitle: Nope\nno closing line"
		got := Decode([]byte(data), "open.md", fallback)
		if got.Title != "open" || got.Content != data {
			t.Errorf("expected whole file as body, got title=%q content=%q", got.Title, got.Content)
		}
	})

	t.Run("Missing Fields Use Fallbacks", func(t *testing.T) {
		data := "---\ntitle:\ncreated: not-a-date\n---\nbody"
		got := Decode([]byte(data), "Shopping.md", fallback)
		if got.Title != "Shopping" {
			t.Errorf("expected title from file name, got %q", got.Title)
		}
		if !got.CreatedAt.Equal(fallback) || !got.UpdatedAt.Equal(fallback) {
			t.Errorf("expected fallback timestamps, got %v / %v", got.CreatedAt, got.UpdatedAt)
		}
		if got.Content != "body" {
			t.Errorf("expected body, got %q", got.Content)
		}
	})

	t.Run("Unknown Keys Ignored", func(t *testing.T) {
		data := "---\ntitle: T\nauthor: someone\nurl: http://x/y\n---\n\nbody"
		got := Decode([]byte(data), "t.md", fallback)
		if got.Title != "T" || got.Content != "body" {
			t.Errorf("unexpected decode: %+v", got)
		}
	})

	t.Run("Value Split On First Colon", func(t *testing.T) {
		data := "---\ntitle: Meeting: 10:30\n---\n"
		got := Decode([]byte(data), "m.md", fallback)
		if got.Title != "Meeting: 10:30" {
			t.Errorf("expected title with colons, got %q", got.Title)
		}
	})

	t.Run("CRLF Line Endings", func(t *testing.T) {
		data := "---\r\ntitle: Windows\r\nmodified: 2024-01-01T00:00:00Z\r\n---\r\n\r\nbody\r\n"
		got := Decode([]byte(data), "w.md", fallback)
		if got.Title != "Windows" {
			t.Errorf("expected title, got %q", got.Title)
		}
		if want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC); !got.UpdatedAt.Equal(want) {
			t.Errorf("expected %v, got %v", want, got.UpdatedAt)
		}
		if got.Content != "body\r\n" {
			t.Errorf("expected body, got %q", got.Content)
		}
	})

	t.Run("RFC3339 Timestamps", func(t *testing.T) {
		data := "---\ncreated: 2024-05-06T07:08:09+02:00\n---\n"
		got := Decode([]byte(data), "r.md", fallback)
		want := time.Date(2024, 5, 6, 5, 8, 9, 0, time.UTC)
		if !got.CreatedAt.Equal(want) {
			t.Errorf("expected %v, got %v", want, got.CreatedAt)
		}
	})
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{"Empty", "", []string{}},
		{"Empty List", "[]", []string{}},
		{"Flow List", "[work, ideas]", []string{"work", "ideas"}},
		{"Quoted", `["a, b", c]`, []string{"a, b", "c"}},
		{"Bare Words", "work, ideas", []string{"work", "ideas"}},
		{"Malformed", "[work, [ideas", []string{"work", "[ideas"}},
		{"Blank Entries", "[a, , b]", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, parseTags(tt.value)); diff != "" {
				t.Errorf("parseTags(%q) mismatch (-want +got):\n%s", tt.value, diff)
			}
		})
	}
}
