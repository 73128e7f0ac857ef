package preview

import "testing"

func TestText(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		limit    int
		want     string
	}{
		{"Empty", "", 60, ""},
		{"Plain", "buy milk", 60, "buy milk"},
		{"Strips Markup", "# Title\n\nSome **bold** and `code` with [a link](http://x).", 0, "Title Some bold and code with a link."},
		{"Joins Lines", "first line\nsecond line", 0, "first line second line"},
		{"Skips Code Blocks", "intro\n\n```go\nfmt.Println()\n```\n\noutro", 0, "intro outro"},
		{"List Items", "- one\n- two", 0, "one two"},
		{"Truncates", "abcdefghijklmnopqrstuvwxyz", 10, "abcdefg..."},
		{"Counts Runes", "ação ação ação", 9, "ação a..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.markdown, tt.limit); got != tt.want {
				t.Errorf("Text(%q, %d) = %q, want %q", tt.markdown, tt.limit, got, tt.want)
			}
		})
	}
}
