package fs

import (
	"bytes"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/notas/pkg/core"
	"gopkg.in/yaml.v3"
)

const (
	// NoteExt is the extension of note files. Matching is case-insensitive.
	NoteExt = ".md"

	delimiter = "---"
)

// Header keys, in encoding order.
const (
	keyTitle    = "title"
	keyCreated  = "created"
	keyModified = "modified"
	keyTags     = "tags"
	keyColor    = "color"
)

// Decode maps a note document to a Note. It never fails: a document without a
// complete header is treated as plain body text, with the title taken from name
// and both timestamps set to fallback. ID and Path are left to the caller.
func Decode(data []byte, name string, fallback time.Time) core.Note {
	fallback = fallback.UTC()
	n := core.Note{
		Title:     baseTitle(name),
		Content:   string(data),
		CreatedAt: fallback,
		UpdatedAt: fallback,
		Tags:      []string{},
	}

	header, body, ok := splitHeader(string(data))
	if !ok {
		return n
	}
	n.Content = body

	for _, line := range header {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)

		switch strings.TrimSpace(key) {
		case keyTitle:
			if value != "" {
				n.Title = value
			}
		case keyCreated:
			if t, ok := core.ParseTimestamp(value); ok {
				n.CreatedAt = t
			}
		case keyModified:
			if t, ok := core.ParseTimestamp(value); ok {
				n.UpdatedAt = t
			}
		case keyTags:
			n.Tags = parseTags(value)
		case keyColor:
			n.Color = value
		}
	}

	return n
}

// Encode renders a Note as a document: the full header in fixed key order, one
// blank line, then the body. Unknown keys are never reproduced.
func Encode(n core.Note) []byte {
	var buf bytes.Buffer
	buf.WriteString(delimiter + "\n")
	writeField(&buf, keyTitle, headerValue(n.Title))
	writeField(&buf, keyCreated, core.FormatTimestamp(n.CreatedAt))
	writeField(&buf, keyModified, core.FormatTimestamp(n.UpdatedAt))
	writeField(&buf, keyTags, encodeTags(n.Tags))
	if color := headerValue(n.Color); color != "" {
		writeField(&buf, keyColor, color)
	}
	buf.WriteString(delimiter + "\n\n")
	buf.WriteString(n.Content)
	return buf.Bytes()
}

func writeField(buf *bytes.Buffer, key, value string) {
	buf.WriteString(key)
	buf.WriteString(": ")
	buf.WriteString(value)
	buf.WriteByte('\n')
}

// splitHeader returns the header lines and the body. ok is false when the text
// does not open with a delimiter line or the header is never closed.
func splitHeader(text string) (header []string, body string, ok bool) {
	first, rest, found := strings.Cut(text, "\n")
	if !found || !isDelimiter(first) {
		return nil, "", false
	}

	for {
		line, next, found := strings.Cut(rest, "\n")
		if isDelimiter(line) {
			return header, trimBlankLine(next), true
		}
		if !found {
			return nil, "", false
		}
		header = append(header, strings.TrimSuffix(line, "\r"))
		rest = next
	}
}

func isDelimiter(line string) bool {
	return strings.TrimRight(line, " \t\r") == delimiter
}

// trimBlankLine drops the single separator line Encode writes after the header.
func trimBlankLine(body string) string {
	if strings.HasPrefix(body, "\r\n") {
		return body[2:]
	}
	return strings.TrimPrefix(body, "\n")
}

// parseTags reads a bracketed list. YAML flow syntax is tried first so quoted
// tags survive; anything else is split on commas.
func parseTags(value string) []string {
	tags := []string{}
	if value == "" {
		return tags
	}

	var parsed []string
	if err := yaml.Unmarshal([]byte(value), &parsed); err != nil {
		inner := strings.TrimSuffix(strings.TrimPrefix(value, "["), "]")
		parsed = strings.Split(inner, ",")
	}

	for _, t := range parsed {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// encodeTags renders tags as a flow list. A tag that would not read back
// unchanged when written bare is emitted as a double-quoted scalar.
func encodeTags(tags []string) string {
	items := cleanTags(tags)
	for i, t := range items {
		if !bareTagSafe(t) {
			items[i] = quoteTag(t)
		}
	}
	return "[" + strings.Join(items, ", ") + "]"
}

func bareTagSafe(tag string) bool {
	var parsed []string
	if err := yaml.Unmarshal([]byte("["+tag+"]"), &parsed); err != nil {
		return false
	}
	return len(parsed) == 1 && parsed[0] == tag
}

func quoteTag(tag string) string {
	node := yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Style: yaml.DoubleQuotedStyle, Value: tag}
	out, err := yaml.Marshal(&node)
	if err != nil {
		return strconv.Quote(tag)
	}
	return strings.TrimSuffix(string(out), "\n")
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = headerValue(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// headerValue keeps a value on a single header line.
func headerValue(s string) string {
	s = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
	return strings.TrimSpace(s)
}

func baseTitle(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
