package fs

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

const (
	// FilenamePrefix is the literal tag every generated note file name starts with.
	FilenamePrefix = "note"

	filenameTimeLayout = "20060102-150405"
	slugFallback       = "untitled"
	suffixLen          = 6
)

var multiDash = regexp.MustCompile(`-+`)

// Slugify converts a title to a file-name-safe slug.
// "My Note!" -> "my-note"
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = strings.ReplaceAll(s, " ", "-")

	var result strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
			result.WriteRune(r)
		}
	}

	s = multiDash.ReplaceAllString(result.String(), "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return slugFallback
	}
	return s
}

// GenerateFilename builds "note-<YYYYMMDD-HHMMSS>-<slug>.md" from a title and creation time (UTC).
func GenerateFilename(title string, now time.Time) string {
	return FilenamePrefix + "-" + now.UTC().Format(filenameTimeLayout) + "-" + Slugify(title) + NoteExt
}

// withRandomSuffix disambiguates a generated name: "a.md" -> "a-1f3c9e.md".
func withRandomSuffix(filename string) string {
	stem := strings.TrimSuffix(filename, NoteExt)
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:suffixLen]
	return stem + "-" + suffix + NoteExt
}
