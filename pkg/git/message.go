package git

import "strings"

// Footer marks commits written by the note store.
const Footer = "Recorded-by: notas"

// FormatMessage builds a commit message:
//
//	<subject>
//
//	<body>
//
//	Recorded-by: notas
//
// The body is omitted when empty.
func FormatMessage(subject, body string) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(subject))

	if body = strings.TrimSpace(body); body != "" {
		sb.WriteString("\n\n")
		sb.WriteString(body)
	}

	sb.WriteString("\n\n")
	sb.WriteString(Footer)
	return sb.String()
}

// HasFooter reports whether msg was produced by FormatMessage.
func HasFooter(msg string) bool {
	return strings.HasSuffix(strings.TrimSpace(msg), Footer)
}
