package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/notas/pkg/core"
	"github.com/aretw0/notas/pkg/preview"
)

// Palette holds the preset color hints, selectable by position (1-6).
var Palette = []string{"#ffffff", "#fff9c4", "#ffccbc", "#c8e6c9", "#bbdefb", "#e1bee7"}

const (
	noContent  = "No content"
	pinMarker  = "*"
	timeFormat = "2006-01-02 15:04"
)

var (
	idStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	titleStyle = lipgloss.NewStyle().Bold(true)
	tagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
)

// resolveColor maps a palette position ("1".."6") to its value; anything else
// is used as given.
func resolveColor(arg string) string {
	if i, err := strconv.Atoi(arg); err == nil && i >= 1 && i <= len(Palette) {
		return Palette[i-1]
	}
	return arg
}

// colorDot renders the color hint as a colored bullet.
func colorDot(color string) string {
	if color == "" {
		return " "
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("●")
}

// pinnedFirst moves pinned notes to the front, keeping the relative order otherwise.
func pinnedFirst(notes []core.Note, pinned []string) []core.Note {
	out := make([]core.Note, 0, len(notes))
	for _, n := range notes {
		if slices.Contains(pinned, n.ID) {
			out = append(out, n)
		}
	}
	for _, n := range notes {
		if !slices.Contains(pinned, n.ID) {
			out = append(out, n)
		}
	}
	return out
}

func writeListing(w io.Writer, notes []core.Note, pinned []string) {
	for _, n := range pinnedFirst(notes, pinned) {
		marker := " "
		if slices.Contains(pinned, n.ID) {
			marker = pinMarker
		}

		summary := preview.Text(n.Content, preview.DefaultLength)
		if summary == "" {
			summary = noContent
		}

		line := fmt.Sprintf("%s%s %s  %s  %s",
			marker,
			colorDot(n.Color),
			titleStyle.Render(n.Title),
			idStyle.Render(n.ID),
			n.UpdatedAt.Local().Format(timeFormat),
		)
		if len(n.Tags) > 0 {
			line += "  " + tagStyle.Render("#"+strings.Join(n.Tags, " #"))
		}
		fmt.Fprintln(w, line)
		fmt.Fprintf(w, "    %s\n", summary)
	}
}

func writeNote(w io.Writer, n core.Note) {
	fmt.Fprintf(w, "%s %s\n", colorDot(n.Color), titleStyle.Render(n.Title))
	fmt.Fprintf(w, "id:       %s\n", n.ID)
	fmt.Fprintf(w, "path:     %s\n", n.Path)
	fmt.Fprintf(w, "created:  %s\n", n.CreatedAt.Local().Format(timeFormat))
	fmt.Fprintf(w, "modified: %s\n", n.UpdatedAt.Local().Format(timeFormat))
	if len(n.Tags) > 0 {
		fmt.Fprintf(w, "tags:     %s\n", strings.Join(n.Tags, ", "))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, n.Content)
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	encoder.SetIndent(2)
	return encoder.Encode(v)
}
