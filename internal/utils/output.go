package utils

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/ramanasai/moodlog/internal/journal"
)

// OutputFormat selects how entry lists are rendered.
type OutputFormat string

const (
	FormatPlain    OutputFormat = "plain"
	FormatTable    OutputFormat = "table"
	FormatJSON     OutputFormat = "json"
	FormatMarkdown OutputFormat = "markdown"
)

// RenderConfig controls list/export rendering.
type RenderConfig struct {
	Format   OutputFormat
	Location *time.Location
}

// DefaultRenderConfig returns plain rendering in local time.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{Format: FormatPlain, Location: time.Local}
}

// EntryList is a render-ready filtered timeline.
type EntryList struct {
	Entries []journal.Entry
	Filters map[string]string
}

// Renderer renders entry lists in the configured format.
type Renderer struct {
	cfg RenderConfig
}

// NewRenderer creates a renderer.
func NewRenderer(cfg RenderConfig) *Renderer {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Format == "" {
		cfg.Format = FormatPlain
	}
	return &Renderer{cfg: cfg}
}

// RenderEntryList renders the list in the configured format.
func (r *Renderer) RenderEntryList(list *EntryList) (string, error) {
	switch r.cfg.Format {
	case FormatPlain:
		return r.renderPlain(list), nil
	case FormatTable:
		return r.renderTable(list), nil
	case FormatJSON:
		return r.renderJSON(list)
	case FormatMarkdown:
		return r.renderMarkdown(list), nil
	default:
		return "", fmt.Errorf("unknown format: %s", r.cfg.Format)
	}
}

func (r *Renderer) renderPlain(list *EntryList) string {
	var b strings.Builder
	for k, v := range list.Filters {
		fmt.Fprintf(&b, "# %s: %s\n", k, v)
	}
	for _, e := range list.Entries {
		fmt.Fprintf(&b, "%s  [%s]  %s\n",
			e.When(r.cfg.Location).Format("2006-01-02 15:04"),
			e.Mood,
			e.Text,
		)
	}
	if len(list.Entries) == 0 {
		b.WriteString("No entries.\n")
	}
	return b.String()
}

func (r *Renderer) renderTable(list *EntryList) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tMOOD\tTEXT")
	for _, e := range list.Entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			e.When(r.cfg.Location).Format("2006-01-02 15:04"),
			e.Mood,
			e.Text,
		)
	}
	_ = w.Flush()
	return b.String()
}

func (r *Renderer) renderJSON(list *EntryList) (string, error) {
	entries := list.Entries
	if entries == nil {
		entries = []journal.Entry{}
	}
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b) + "\n", nil
}

func (r *Renderer) renderMarkdown(list *EntryList) string {
	var b strings.Builder
	b.WriteString("# Mood journal\n\n")

	var day string
	for _, e := range list.Entries {
		d := e.Day(r.cfg.Location)
		if d != day {
			day = d
			fmt.Fprintf(&b, "## %s\n\n", day)
		}
		fmt.Fprintf(&b, "- **%s** (%s): %s\n",
			e.Mood,
			e.When(r.cfg.Location).Format("15:04"),
			e.Text,
		)
	}
	return b.String()
}
