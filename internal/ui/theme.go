package ui

import "github.com/charmbracelet/lipgloss"

// palette is one color theme. Names follow the persisted colortheme slot.
type palette struct {
	text    string
	dim     string
	surface string
	accent  string
	warn    string
}

var palettes = map[string]palette{
	"mocha": {
		text:    "#cdd6f4",
		dim:     "#a6adc8",
		surface: "#313244",
		accent:  "#89b4fa",
		warn:    "#f38ba8",
	},
	"latte": {
		text:    "#4c4f69",
		dim:     "#6c6f85",
		surface: "#ccd0da",
		accent:  "#1e66f5",
		warn:    "#d20f39",
	},
}

// paletteFor resolves a colortheme name, defaulting to mocha.
func paletteFor(name string) palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes["mocha"]
}

type style struct {
	topBar     lipgloss.Style
	statusBar  lipgloss.Style
	panelTitle lipgloss.Style
	tabActive  lipgloss.Style

	textDim    lipgloss.Style
	textBold   lipgloss.Style
	age        lipgloss.Style
	cursorLine lipgloss.Style
	errorText  lipgloss.Style
	caption    lipgloss.Style
}

func newStyle(p palette) style {
	return style{
		topBar:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.text)).Bold(true).Padding(0, 1),
		statusBar:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.dim)).Background(lipgloss.Color(p.surface)).Padding(0, 1),
		panelTitle: lipgloss.NewStyle().Foreground(lipgloss.Color(p.text)).Bold(true),
		tabActive:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.accent)).Bold(true),

		textDim:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.dim)),
		textBold:   lipgloss.NewStyle().Bold(true),
		age:        lipgloss.NewStyle().Faint(true),
		cursorLine: lipgloss.NewStyle().Background(lipgloss.Color(p.surface)),
		errorText:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.warn)),
		caption:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.dim)).Italic(true),
	}
}

// moodStyle colors text with a registry mood color ("rrggbb").
func moodStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#" + hex))
}
