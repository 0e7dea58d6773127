package styles

import (
	"github.com/charmbracelet/glamour/v2/ansi"
	"github.com/charmbracelet/lipgloss/v2"
)

// Theme holds the color palette and derived lipgloss styles for all
// components.
type Theme struct {
	Name string

	// Palette, as hex strings so the same values feed both lipgloss and
	// the glamour markdown config.
	Primary   string
	Secondary string
	Accent    string

	FgBase     string
	FgMuted    string
	FgSubtle   string
	FgInverted string

	BgSubtle    string
	BgHighlight string

	Border      string
	BorderFocus string

	Success string
	Error   string
	Warning string
	Info    string

	styles *Styles
}

// Styles are the pre-built lipgloss styles components render with.
type Styles struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Subtle   lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	Border      lipgloss.Style
	BorderFocus lipgloss.Style

	// Markdown feeds glamour renderers.
	Markdown ansi.StyleConfig
}

// DefaultTheme is the built-in dark palette.
func DefaultTheme() *Theme {
	return &Theme{
		Name:      "steel",
		Primary:   "#5eb1ef",
		Secondary: "#8fd1b0",
		Accent:    "#e8b45c",

		FgBase:     "#d8dee9",
		FgMuted:    "#7b8494",
		FgSubtle:   "#525a6b",
		FgInverted: "#1b1f27",

		BgSubtle:    "#242a35",
		BgHighlight: "#31394a",

		Border:      "#3a4254",
		BorderFocus: "#5eb1ef",

		Success: "#8fd1b0",
		Error:   "#e06c75",
		Warning: "#e8b45c",
		Info:    "#5eb1ef",
	}
}

// S returns the derived styles, building them on first use.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgBase))
	return &Styles{
		Base:  base,
		Title: base.Bold(true).Foreground(lipgloss.Color(t.Primary)),
		Text:  base,
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgSubtle)),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgInverted)).
			Background(lipgloss.Color(t.Primary)),
		Cursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgBase)).
			Background(lipgloss.Color(t.BgHighlight)),

		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Error)),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Info)),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)),
		BorderFocus: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)),

		Markdown: t.buildMarkdownStyles(),
	}
}

// Helper functions for glamour style pointers.
func boolPtr(b bool) *bool       { return &b }
func stringPtr(s string) *string { return &s }
func uintPtr(u uint) *uint       { return &u }

func (t *Theme) buildMarkdownStyles() ansi.StyleConfig {
	return ansi.StyleConfig{
		Document: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color: stringPtr(t.FgBase),
			},
		},
		BlockQuote: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color: stringPtr(t.FgMuted),
			},
			Indent:      uintPtr(1),
			IndentToken: stringPtr("│ "),
		},
		List: ansi.StyleList{
			LevelIndent: 2,
		},
		Heading: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				BlockSuffix: "\n",
				Color:       stringPtr(t.Secondary),
				Bold:        boolPtr(true),
			},
		},
		H1: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Prefix:          " ",
				Suffix:          " ",
				Color:           stringPtr(t.FgInverted),
				BackgroundColor: stringPtr(t.Primary),
				Bold:            boolPtr(true),
			},
		},
		H2: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Prefix: "## ",
				Color:  stringPtr(t.Accent),
				Bold:   boolPtr(true),
			},
		},
		H3: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Prefix: "### ",
				Color:  stringPtr(t.Secondary),
			},
		},
		Text: ansi.StylePrimitive{
			Color: stringPtr(t.FgBase),
		},
		Paragraph: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				BlockSuffix: "\n",
			},
		},
		Item: ansi.StylePrimitive{
			BlockPrefix: "• ",
		},
		Enumeration: ansi.StylePrimitive{
			BlockPrefix: ". ",
		},
		Link: ansi.StylePrimitive{
			Color:     stringPtr(t.Info),
			Underline: boolPtr(true),
		},
		LinkText: ansi.StylePrimitive{
			Color: stringPtr(t.Info),
		},
		Code: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color:           stringPtr(t.Accent),
				BackgroundColor: stringPtr(t.BgSubtle),
			},
		},
		CodeBlock: ansi.StyleCodeBlock{
			StyleBlock: ansi.StyleBlock{
				StylePrimitive: ansi.StylePrimitive{
					Color:           stringPtr(t.FgBase),
					BackgroundColor: stringPtr(t.BgSubtle),
				},
			},
		},
	}
}

// Package-level current theme, swappable by the host application.
var current = DefaultTheme()

// CurrentTheme returns the active theme.
func CurrentTheme() *Theme {
	return current
}

// SetTheme replaces the active theme.
func SetTheme(t *Theme) {
	if t != nil {
		current = t
	}
}
