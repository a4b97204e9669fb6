package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/logpane/logpane/internal/logstore"
)

// Theme defines the colors the console renders with.
type Theme struct {
	Name string

	Background string
	Surface    string
	Border     string

	Text   string
	Muted  string
	Accent string

	Info    string
	Warning string
	Danger  string
}

// Styles contains pre-built lipgloss styles for a theme.
type Styles struct {
	Header    lipgloss.Style
	Footer    lipgloss.Style
	Viewport  lipgloss.Style
	MutedText lipgloss.Style
	Help      lipgloss.Style

	InfoLine  lipgloss.Style
	WarnLine  lipgloss.Style
	ErrorLine lipgloss.Style
}

// Styles builds the lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Viewport: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Padding(1, 2),

		InfoLine: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		WarnLine: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		ErrorLine: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),
	}
}

// Colorizer returns the level markup function handed to the capture store,
// so formatted display text arrives pre-tinted for this theme.
func (t Theme) Colorizer() logstore.Colorizer {
	styles := t.Styles()
	return func(level logstore.Level, line string) string {
		switch level {
		case logstore.LevelError:
			return styles.ErrorLine.Render(line)
		case logstore.LevelWarn:
			return styles.WarnLine.Render(line)
		default:
			return styles.InfoLine.Render(line)
		}
	}
}

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Nightfox", "Slate"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		Border:     "#39506d", // bg4

		Text:   "#cdcecf", // fg1
		Muted:  "#738091", // comment
		Accent: "#719cd6", // blue

		Info:    "#63cdcf", // cyan
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red
	}
}

func slateTheme() Theme {
	return Theme{
		Name: "Slate",

		Background: "#1c1f26",
		Surface:    "#272b33",
		Border:     "#4b5563",

		Text:   "#d1d5db",
		Muted:  "#9ca3af",
		Accent: "#93c5fd",

		Info:    "#7dd3fc",
		Warning: "#fbbf24",
		Danger:  "#f87171",
	}
}
