// Package ui provides the interactive terminal poster.
// Uses the poster's blue palette with light/dark mode support.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	// Light Mode Colors (Default)
	LightForeground = lipgloss.Color("#101F38")
	LightPrimary    = lipgloss.Color("#1782db")
	LightAccent     = lipgloss.Color("#3498db")
	LightMuted      = lipgloss.Color("#6b7280")
	LightBorder     = lipgloss.Color("#dce0e5")
	LightCard       = lipgloss.Color("#ffffff")

	// Dark Mode Colors
	DarkForeground = lipgloss.Color("#f2f2f2")
	DarkPrimary    = lipgloss.Color("#3c8fe1")
	DarkAccent     = lipgloss.Color("#3498db")
	DarkMuted      = lipgloss.Color("#9ca3af")
	DarkBorder     = lipgloss.Color("#2a3850")
	DarkCard       = lipgloss.Color("#111827")

	// Semantic Colors (same in both modes)
	Success = lipgloss.Color("#10b981") // Emerald
	Warning = lipgloss.Color("#FFC107")
)

// Theme holds the current color scheme
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		IsDark:     true,
	}
}

// DetectTheme picks dark mode from POSTER_DARK_MODE or the terminal's
// detected background, and light mode otherwise.
func DetectTheme() Theme {
	if os.Getenv("POSTER_DARK_MODE") == "1" {
		return DarkTheme()
	}
	if lipgloss.HasDarkBackground() {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	// Layout
	App     lipgloss.Style
	Header  lipgloss.Style
	Section lipgloss.Style
	Footer  lipgloss.Style

	// Text
	Title lipgloss.Style
	Label lipgloss.Style
	Body  lipgloss.Style
	Muted lipgloss.Style
	Mono  lipgloss.Style
	Quote lipgloss.Style

	// Interactive
	Card        lipgloss.Style
	CardFocused lipgloss.Style
	Button      lipgloss.Style
	ButtonDone  lipgloss.Style
	Pill        lipgloss.Style
	Digit       lipgloss.Style

	// Status
	Success lipgloss.Style // copy acknowledgement
	Warning lipgloss.Style // reached countdowns
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	return Styles{
		Theme: theme,

		App: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Section: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1).
			MarginTop(1),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			MarginTop(1),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Mono: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Quote: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Italic(true),

		Card: card,

		CardFocused: card.
			BorderForeground(theme.Accent).
			BorderStyle(lipgloss.ThickBorder()),

		Button: lipgloss.NewStyle().
			Background(theme.Accent).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),

		ButtonDone: lipgloss.NewStyle().
			Background(Success).
			Foreground(lipgloss.Color("#000000")).
			Padding(0, 1).
			Bold(true),

		Pill: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Accent).
			Padding(0, 1),

		Digit: lipgloss.NewStyle().
			Background(theme.Card).
			Foreground(theme.Foreground).
			Padding(0, 1),

		Success: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true),
	}
}

// StylesFor returns styles for the configured or detected theme.
func StylesFor(dark bool) Styles {
	if dark {
		return NewStyles(DarkTheme())
	}
	return NewStyles(DetectTheme())
}
