// Package theme provides color theming for the TUI.
package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the TUI.
type Theme struct {
	// Primary colors
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Accent    lipgloss.AdaptiveColor

	// Background colors
	Background lipgloss.AdaptiveColor
	Surface    lipgloss.AdaptiveColor
	Overlay    lipgloss.AdaptiveColor

	// Text colors
	Text          lipgloss.AdaptiveColor
	TextMuted     lipgloss.AdaptiveColor
	TextHighlight lipgloss.AdaptiveColor

	// Semantic colors
	Success lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
	Info    lipgloss.AdaptiveColor
}

// SunsetTheme is the default synthwave-inspired color scheme.
var SunsetTheme = Theme{
	Primary:   lipgloss.AdaptiveColor{Light: "#6B3FA0", Dark: "#9B59B6"}, // Violet
	Secondary: lipgloss.AdaptiveColor{Light: "#1E5FAA", Dark: "#5DADE2"}, // Light blue
	Accent:    lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#F1C40F"}, // Gold

	Background: lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#0D0D0D"},
	Surface:    lipgloss.AdaptiveColor{Light: "#F5F0E1", Dark: "#1A1A2E"}, // Cream / Deep blue
	Overlay:    lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#2D2D44"},

	Text:          lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#E5E5E5"},
	TextMuted:     lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#6B6B6B"},
	TextHighlight: lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"},

	Success: lipgloss.AdaptiveColor{Light: "#008000", Dark: "#00FF41"},
	Warning: lipgloss.AdaptiveColor{Light: "#CC5500", Dark: "#FF6B35"},
	Error:   lipgloss.AdaptiveColor{Light: "#CC0033", Dark: "#FF0040"},
	Info:    lipgloss.AdaptiveColor{Light: "#0088CC", Dark: "#00D4FF"},
}

// Current is the active theme.
var Current = SunsetTheme
