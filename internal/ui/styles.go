package ui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
// - Default (white/black): primary text
// - Accent (soft blue, overridable from config): paths, highlights
// - Muted (gray): secondary info, hints
// - No colored success/error/warning - use unicode symbols only

const defaultAccent = "#7AA2F7"

var (
	// Accent style for file paths and highlights
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))

	// Muted style for secondary info and hints
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().Bold(true)
)

var (
	accentMu    sync.RWMutex
	accentColor = defaultAccent
)

// SetAccent overrides the accent color, typically from the user's
// config. Empty or whitespace values are ignored.
func SetAccent(color string) {
	color = strings.TrimSpace(color)
	if color == "" {
		return
	}
	accentMu.Lock()
	accentColor = color
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	accentMu.Unlock()
}

// AccentColor returns the current accent color value.
func AccentColor() string {
	accentMu.RLock()
	defer accentMu.RUnlock()
	return accentColor
}
