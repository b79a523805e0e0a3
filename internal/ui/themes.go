package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme groups the lipgloss styles used for diagnostic output.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Label styles field names such as "files" or "qualified".
	Label lipgloss.Style
	// Value styles counts and durations.
	Value lipgloss.Style
	// Success highlights a scan that found qualifying files.
	Success lipgloss.Style
	// Warning highlights a scan that found none.
	Warning lipgloss.Style
	// Dim is used for separators and secondary text.
	Dim lipgloss.Style
}

// NewDarkTheme builds the dark-background theme for the terminal behind r.
// The renderer decides how many colors are actually emitted.
func NewDarkTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Name:    "dark",
		Label:   r.NewStyle().Foreground(lipgloss.Color("245")),
		Value:   r.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Success: r.NewStyle().Foreground(lipgloss.Color("82")),
		Warning: r.NewStyle().Foreground(lipgloss.Color("220")),
		Dim:     r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

var (
	// NoColorTheme disables all styling.
	// Used when NO_COLOR is set, --no-color is given or stderr is not a terminal.
	NoColorTheme = Theme{
		Name:    "none",
		Label:   lipgloss.NewStyle(),
		Value:   lipgloss.NewStyle(),
		Success: lipgloss.NewStyle(),
		Warning: lipgloss.NewStyle(),
		Dim:     lipgloss.NewStyle(),
	}

	currentTheme = NoColorTheme
	themeMutex   sync.RWMutex
)

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme in a thread-safe manner.
// This is primarily used for testing purposes to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// InitTheme selects the theme for output written to stderr. It respects the NO_COLOR environment variable
// (https://no-color.org/): if noColor is true or NO_COLOR is set, styling is
// disabled.
//
// Parameters:
//   - noColor: If true, disables all color output regardless of environment.
func InitTheme(noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor {
		currentTheme = NoColorTheme
		return
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTheme
		return
	}
	currentTheme = NewDarkTheme(lipgloss.NewRenderer(os.Stderr))
}
