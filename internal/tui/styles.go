package tui

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// Color palette (Catppuccin Mocha)
var (
	colorPrimary   = lipgloss.Color("#cba6f7") // Mauve
	colorText      = lipgloss.Color("#cdd6f4") // Text
	colorSubtext0  = lipgloss.Color("#a6adc8") // Subtext0
	colorSubtext1  = lipgloss.Color("#bac2de") // Subtext1
	colorSurface2  = lipgloss.Color("#585b70") // Surface2
	colorBorder    = lipgloss.Color("#b4befe") // Lavender
	colorError     = lipgloss.Color("#f38ba8") // Red
	colorSuccess   = lipgloss.Color("#a6e3a1") // Green
	colorDim       = lipgloss.Color("#6c7086") // Overlay0
	colorHighlight = lipgloss.Color("#f9e2af") // Yellow
)

var (
	styleTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	stylePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)

	styleLabel = lipgloss.NewStyle().Foreground(colorSubtext0)

	styleError = lipgloss.NewStyle().Foreground(colorError)

	styleSelected = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleUnselected = lipgloss.NewStyle().Foreground(colorText)

	styleChecked = lipgloss.NewStyle().Foreground(colorSuccess)

	styleDim = lipgloss.NewStyle().Foreground(colorDim)

	styleOptional = lipgloss.NewStyle().Foreground(colorHighlight)

	styleHintKey = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Bold(true)

	styleHintDesc = lipgloss.NewStyle().Foreground(colorSubtext0)

	styleHintSeparator = lipgloss.NewStyle().Foreground(colorSurface2)
)

// renderHintBar renders a hint bar with the given key-description pairs.
// Example: renderHintBar("↑↓", "navigate", "enter", "select", "esc", "back")
func renderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}

	var result string
	for i := 0; i < len(pairs); i += 2 {
		if i > 0 {
			result += " " + styleHintSeparator.Render("•") + " "
		}
		result += styleHintKey.Render(pairs[i]) + " " + styleHintDesc.Render(pairs[i+1])
	}

	return result
}

// newInput creates a textinput with the shared style set.
func newInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = ""
	in.SetStyles(textinput.Styles{
		Focused: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(colorText),
			Placeholder: lipgloss.NewStyle().Foreground(colorSubtext0),
			Prompt:      lipgloss.NewStyle().Foreground(colorBorder),
		},
		Blurred: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(colorSubtext0),
			Placeholder: lipgloss.NewStyle().Foreground(colorSubtext0),
			Prompt:      lipgloss.NewStyle().Foreground(colorDim),
		},
		Cursor: textinput.CursorStyle{
			Color: colorPrimary,
			Shape: tea.CursorBar,
			Blink: true,
		},
	})
	in.SetWidth(50)
	return in
}
