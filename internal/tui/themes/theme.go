// Package themes holds the color schemes of the interactive browser.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Prompt        lipgloss.Style
	Selected      lipgloss.Style
	Match         lipgloss.Style
	Description   lipgloss.Style
	Badge         lipgloss.Style
	ActiveBadge   lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusWarning lipgloss.Style
	RoundedBox    lipgloss.Style
	Primary       lipgloss.Color
	Accent        lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	Info          lipgloss.Color
	Warning       lipgloss.Color
}

func build(primary, accent, muted, border, foreground, info, warning lipgloss.Color) Theme {
	return Theme{
		Primary:    primary,
		Accent:     accent,
		Muted:      muted,
		Border:     border,
		Foreground: foreground,
		Info:       info,
		Warning:    warning,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),
		Subtitle: lipgloss.NewStyle().
			Foreground(muted),
		Normal: lipgloss.NewStyle().
			Foreground(foreground),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(foreground),
		Prompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),
		Match: lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(accent),
		Description: lipgloss.NewStyle().
			Foreground(muted),
		Badge: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),
		ActiveBadge: lipgloss.NewStyle().
			Bold(true).
			Foreground(foreground).
			Background(primary).
			Padding(0, 1),
		StatusInfo: lipgloss.NewStyle().
			Foreground(info),
		StatusWarning: lipgloss.NewStyle().
			Foreground(warning).
			Bold(true),
		RoundedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
	}
}

// Default is the default theme.
var Default = build(
	lipgloss.Color("#4C8BF5"),
	lipgloss.Color("#FFD166"),
	lipgloss.Color("#737373"),
	lipgloss.Color("#404040"),
	lipgloss.Color("#fafafa"),
	lipgloss.Color("#3b82f6"),
	lipgloss.Color("#f59e0b"),
)

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = build(
	lipgloss.Color("#cba6f7"),
	lipgloss.Color("#f9e2af"),
	lipgloss.Color("#6c7086"),
	lipgloss.Color("#45475a"),
	lipgloss.Color("#cdd6f4"),
	lipgloss.Color("#89dceb"),
	lipgloss.Color("#fab387"),
)

// Names lists the selectable theme names.
var Names = []string{"default", "catppuccin-mocha"}

// GetTheme returns a theme by name, or Default for unknown names.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}

// CategoryIcons maps category ids to emoji icons.
var CategoryIcons = map[string]string{
	"all":        "🗂️",
	"finance":    "💰",
	"investment": "📈",
	"credit":     "💳",
	"savings":    "🏦",
}

// GetCategoryIcon returns an icon for a category id.
func GetCategoryIcon(category string) string {
	if icon, ok := CategoryIcons[category]; ok {
		return icon
	}
	return "📦"
}
