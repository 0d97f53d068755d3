package tui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Brand      lipgloss.Style
	BrandSub   lipgloss.Style
	Button     lipgloss.Style
	ButtonBusy lipgloss.Style
	Error      lipgloss.Style
	Alert      lipgloss.Style
	Loading    lipgloss.Style
	Title      lipgloss.Style
	TopCard    lipgloss.Style
	MetaLabel  lipgloss.Style
	MetaValue  lipgloss.Style
	Card       lipgloss.Style
	CardLabel  lipgloss.Style
	CardName   lipgloss.Style
	Muted      lipgloss.Style
}

func DefaultStyles() Styles {
	accent := lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: "#A78BFA"}
	muted := lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}

	return Styles{
		Brand:      lipgloss.NewStyle().Bold(true).Foreground(accent),
		BrandSub:   lipgloss.NewStyle().Foreground(muted),
		Button:     lipgloss.NewStyle().Padding(0, 1).Bold(true).Background(accent).Foreground(lipgloss.Color("#FFFFFF")),
		ButtonBusy: lipgloss.NewStyle().Padding(0, 1).Background(muted).Foreground(lipgloss.Color("#FFFFFF")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626")).Bold(true),
		Alert:      lipgloss.NewStyle().Foreground(lipgloss.Color("#059669")),
		Loading:    lipgloss.NewStyle().Foreground(accent).Italic(true),
		Title:      lipgloss.NewStyle().Bold(true),
		TopCard:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1),
		MetaLabel:  lipgloss.NewStyle().Foreground(muted).Width(11),
		MetaValue:  lipgloss.NewStyle().Bold(true),
		Card:       lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).Width(36),
		CardLabel:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		CardName:   lipgloss.NewStyle().Bold(true),
		Muted:      lipgloss.NewStyle().Foreground(muted),
	}
}
