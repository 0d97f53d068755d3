package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/okiedokie/student-image-finder/pkg/choice"
	"github.com/okiedokie/student-image-finder/pkg/student"
)

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Brand.Render("Okie Dokie"))
	b.WriteString(" ")
	b.WriteString(m.styles.BrandSub.Render("Student Info"))
	b.WriteString("\n\n")

	button := m.styles.Button.Render("Search")
	if m.loading {
		button = m.styles.ButtonBusy.Render("Searching...")
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, m.input.View(), "  ", button))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.spin.View() + " " + m.styles.Loading.Render(m.loadingMsg))
		b.WriteString("\n\n")
	}

	if m.err != "" {
		b.WriteString(m.styles.Error.Render(m.err))
		b.WriteString("\n\n")
	}

	if m.alert != "" {
		b.WriteString(m.styles.Alert.Render(m.alert))
		b.WriteString("\n\n")
	}

	if m.result != nil {
		b.WriteString(m.renderSummary(m.result.Summary))
		b.WriteString("\n\n")
		b.WriteString(m.renderCards(m.result.Slots))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Muted.Render("enter search • ctrl+r refresh sheet • esc quit"))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("Okie Dokie • Student Image Finder"))
	b.WriteString("\n")

	return b.String()
}

func (m *Model) renderSummary(s student.Summary) string {
	row := func(label, value string) string {
		return m.styles.MetaLabel.Render(label) + m.styles.MetaValue.Render(value)
	}

	photo := choice.Ternary(s.HasPhoto, s.PhotoURL, "No Photo")

	lines := []string{
		m.styles.Title.Render(s.Name),
		row("Photo", photo),
		row("Scholar ID", s.ScholarID),
		row("Course", s.Course),
		row("Stream", s.Stream),
		row("Section", s.Section),
		row("Father", s.Father),
		row("Mother", s.Mother),
	}

	return m.styles.TopCard.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderCards(slots []student.DisplaySlot) string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Photos & Documents"))
	b.WriteString("\n")

	if len(slots) == 0 {
		b.WriteString(m.styles.Muted.Render("No photos or documents on record."))
		return b.String()
	}

	perRow := 2
	if m.width > 0 {
		perRow = max(1, m.width/(m.styles.Card.GetWidth()+2))
	}

	cards := make([]string, 0, len(slots))
	for _, slot := range slots {
		cards = append(cards, m.renderCard(slot))
	}

	for i := 0; i < len(cards); i += perRow {
		end := min(i+perRow, len(cards))
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
		b.WriteString("\n")
	}

	return b.String()
}

func (m *Model) renderCard(slot student.DisplaySlot) string {
	lines := []string{
		m.styles.CardLabel.Render(slot.Label),
		choice.Ternary(slot.HasImage(), slot.ImageURL, m.styles.Muted.Render("No Image")),
	}
	if slot.PersonName != "" {
		lines = append(lines, m.styles.CardName.Render(slot.PersonName))
	}
	if slot.PersonID != "" {
		lines = append(lines, "Scholar ID: "+slot.PersonID)
	}

	return m.styles.Card.Render(strings.Join(lines, "\n"))
}
