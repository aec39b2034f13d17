package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"jobtrack/internal/domain"
	"jobtrack/internal/tui/styles"
)

// statusPicker offers the fixed status set for one record. The list
// keeps at most one picker open; opening another replaces this one.
type statusPicker struct {
	app   domain.JobApplication
	index int
}

func newStatusPicker(app domain.JobApplication) statusPicker {
	p := statusPicker{app: app}
	for i, s := range domain.Statuses {
		if s == app.Status {
			p.index = i
			break
		}
	}
	return p
}

// update handles one key. It reports whether the picker closed and, on
// a real change, the full record with only the status replaced. Picking
// the current value closes without a request.
func (p statusPicker) update(key tea.KeyMsg) (statusPicker, bool, *domain.JobApplication) {
	switch key.String() {
	case "up", "k":
		p.index = (p.index + len(domain.Statuses) - 1) % len(domain.Statuses)
	case "down", "j":
		p.index = (p.index + 1) % len(domain.Statuses)
	case "esc", "s":
		return p, true, nil
	case "enter":
		chosen := domain.Statuses[p.index]
		if chosen == p.app.Status {
			return p, true, nil
		}
		updated := p.app
		updated.Status = chosen
		return p, true, &updated
	}
	return p, false, nil
}

func (p statusPicker) view() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Status"))
	b.WriteString("\n")
	b.WriteString(styles.Subtle.Render(p.app.CompanyName + " — " + p.app.JobTitle))
	b.WriteString("\n\n")

	for i, s := range domain.Statuses {
		cursor := "  "
		if i == p.index {
			cursor = styles.Selected.Render("> ")
		}
		label := styles.Status(s).Render(string(s))
		if s == p.app.Status {
			label += styles.Subtle.Render(" (current)")
		}
		b.WriteString(cursor + label + "\n")
	}

	b.WriteString("\n" + styles.Help.Render("enter apply • esc close"))

	return styles.Box.Render(b.String())
}
