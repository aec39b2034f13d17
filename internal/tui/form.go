package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"jobtrack/internal/domain"
	"jobtrack/internal/tui/styles"
)

type formResult int

const (
	formNone formResult = iota
	formCancel
	formSubmit
)

const (
	focusCompany = iota
	focusTitle
	focusDate
	focusStatus
	focusPlatform
	focusNotes
	formFieldCount
)

// formModel is a controlled draft of one application record. It is
// rebuilt from its target every time the modal opens, so a previous
// edit never bleeds into the next one. Persistence belongs to the list;
// the form only emits the draft.
type formModel struct {
	editing *domain.JobApplication // nil means create

	company  textinput.Model
	title    textinput.Model
	date     textinput.Model
	platform textinput.Model
	notes    textarea.Model
	status   domain.Status

	focus       int
	platformIdx int
	errMsg      string
	now         func() time.Time
}

func newFormModel(target *domain.JobApplication, now func() time.Time) formModel {
	seed := domain.NewFormData(now())
	if target != nil {
		seed = domain.FormDataFrom(*target)
	}

	input := func(placeholder, value string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 128
		ti.Width = 36
		ti.SetValue(value)
		return ti
	}

	notes := textarea.New()
	notes.Placeholder = "Notes"
	notes.SetWidth(40)
	notes.SetHeight(3)
	notes.ShowLineNumbers = false
	notes.SetValue(seed.Notes)

	f := formModel{
		editing:     target,
		company:     input("Company", seed.CompanyName),
		title:       input("Job title", seed.JobTitle),
		date:        input("YYYY-MM-DD", seed.ApplicationDate),
		platform:    input("Platform (free text)", seed.Platform),
		notes:       notes,
		status:      seed.Status,
		platformIdx: -1,
		now:         now,
	}
	f.company.Focus()
	return f
}

func (f formModel) data() domain.FormData {
	return domain.FormData{
		CompanyName:     strings.TrimSpace(f.company.Value()),
		JobTitle:        strings.TrimSpace(f.title.Value()),
		ApplicationDate: strings.TrimSpace(f.date.Value()),
		Status:          f.status,
		Platform:        strings.TrimSpace(f.platform.Value()),
		Notes:           f.notes.Value(),
	}
}

func (f formModel) update(msg tea.Msg) (formModel, tea.Cmd, formResult) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return f, nil, formCancel
		case "ctrl+s":
			return f.submit()
		case "enter":
			if f.focus != focusNotes {
				return f.submit()
			}
		case "tab":
			f.focus = (f.focus + 1) % formFieldCount
			return f, f.applyFocus(), formNone
		case "shift+tab":
			f.focus = (f.focus + formFieldCount - 1) % formFieldCount
			return f, f.applyFocus(), formNone
		case "ctrl+t":
			f.date.SetValue(f.now().Format(domain.DateLayout))
			return f, nil, formNone
		case "ctrl+y":
			f.date.SetValue(f.now().AddDate(0, 0, -1).Format(domain.DateLayout))
			return f, nil, formNone
		case "ctrl+p":
			// Quick platform pick; later keystrokes in the field win.
			f.platformIdx = (f.platformIdx + 1) % len(domain.Platforms)
			f.platform.SetValue(domain.Platforms[f.platformIdx])
			return f, nil, formNone
		case "left", "right":
			if f.focus == focusStatus {
				f.status = cycleStatus(f.status, key.String() == "right")
				return f, nil, formNone
			}
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case focusCompany:
		f.company, cmd = f.company.Update(msg)
	case focusTitle:
		f.title, cmd = f.title.Update(msg)
	case focusDate:
		f.date, cmd = f.date.Update(msg)
	case focusPlatform:
		f.platform, cmd = f.platform.Update(msg)
	case focusNotes:
		f.notes, cmd = f.notes.Update(msg)
	}
	return f, cmd, formNone
}

func (f formModel) submit() (formModel, tea.Cmd, formResult) {
	if errs := f.data().Validate(); len(errs) > 0 {
		f.errMsg = strings.Join(errs, "; ")
		return f, nil, formNone
	}
	return f, nil, formSubmit
}

func (f *formModel) applyFocus() tea.Cmd {
	f.company.Blur()
	f.title.Blur()
	f.date.Blur()
	f.platform.Blur()
	f.notes.Blur()

	switch f.focus {
	case focusCompany:
		return f.company.Focus()
	case focusTitle:
		return f.title.Focus()
	case focusDate:
		return f.date.Focus()
	case focusPlatform:
		return f.platform.Focus()
	case focusNotes:
		return f.notes.Focus()
	}
	return nil
}

func cycleStatus(s domain.Status, forward bool) domain.Status {
	idx := 0
	for i, st := range domain.Statuses {
		if st == s {
			idx = i
			break
		}
	}
	if forward {
		idx = (idx + 1) % len(domain.Statuses)
	} else {
		idx = (idx + len(domain.Statuses) - 1) % len(domain.Statuses)
	}
	return domain.Statuses[idx]
}

func (f formModel) view() string {
	var b strings.Builder

	title := "New application"
	if f.editing != nil {
		title = "Edit application"
	}
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n\n")

	b.WriteString(f.company.View() + "\n")
	b.WriteString(f.title.View() + "\n")
	b.WriteString(f.date.View() + "\n")

	statusLine := "  Status: " + styles.Status(f.status).Render(string(f.status))
	if f.focus == focusStatus {
		statusLine = styles.Selected.Render("> ") + "Status: " +
			styles.Status(f.status).Render(string(f.status)) +
			styles.Subtle.Render("  ◀ ▶")
	}
	b.WriteString(statusLine + "\n")

	b.WriteString(f.platform.View() + "\n")
	b.WriteString(f.notes.View() + "\n")

	if f.errMsg != "" {
		b.WriteString("\n" + styles.ErrorText.Render(f.errMsg))
	}

	b.WriteString("\n" + styles.Help.Render(
		"enter save • tab next field • ctrl+t today • ctrl+y yesterday • ctrl+p platform pick • esc cancel"))

	return styles.Box.Render(b.String())
}
