package tui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"jobtrack/internal/api"
	"jobtrack/internal/domain"
	"jobtrack/internal/tui/styles"
)

type listKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Add     key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Status  key.Binding
	Refresh key.Binding
	Logout  key.Binding
	Quit    key.Binding
}

func (k listKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Delete, k.Status, k.Refresh, k.Logout, k.Quit}
}

func (k listKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Add, k.Edit},
		{k.Delete, k.Status, k.Refresh, k.Logout, k.Quit},
	}
}

var listKeys = listKeyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	Edit:    key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
	Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Status:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "status")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Logout:  key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "logout")),
	Quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
}

// listModel renders the user's applications. The slice is always a full
// server snapshot; mutations never patch it locally, they refetch.
type listModel struct {
	apps   []domain.JobApplication
	cursor int

	loading  bool
	mutating bool
	errMsg   string
	alert    string // blocking overlay for mutation failures

	confirmDelete bool
	form          *formModel
	picker        *statusPicker

	name string // greeting, from the session store
	spin spinner.Model
	keys listKeyMap
	help help.Model
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Subtle

	return listModel{
		spin: s,
		keys: listKeys,
		help: help.New(),
	}
}

// gotoList is the single entry point into the list view. Missing token
// is a routing condition, not an error: straight back to sign-in, no
// fetch.
func (m Model) gotoList() (Model, tea.Cmd) {
	token, err := m.store.Token()
	if err != nil {
		log.Printf("reading session token: %v", err)
	}
	if token == "" {
		m.view = viewLogin
		m.login = newLoginModel()
		return m, textinput.Blink
	}

	if name, err := m.store.Name(); err == nil {
		m.list.name = name
	}

	m.view = viewList
	m.list.loading = true
	m.list.errMsg = ""
	return m, tea.Batch(m.list.spin.Tick, fetchCmd(m.client))
}

func (m Model) updateList(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case applicationsMsg:
		m.list.loading = false
		if msg.err != nil {
			m.list.errMsg = api.Message(msg.err)
			return m, nil
		}
		m.list.errMsg = ""
		m.list.apps = msg.apps
		if m.list.cursor >= len(m.list.apps) {
			m.list.cursor = len(m.list.apps) - 1
		}
		if m.list.cursor < 0 {
			m.list.cursor = 0
		}
		return m, nil

	case mutationDoneMsg:
		m.list.mutating = false
		if msg.err != nil {
			// The list was never touched, so there is nothing to roll
			// back; just block until the user acknowledges.
			m.list.alert = api.Message(msg.err)
			return m, nil
		}
		m.list.loading = true
		return m, tea.Batch(m.list.spin.Tick, fetchCmd(m.client))

	case spinner.TickMsg:
		if !m.list.loading && !m.list.mutating {
			return m, nil
		}
		var cmd tea.Cmd
		m.list.spin, cmd = m.list.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleListKey(msg)
	}

	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	// Overlays swallow input, innermost first.
	if m.list.alert != "" {
		m.list.alert = ""
		return m, nil
	}

	if m.list.form != nil {
		form, cmd, res := m.list.form.update(msg)
		m.list.form = &form
		switch res {
		case formCancel:
			m.list.form = nil
		case formSubmit:
			return m.submitForm(form)
		}
		return m, cmd
	}

	if m.list.confirmDelete {
		switch msg.String() {
		case "y":
			m.list.confirmDelete = false
			m.list.mutating = true
			return m, tea.Batch(m.list.spin.Tick, deleteCmd(m.client, m.list.apps[m.list.cursor].ID))
		case "n", "esc":
			// Declined: no request, record stays.
			m.list.confirmDelete = false
		}
		return m, nil
	}

	if m.list.picker != nil {
		picker, closed, updated := m.list.picker.update(msg)
		m.list.picker = &picker
		if closed {
			m.list.picker = nil
		}
		if updated != nil {
			m.list.mutating = true
			return m, tea.Batch(m.list.spin.Tick, updateCmd(m.client, *updated))
		}
		return m, nil
	}

	busy := m.list.loading || m.list.mutating

	switch {
	case key.Matches(msg, m.list.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.list.keys.Up):
		if m.list.cursor > 0 {
			m.list.cursor--
		}
	case key.Matches(msg, m.list.keys.Down):
		if m.list.cursor < len(m.list.apps)-1 {
			m.list.cursor++
		}
	case key.Matches(msg, m.list.keys.Add):
		if !busy {
			form := newFormModel(nil, time.Now)
			m.list.form = &form
			return m, textinput.Blink
		}
	case key.Matches(msg, m.list.keys.Edit):
		if !busy && len(m.list.apps) > 0 {
			target := m.list.apps[m.list.cursor]
			form := newFormModel(&target, time.Now)
			m.list.form = &form
			return m, textinput.Blink
		}
	case key.Matches(msg, m.list.keys.Delete):
		if !busy && len(m.list.apps) > 0 {
			m.list.confirmDelete = true
		}
	case key.Matches(msg, m.list.keys.Status):
		if !busy && len(m.list.apps) > 0 {
			picker := newStatusPicker(m.list.apps[m.list.cursor])
			m.list.picker = &picker
		}
	case key.Matches(msg, m.list.keys.Refresh):
		if !busy {
			m.list.loading = true
			m.list.errMsg = ""
			return m, tea.Batch(m.list.spin.Tick, fetchCmd(m.client))
		}
	case key.Matches(msg, m.list.keys.Logout):
		return m.logout()
	}
	return m, nil
}

func (m Model) submitForm(form formModel) (Model, tea.Cmd) {
	data := form.data()
	m.list.form = nil
	m.list.mutating = true

	if form.editing != nil {
		updated := *form.editing
		updated.CompanyName = data.CompanyName
		updated.JobTitle = data.JobTitle
		updated.ApplicationDate = data.ApplicationDate
		updated.Status = data.Status
		updated.Platform = data.Platform
		updated.Notes = data.Notes
		return m, tea.Batch(m.list.spin.Tick, updateCmd(m.client, updated))
	}
	return m, tea.Batch(m.list.spin.Tick, createCmd(m.client, data))
}

func (m Model) logout() (Model, tea.Cmd) {
	if err := m.store.Clear(); err != nil {
		log.Printf("clearing session: %v", err)
	}
	m.view = viewLogin
	m.login = newLoginModel()
	m.list = newListModel()
	return m, textinput.Blink
}

func (m Model) listView() string {
	if m.list.form != nil {
		return m.list.form.view()
	}
	if m.list.picker != nil {
		return m.list.picker.view()
	}
	if m.list.alert != "" {
		return styles.AlertBox.Render(
			styles.ErrorText.Render(m.list.alert) + "\n\n" +
				styles.Help.Render("press any key to continue"))
	}
	if m.list.confirmDelete {
		app := m.list.apps[m.list.cursor]
		return styles.AlertBox.Render(
			fmt.Sprintf("Delete the application for %s at %s?\nThis cannot be undone.",
				app.JobTitle, app.CompanyName) + "\n\n" +
				styles.Help.Render("y delete • n keep"))
	}

	var b strings.Builder

	header := styles.Title.Render("Job Applications")
	if m.list.name != "" {
		header += styles.Subtle.Render("  —  hi, " + m.list.name)
	}
	b.WriteString(header + "\n\n")

	switch {
	case m.list.loading:
		b.WriteString(m.list.spin.View() + styles.Subtle.Render("Loading applications..."))
	case m.list.errMsg != "":
		b.WriteString(styles.ErrorText.Render(m.list.errMsg))
		b.WriteString("\n" + styles.Subtle.Render("press r to try again"))
	case len(m.list.apps) == 0:
		b.WriteString(styles.Subtle.Render("No applications yet. Press a to add your first one."))
	default:
		for i, app := range m.list.apps {
			cursor := "  "
			if i == m.list.cursor {
				cursor = styles.Selected.Render("> ")
			}
			line := fmt.Sprintf("%s%s — %s", cursor, app.CompanyName, app.JobTitle)
			meta := app.ApplicationDate
			if app.Platform != "" {
				meta += " · " + app.Platform
			}
			b.WriteString(line + "\n")
			b.WriteString("    " + styles.Subtle.Render(meta) + "  " +
				styles.Status(app.Status).Render(string(app.Status)) + "\n")
		}
		if m.list.mutating {
			b.WriteString("\n" + m.list.spin.View() + styles.Subtle.Render("Saving..."))
		}
	}

	b.WriteString("\n\n" + m.list.help.View(m.list.keys))
	return b.String()
}
