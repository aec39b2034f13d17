package tui

import (
	"log"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"jobtrack/internal/callback"
)

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.callbackCh != nil {
		cmds = append(cmds, waitCallback(m.callbackCh))
	}
	if m.view == viewList {
		cmds = append(cmds, m.list.spin.Tick, fetchCmd(m.client))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case navigateMsg:
		switch msg.to {
		case viewList:
			return m.gotoList()
		default:
			m.view = viewLogin
			m.login = newLoginModel()
			return m, textinput.Blink
		}

	case callbackMsg:
		return m.handleCallback(msg.res)
	}

	switch m.view {
	case viewLogin:
		return m.updateLogin(msg)
	case viewRegister:
		return m.updateRegister(msg)
	default:
		return m.updateList(msg)
	}
}

// handleCallback applies the redirect contract: token and name must both
// be present, or nothing is stored and the user lands back on sign-in.
func (m Model) handleCallback(res callback.Result) (tea.Model, tea.Cmd) {
	rearm := waitCallback(m.callbackCh)

	if res.Token == "" || res.Name == "" {
		log.Printf("login callback missing token or name; back to sign-in")
		m.view = viewLogin
		m.login = newLoginModel()
		return m, tea.Batch(rearm, textinput.Blink)
	}

	if err := m.store.SetSession(res.Token, res.Name); err != nil {
		log.Printf("storing session from callback: %v", err)
		m.view = viewLogin
		m.login = newLoginModel()
		m.login.message = "could not store the sign-in session"
		return m, tea.Batch(rearm, textinput.Blink)
	}

	next, cmd := m.gotoList()
	return next, tea.Batch(rearm, cmd)
}

func (m Model) View() string {
	var content string
	switch m.view {
	case viewLogin:
		content = m.loginView()
	case viewRegister:
		content = m.registerView()
	default:
		content = m.listView()
	}

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}
