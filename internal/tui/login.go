package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"jobtrack/internal/api"
	"jobtrack/internal/tui/styles"
)

// successDelay keeps a success message visible before the view switches.
const successDelay = time.Second

type loginModel struct {
	inputs     [2]textinput.Model // email, password
	focus      int
	submitting bool
	succeeded  bool
	message    string
	spin       spinner.Model
}

func newLoginModel() loginModel {
	email := textinput.New()
	email.Placeholder = "Email"
	email.CharLimit = 128
	email.Width = 36
	email.Focus()

	password := textinput.New()
	password.Placeholder = "Password"
	password.CharLimit = 128
	password.Width = 36
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Subtle

	return loginModel{
		inputs: [2]textinput.Model{email, password},
		spin:   s,
	}
}

func (m Model) updateLogin(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// The submit control is disabled while a request is in flight;
		// nothing is aborted, the second submit just can't happen.
		if m.login.submitting || m.login.succeeded {
			return m, nil
		}
		switch msg.String() {
		case "tab", "down":
			m.login.focus = (m.login.focus + 1) % len(m.login.inputs)
			return m, m.focusLoginInput()
		case "shift+tab", "up":
			m.login.focus = (m.login.focus + len(m.login.inputs) - 1) % len(m.login.inputs)
			return m, m.focusLoginInput()
		case "ctrl+r":
			m.view = viewRegister
			m.register = newRegisterModel()
			return m, textinput.Blink
		case "enter":
			return m.submitLogin()
		}

	case loginDoneMsg:
		if msg.err != nil {
			m.login.submitting = false
			m.login.message = api.Message(msg.err)
			return m, nil
		}
		m.login.submitting = false
		m.login.succeeded = true
		m.login.message = "Signed in. Loading your applications..."
		return m, navigateAfter(successDelay, viewList)

	case spinner.TickMsg:
		if !m.login.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.login.spin, cmd = m.login.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m Model) submitLogin() (Model, tea.Cmd) {
	email := strings.TrimSpace(m.login.inputs[0].Value())
	password := m.login.inputs[1].Value()
	if email == "" || password == "" {
		m.login.message = "email and password are required"
		return m, nil
	}
	m.login.submitting = true
	m.login.message = ""
	return m, tea.Batch(
		m.login.spin.Tick,
		loginCmd(m.client, m.store, email, password),
	)
}

func (m *Model) focusLoginInput() tea.Cmd {
	var cmd tea.Cmd
	for i := range m.login.inputs {
		if i == m.login.focus {
			cmd = m.login.inputs[i].Focus()
		} else {
			m.login.inputs[i].Blur()
		}
	}
	return cmd
}

func (m Model) loginView() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Job Tracker"))
	b.WriteString("\n")
	b.WriteString(styles.Subtle.Render("Sign in to continue"))
	b.WriteString("\n\n")

	for i := range m.login.inputs {
		b.WriteString(m.login.inputs[i].View())
		b.WriteString("\n")
	}

	if m.login.submitting {
		b.WriteString("\n" + m.login.spin.View() + styles.Subtle.Render("Signing in..."))
	}
	if m.login.message != "" {
		style := styles.ErrorText
		if m.login.succeeded {
			style = styles.SuccessText
		}
		b.WriteString("\n" + style.Render(m.login.message))
	}

	if m.callbackAddr != "" {
		b.WriteString("\n\n" + styles.Subtle.Render("Browser sign-in lands on http://"+m.callbackAddr+"/auth/callback"))
	}

	b.WriteString("\n\n" + styles.Help.Render("enter sign in • tab next field • ctrl+r register • ctrl+c quit"))

	return styles.Box.Render(b.String())
}
