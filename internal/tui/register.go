package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"jobtrack/internal/api"
	"jobtrack/internal/tui/styles"
)

type registerModel struct {
	inputs     [3]textinput.Model // name, email, password
	focus      int
	submitting bool
	succeeded  bool
	message    string
	spin       spinner.Model
}

func newRegisterModel() registerModel {
	name := textinput.New()
	name.Placeholder = "Full name"
	name.CharLimit = 128
	name.Width = 36
	name.Focus()

	email := textinput.New()
	email.Placeholder = "Email"
	email.CharLimit = 128
	email.Width = 36

	password := textinput.New()
	password.Placeholder = "Password"
	password.CharLimit = 128
	password.Width = 36
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Subtle

	return registerModel{
		inputs: [3]textinput.Model{name, email, password},
		spin:   s,
	}
}

func (m Model) updateRegister(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.register.submitting || m.register.succeeded {
			return m, nil
		}
		switch msg.String() {
		case "tab", "down":
			m.register.focus = (m.register.focus + 1) % len(m.register.inputs)
			return m, m.focusRegisterInput()
		case "shift+tab", "up":
			m.register.focus = (m.register.focus + len(m.register.inputs) - 1) % len(m.register.inputs)
			return m, m.focusRegisterInput()
		case "esc":
			m.view = viewLogin
			m.login = newLoginModel()
			return m, textinput.Blink
		case "enter":
			return m.submitRegister()
		}

	case registerDoneMsg:
		if msg.err != nil {
			m.register.submitting = false
			m.register.message = api.Message(msg.err)
			return m, nil
		}
		// Registration issues no token; back to the sign-in form.
		m.register.submitting = false
		m.register.succeeded = true
		m.register.message = "Account created. Taking you to sign in..."
		return m, navigateAfter(successDelay, viewLogin)

	case spinner.TickMsg:
		if !m.register.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.register.spin, cmd = m.register.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m Model) submitRegister() (Model, tea.Cmd) {
	name := strings.TrimSpace(m.register.inputs[0].Value())
	email := strings.TrimSpace(m.register.inputs[1].Value())
	password := m.register.inputs[2].Value()
	if name == "" || email == "" || password == "" {
		m.register.message = "name, email and password are required"
		return m, nil
	}
	m.register.submitting = true
	m.register.message = ""
	return m, tea.Batch(
		m.register.spin.Tick,
		registerCmd(m.client, name, email, password),
	)
}

func (m *Model) focusRegisterInput() tea.Cmd {
	var cmd tea.Cmd
	for i := range m.register.inputs {
		if i == m.register.focus {
			cmd = m.register.inputs[i].Focus()
		} else {
			m.register.inputs[i].Blur()
		}
	}
	return cmd
}

func (m Model) registerView() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Create an account"))
	b.WriteString("\n")
	b.WriteString(styles.Subtle.Render("Track your job applications in one place"))
	b.WriteString("\n\n")

	for i := range m.register.inputs {
		b.WriteString(m.register.inputs[i].View())
		b.WriteString("\n")
	}

	if m.register.submitting {
		b.WriteString("\n" + m.register.spin.View() + styles.Subtle.Render("Creating account..."))
	}
	if m.register.message != "" {
		style := styles.ErrorText
		if m.register.succeeded {
			style = styles.SuccessText
		}
		b.WriteString("\n" + style.Render(m.register.message))
	}

	b.WriteString("\n\n" + styles.Help.Render("enter register • tab next field • esc back to sign in • ctrl+c quit"))

	return styles.Box.Render(b.String())
}
