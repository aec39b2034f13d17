package tui

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"jobtrack/internal/api"
	"jobtrack/internal/callback"
	"jobtrack/internal/domain"
	"jobtrack/internal/session"
)

// loginDoneMsg reports a finished login attempt. On success the token
// (and best-effort name) are already persisted.
type loginDoneMsg struct {
	name string
	err  error
}

// registerDoneMsg reports a finished registration attempt.
type registerDoneMsg struct {
	err error
}

// applicationsMsg carries the result of a full list fetch.
type applicationsMsg struct {
	apps []domain.JobApplication
	err  error
}

// mutationDoneMsg reports a create/update/delete; success triggers a
// full refetch, failure raises the blocking alert.
type mutationDoneMsg struct {
	err error
}

// navigateMsg switches the active view after a delayed transition.
type navigateMsg struct {
	to view
}

// callbackMsg delivers a third-party login redirect.
type callbackMsg struct {
	res callback.Result
}

// loginCmd performs the whole login flow: exchange credentials, persist
// the token, then try to pick up a display name. The token write
// strictly precedes the message that triggers navigation, so no view
// ever loads "navigated but not authenticated". The profile fetch is
// best-effort; its failure is logged and swallowed.
func loginCmd(c *api.Client, store session.Store, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		token, err := c.Login(ctx, email, password)
		if err != nil {
			return loginDoneMsg{err: err}
		}
		if err := store.SetToken(token); err != nil {
			return loginDoneMsg{err: err}
		}

		name := ""
		if p, err := c.GetProfile(ctx); err != nil {
			log.Printf("profile fetch after login failed: %v", err)
		} else if p.Name != "" {
			name = p.Name
			if err := store.SetName(p.Name); err != nil {
				log.Printf("storing display name failed: %v", err)
			}
		}
		return loginDoneMsg{name: name}
	}
}

func registerCmd(c *api.Client, name, email, password string) tea.Cmd {
	return func() tea.Msg {
		return registerDoneMsg{err: c.Register(context.Background(), name, email, password)}
	}
}

func fetchCmd(c *api.Client) tea.Cmd {
	return func() tea.Msg {
		apps, err := c.ListApplications(context.Background())
		return applicationsMsg{apps: apps, err: err}
	}
}

func createCmd(c *api.Client, form domain.FormData) tea.Cmd {
	return func() tea.Msg {
		_, err := c.CreateApplication(context.Background(), form)
		return mutationDoneMsg{err: err}
	}
}

func updateCmd(c *api.Client, app domain.JobApplication) tea.Cmd {
	return func() tea.Msg {
		_, err := c.UpdateApplication(context.Background(), app)
		return mutationDoneMsg{err: err}
	}
}

func deleteCmd(c *api.Client, id string) tea.Cmd {
	return func() tea.Msg {
		return mutationDoneMsg{err: c.DeleteApplication(context.Background(), id)}
	}
}

// navigateAfter keeps a success message on screen briefly before the
// view switches.
func navigateAfter(d time.Duration, to view) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return navigateMsg{to: to}
	})
}

// waitCallback blocks on the redirect channel; re-armed after every
// delivery.
func waitCallback(ch chan callback.Result) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		res, ok := <-ch
		if !ok {
			return nil
		}
		return callbackMsg{res: res}
	}
}
