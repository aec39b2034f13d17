package tui

import (
	"context"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"jobtrack/internal/api"
	"jobtrack/internal/callback"
	"jobtrack/internal/config"
	"jobtrack/internal/session"
)

// App wraps the Bubble Tea program and the loopback callback listener.
type App struct {
	cfg    config.Config
	store  session.Store
	client *api.Client
}

func New(cfg config.Config, store session.Store, client *api.Client) *App {
	return &App{cfg: cfg, store: store, client: client}
}

// Run blocks until the user quits. The callback listener lives for the
// whole program; a failure to bind only costs browser sign-in, so it is
// logged and the TUI carries on.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		ch   chan callback.Result
		addr string
	)
	if a.cfg.Callback.Enabled {
		hub := callback.NewHub()
		ch = hub.Subscribe()
		addr = a.cfg.Callback.Listen
		srv := callback.NewServer(addr, hub)
		go func() {
			if err := srv.ListenAndServe(ctx); err != nil {
				log.Printf("callback listener: %v", err)
			}
		}()
	}

	model := NewModel(a.client, a.store, ch, addr)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
