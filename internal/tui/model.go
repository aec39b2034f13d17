package tui

import (
	"jobtrack/internal/api"
	"jobtrack/internal/callback"
	"jobtrack/internal/session"
)

type view int

const (
	viewLogin view = iota
	viewRegister
	viewList
)

// Model is the top-level Bubble Tea model. It owns view routing and the
// session store; each view keeps its own state underneath.
type Model struct {
	client *api.Client
	store  session.Store

	// callbackCh receives third-party login redirects from the loopback
	// listener; nil when the listener is disabled.
	callbackCh   chan callback.Result
	callbackAddr string

	view   view
	width  int
	height int

	login    loginModel
	register registerModel
	list     listModel
}

// NewModel builds the model. A stored token routes straight to the list
// view; its validity is only ever decided by the server rejecting a
// request.
func NewModel(client *api.Client, store session.Store, callbackCh chan callback.Result, callbackAddr string) Model {
	m := Model{
		client:       client,
		store:        store,
		callbackCh:   callbackCh,
		callbackAddr: callbackAddr,
		view:         viewLogin,
		login:        newLoginModel(),
		register:     newRegisterModel(),
		list:         newListModel(),
	}
	if token, err := store.Token(); err == nil && token != "" {
		m.view = viewList
		m.list.loading = true
		if name, err := store.Name(); err == nil {
			m.list.name = name
		}
	}
	return m
}
