package tui

import (
	"testing"

	"jobtrack/internal/callback"
	"jobtrack/internal/session"
)

func TestCallbackStoresSessionAndOpensList(t *testing.T) {
	store := session.NewMemory()
	m := NewModel(unreachableClient(store), store, nil, "")

	res, cmd := m.handleCallback(callback.Result{Token: "T2", Name: "Budi S"})
	m = res.(Model)

	token, _ := store.Token()
	name, _ := store.Name()
	if token != "T2" || name != "Budi S" {
		t.Errorf("stored token=%q name=%q", token, name)
	}
	if m.view != viewList {
		t.Error("expected the list view")
	}
	if cmd == nil {
		t.Error("expected a fetch command")
	}
}

func TestCallbackWithoutNameWritesNothing(t *testing.T) {
	store := session.NewMemory()
	m := NewModel(unreachableClient(store), store, nil, "")

	res, _ := m.handleCallback(callback.Result{Token: "T2"})
	m = res.(Model)

	token, _ := store.Token()
	name, _ := store.Name()
	if token != "" || name != "" {
		t.Errorf("incomplete callback wrote token=%q name=%q", token, name)
	}
	if m.view != viewLogin {
		t.Error("expected the login view")
	}
}

func TestCallbackWithoutTokenWritesNothing(t *testing.T) {
	store := session.NewMemory()
	m := NewModel(unreachableClient(store), store, nil, "")

	res, _ := m.handleCallback(callback.Result{Name: "Budi S"})
	m = res.(Model)

	if token, _ := store.Token(); token != "" {
		t.Errorf("token = %q", token)
	}
	if m.view != viewLogin {
		t.Error("expected the login view")
	}
}

func TestStartupWithStoredTokenOpensList(t *testing.T) {
	store := session.NewMemory()
	_ = store.SetSession("T1", "Ana")

	m := NewModel(unreachableClient(store), store, nil, "")

	if m.view != viewList || !m.list.loading {
		t.Errorf("view=%v loading=%v", m.view, m.list.loading)
	}
	if m.list.name != "Ana" {
		t.Errorf("greeting = %q", m.list.name)
	}
}

func TestStartupWithoutTokenOpensLogin(t *testing.T) {
	store := session.NewMemory()
	m := NewModel(unreachableClient(store), store, nil, "")
	if m.view != viewLogin {
		t.Error("expected the login view")
	}
}
