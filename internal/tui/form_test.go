package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"jobtrack/internal/domain"
)

func fixedNow() time.Time {
	return time.Date(2024, 5, 17, 12, 0, 0, 0, time.UTC)
}

func TestFormCreateDefaults(t *testing.T) {
	f := newFormModel(nil, fixedNow)
	data := f.data()

	if data.Status != domain.StatusApplied {
		t.Errorf("status = %q, want Applied", data.Status)
	}
	if data.ApplicationDate != "2024-05-17" {
		t.Errorf("date = %q, want today", data.ApplicationDate)
	}
	if f.editing != nil {
		t.Error("create form has an edit target")
	}
}

func TestFormSeedsFromEditTarget(t *testing.T) {
	app := sampleApps()[1]
	f := newFormModel(&app, fixedNow)
	data := f.data()

	if data.CompanyName != "Globex" || data.JobTitle != "SRE" || data.Status != domain.StatusOffer {
		t.Errorf("seed = %+v", data)
	}

	// A new target gets a fresh draft; nothing bleeds over.
	other := sampleApps()[0]
	f2 := newFormModel(&other, fixedNow)
	if got := f2.data().CompanyName; got != "Acme" {
		t.Errorf("reseed company = %q, want Acme", got)
	}
}

func TestFormDateShortcuts(t *testing.T) {
	f := newFormModel(nil, fixedNow)

	f, _, _ = f.update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if got := f.data().ApplicationDate; got != "2024-05-16" {
		t.Errorf("yesterday = %q", got)
	}

	f, _, _ = f.update(tea.KeyMsg{Type: tea.KeyCtrlT})
	if got := f.data().ApplicationDate; got != "2024-05-17" {
		t.Errorf("today = %q", got)
	}
}

func TestFormPlatformShortcutThenTypingWins(t *testing.T) {
	f := newFormModel(nil, fixedNow)

	f, _, _ = f.update(tea.KeyMsg{Type: tea.KeyCtrlP})
	if got := f.data().Platform; got != domain.Platforms[0] {
		t.Errorf("platform = %q, want %q", got, domain.Platforms[0])
	}
	f, _, _ = f.update(tea.KeyMsg{Type: tea.KeyCtrlP})
	if got := f.data().Platform; got != domain.Platforms[1] {
		t.Errorf("platform = %q, want %q", got, domain.Platforms[1])
	}

	// The text field stays the source of truth.
	f.focus = focusPlatform
	_ = f.applyFocus()
	f, _, _ = f.update(keyRune('x'))
	if got := f.data().Platform; got != domain.Platforms[1]+"x" {
		t.Errorf("typed platform = %q", got)
	}
}

func TestFormStatusCycling(t *testing.T) {
	f := newFormModel(nil, fixedNow)
	f.focus = focusStatus

	f, _, _ = f.update(tea.KeyMsg{Type: tea.KeyRight})
	if f.status != domain.StatusScreening {
		t.Errorf("status = %q, want Screening", f.status)
	}
	f, _, _ = f.update(tea.KeyMsg{Type: tea.KeyLeft})
	if f.status != domain.StatusApplied {
		t.Errorf("status = %q, want Applied", f.status)
	}
}

func TestFormValidationBlocksSubmit(t *testing.T) {
	f := newFormModel(nil, fixedNow)

	f, _, res := f.update(keyEnter)

	if res != formNone {
		t.Errorf("result = %v, want no submit", res)
	}
	if f.errMsg == "" {
		t.Error("expected a validation message")
	}
}

func TestFormSubmitEmitsDraft(t *testing.T) {
	f := newFormModel(nil, fixedNow)
	f.company.SetValue("Acme")
	f.title.SetValue("Engineer")

	f, _, res := f.update(keyEnter)

	if res != formSubmit {
		t.Fatalf("result = %v, want submit", res)
	}
	data := f.data()
	if data.CompanyName != "Acme" || data.JobTitle != "Engineer" || data.Status != domain.StatusApplied {
		t.Errorf("draft = %+v", data)
	}
}

func TestFormEscCancels(t *testing.T) {
	f := newFormModel(nil, fixedNow)
	_, _, res := f.update(tea.KeyMsg{Type: tea.KeyEsc})
	if res != formCancel {
		t.Errorf("result = %v, want cancel", res)
	}
}
