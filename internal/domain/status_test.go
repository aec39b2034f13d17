package domain

import (
	"testing"
	"time"
)

func TestStatusClass(t *testing.T) {
	cases := []struct {
		status Status
		want   Class
	}{
		{StatusApplied, ClassEarly},
		{StatusScreening, ClassEarly},
		{StatusInterviewHR, ClassInProgress},
		{StatusInterviewUser, ClassInProgress},
		{StatusTechnicalTest, ClassInProgress},
		{StatusOffer, ClassPositive},
		{StatusRejected, ClassNegative},
		{Status("Something New"), ClassNeutral},
		{Status(""), ClassNeutral},
	}
	for _, tc := range cases {
		if got := tc.status.Class(); got != tc.want {
			t.Errorf("Class(%q) = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestStatusesCoverEveryConstant(t *testing.T) {
	if len(Statuses) != 7 {
		t.Fatalf("expected 7 statuses, got %d", len(Statuses))
	}
	seen := map[Status]bool{}
	for _, s := range Statuses {
		if seen[s] {
			t.Errorf("duplicate status %q", s)
		}
		seen[s] = true
	}
}

func TestNewFormDataDefaults(t *testing.T) {
	now := time.Date(2024, 5, 17, 15, 4, 5, 0, time.UTC)
	f := NewFormData(now)

	if f.Status != StatusApplied {
		t.Errorf("default status = %q, want %q", f.Status, StatusApplied)
	}
	if f.ApplicationDate != "2024-05-17" {
		t.Errorf("default date = %q, want 2024-05-17", f.ApplicationDate)
	}
	if f.CompanyName != "" || f.JobTitle != "" || f.Platform != "" || f.Notes != "" {
		t.Errorf("expected other fields empty, got %+v", f)
	}
}

func TestFormDataFrom(t *testing.T) {
	app := JobApplication{
		ID:              "42",
		CompanyName:     "Acme",
		JobTitle:        "Engineer",
		ApplicationDate: "2024-01-02",
		Status:          StatusOffer,
		Platform:        "LinkedIn",
		Notes:           "second round went well",
	}
	f := FormDataFrom(app)

	if f.CompanyName != app.CompanyName || f.JobTitle != app.JobTitle ||
		f.ApplicationDate != app.ApplicationDate || f.Status != app.Status ||
		f.Platform != app.Platform || f.Notes != app.Notes {
		t.Errorf("FormDataFrom dropped fields: %+v", f)
	}
}

func TestFormDataValidate(t *testing.T) {
	cases := []struct {
		name    string
		form    FormData
		wantErr int
	}{
		{"both missing", FormData{}, 2},
		{"title missing", FormData{CompanyName: "Acme"}, 1},
		{"company missing", FormData{JobTitle: "Engineer"}, 1},
		{"minimal valid", FormData{CompanyName: "Acme", JobTitle: "Engineer"}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := len(tc.form.Validate()); got != tc.wantErr {
				t.Errorf("Validate() returned %d errors, want %d", got, tc.wantErr)
			}
		})
	}
}
