package domain

import "time"

// JobApplication is a server-owned record; the client keeps a disposable
// copy and never derives fields locally.
type JobApplication struct {
	ID              string `json:"id"`
	CompanyName     string `json:"companyName"`
	JobTitle        string `json:"jobTitle"`
	ApplicationDate string `json:"applicationDate"` // YYYY-MM-DD, no time component
	Status          Status `json:"status"`
	Platform        string `json:"platform,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// FormData is the editable subset of JobApplication. The server assigns
// the ID on create.
type FormData struct {
	CompanyName     string `json:"companyName"`
	JobTitle        string `json:"jobTitle"`
	ApplicationDate string `json:"applicationDate"`
	Status          Status `json:"status"`
	Platform        string `json:"platform,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// DateLayout is the wire format for ApplicationDate.
const DateLayout = "2006-01-02"

// Platforms are quick-pick suggestions; the platform field itself stays
// free text.
var Platforms = []string{
	"LinkedIn",
	"Glints",
	"JobStreet",
	"Indeed",
	"Email",
	"Referral",
}

// NewFormData returns create defaults: status Applied, date = today.
func NewFormData(now time.Time) FormData {
	return FormData{
		Status:          StatusApplied,
		ApplicationDate: now.Format(DateLayout),
	}
}

// FormDataFrom seeds a draft from an existing record for editing.
func FormDataFrom(app JobApplication) FormData {
	return FormData{
		CompanyName:     app.CompanyName,
		JobTitle:        app.JobTitle,
		ApplicationDate: app.ApplicationDate,
		Status:          app.Status,
		Platform:        app.Platform,
		Notes:           app.Notes,
	}
}

// Validate enforces the only client-side rule: company and title are
// required. Everything else is the server's business.
func (f FormData) Validate() []string {
	var errs []string
	if f.CompanyName == "" {
		errs = append(errs, "company name is required")
	}
	if f.JobTitle == "" {
		errs = append(errs, "job title is required")
	}
	return errs
}
