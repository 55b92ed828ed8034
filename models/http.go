package models

import "strings"

// SignUpRequest is the body of POST /api/auth/signup.
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Normalized trims and lowercases the email. The password is kept verbatim.
func (r SignUpRequest) Normalized() SignUpRequest {
	r.Email = NormalizeEmail(r.Email)
	return r
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Normalized() LoginRequest {
	r.Email = NormalizeEmail(r.Email)
	return r
}

// NormalizeEmail returns email trimmed and lowercased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ApplicationRequest is the body of POST, PUT and PATCH on
// /api/applications. A nil field was absent from the JSON body; on create
// every field but Notes is required, on update only present fields apply.
type ApplicationRequest struct {
	Company         *string `json:"company,omitempty"`
	JobTitle        *string `json:"job_title,omitempty"`
	ApplicationDate *string `json:"application_date,omitempty"`
	Status          *string `json:"status,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// JSON names of the [ApplicationRequest] fields.
const (
	FieldCompany         = "company"
	FieldJobTitle        = "job_title"
	FieldApplicationDate = "application_date"
	FieldStatus          = "status"
	FieldNotes           = "notes"
)

// Normalized trims every present string field.
func (r ApplicationRequest) Normalized() ApplicationRequest {
	r.Company = trimmed(r.Company)
	r.JobTitle = trimmed(r.JobTitle)
	r.ApplicationDate = trimmed(r.ApplicationDate)
	r.Status = trimmed(r.Status)
	r.Notes = trimmed(r.Notes)
	return r
}

// PresentFields returns the JSON names of the non-nil fields.
func (r ApplicationRequest) PresentFields() []string {
	fields := make([]string, 0, 5)
	if r.Company != nil {
		fields = append(fields, FieldCompany)
	}
	if r.JobTitle != nil {
		fields = append(fields, FieldJobTitle)
	}
	if r.ApplicationDate != nil {
		fields = append(fields, FieldApplicationDate)
	}
	if r.Status != nil {
		fields = append(fields, FieldStatus)
	}
	if r.Notes != nil {
		fields = append(fields, FieldNotes)
	}
	return fields
}

// ToApplication converts a validated create request into an application
// owned by userID. ID and CreatedAt are left for the service to assign.
func (r ApplicationRequest) ToApplication(userID string) (Application, error) {
	update, err := r.ToUpdate()
	if err != nil {
		return Application{}, err
	}

	app := update.Apply(Application{UserID: userID})
	if app.Notes != nil && *app.Notes == "" {
		app.Notes = nil
	}
	return app, nil
}

// ToUpdate converts the present fields into an [ApplicationUpdate].
func (r ApplicationRequest) ToUpdate() (ApplicationUpdate, error) {
	update := ApplicationUpdate{
		Company:  r.Company,
		JobTitle: r.JobTitle,
		Notes:    r.Notes,
	}

	if r.ApplicationDate != nil {
		date, err := ParseDate(*r.ApplicationDate)
		if err != nil {
			return ApplicationUpdate{}, err
		}
		update.ApplicationDate = &date
	}
	if r.Status != nil {
		status := Status(*r.Status)
		update.Status = &status
	}

	return update, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
