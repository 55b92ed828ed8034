package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-job-tracker/models"
	"github.com/go-playground/validator/v10"
)

// Validation messages returned to the client, keyed by JSON field name and
// failed tag. A field without an entry for a tag falls back to its "*" entry.
var messages = map[string]map[string]string{
	"email": {
		"*": "Please provide a valid email",
	},
	"password": {
		"*": "Password must be at least 6 characters long",
	},
	"login_password": {
		"*": "Password is required",
	},
	models.FieldCompany: {
		"required": "Company name is required",
		"max":      "Company name must be less than 255 characters",
	},
	models.FieldJobTitle: {
		"required": "Job title is required",
		"max":      "Job title must be less than 255 characters",
	},
	models.FieldApplicationDate: {
		"*": "Please provide a valid date (YYYY-MM-DD)",
	},
	models.FieldStatus: {
		"*": "Status must be one of: applied, interview, offered, rejected",
	},
	models.FieldNotes: {
		"*": "Notes must be less than 5000 characters",
	},
}

type signUpInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=6"`
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"login_password" validate:"required"`
}

type applicationInput struct {
	Company         string `json:"company" validate:"required,max=255"`
	JobTitle        string `json:"job_title" validate:"required,max=255"`
	ApplicationDate string `json:"application_date" validate:"required,isodate"`
	Status          string `json:"status" validate:"required,appstatus"`
	Notes           string `json:"notes" validate:"max=5000"`
}

// structFields maps the JSON names of [models.ApplicationRequest] to the
// struct fields of applicationInput for partial validation.
var structFields = map[string]string{
	models.FieldCompany:         "Company",
	models.FieldJobTitle:        "JobTitle",
	models.FieldApplicationDate: "ApplicationDate",
	models.FieldStatus:          "Status",
	models.FieldNotes:           "Notes",
}

// RequestValidator validates the JSON bodies accepted by the HTTP API.
// Requests are expected to be normalized (trimmed) before validation.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator builds a RequestValidator with the custom "isodate"
// and "appstatus" rules registered.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// registration only fails for empty tags or nil functions
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := models.ParseDate(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("appstatus", func(fl validator.FieldLevel) bool {
		return models.Status(fl.Field().String()).IsValid()
	})

	return &RequestValidator{validate: v}
}

// Validate checks a [models.SignUpRequest], [models.LoginRequest] or
// [models.ApplicationRequest]. For an application request, fields restricts
// validation to the given JSON names; without fields the full create rules
// apply.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignUpRequest:
		return v.check(v.validate.StructCtx(ctx, signUpInput{Email: value.Email, Password: value.Password}))
	case *models.SignUpRequest:
		return v.Validate(ctx, *value, fields...)

	case models.LoginRequest:
		return v.check(v.validate.StructCtx(ctx, loginInput{Email: value.Email, Password: value.Password}))
	case *models.LoginRequest:
		return v.Validate(ctx, *value, fields...)

	case models.ApplicationRequest:
		return v.validateApplication(ctx, value, fields...)
	case *models.ApplicationRequest:
		return v.validateApplication(ctx, *value, fields...)
	}

	return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
}

func (v *RequestValidator) validateApplication(ctx context.Context, req models.ApplicationRequest, fields ...string) error {
	input := applicationInput{
		Company:         deref(req.Company),
		JobTitle:        deref(req.JobTitle),
		ApplicationDate: deref(req.ApplicationDate),
		Status:          deref(req.Status),
		Notes:           deref(req.Notes),
	}

	if len(fields) == 0 {
		return v.check(v.validate.StructCtx(ctx, input))
	}

	names := make([]string, 0, len(fields))
	for _, f := range fields {
		name, ok := structFields[f]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
		names = append(names, name)
	}

	return v.check(v.validate.StructPartialCtx(ctx, input, names...))
}

// check converts validator errors into a [*ValidationError], one detail per
// rejected field.
func (v *RequestValidator) check(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	details := make([]models.ValidationDetail, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fe.Field()
		details = append(details, models.ValidationDetail{
			Field:   publicName(field),
			Message: message(field, fe.Tag()),
		})
	}

	return &ValidationError{Details: details}
}

func message(field, tag string) string {
	byTag, ok := messages[field]
	if !ok {
		return fmt.Sprintf("Invalid value of %s", publicName(field))
	}
	if msg, ok := byTag[tag]; ok {
		return msg
	}
	return byTag["*"]
}

// publicName hides the internal alias used to give login passwords their
// own message.
func publicName(field string) string {
	if field == "login_password" {
		return "password"
	}
	return field
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
