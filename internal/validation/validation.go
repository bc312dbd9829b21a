package validation

import (
	"regexp"
)

// FieldErrors collects per-field validation messages and serializes to the
// {"field": ["msg", ...]} shape the API returns on 400s.
type FieldErrors map[string][]string

func New() FieldErrors {
	return make(FieldErrors)
}

func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e FieldErrors) HasErrors() bool {
	return len(e) > 0
}

func (e FieldErrors) Required(field, value string) {
	if value == "" {
		e.Add(field, "This field is required.")
	}
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
