package crickboost

import (
	"regexp"
	"unicode/utf8"
)

const (
	minNameLen     = 2
	minPasswordLen = 8
)

// emailPattern accepts anything of the shape local@domain.tld. Full RFC 5322
// parsing buys nothing here; the address is only ever used as an exact-match
// store key.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidationError reports malformed signup or login input. Fields maps a
// form field name to a display message; Message is the form-level summary.
type ValidationError struct {
	Fields  map[string]string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validateSignup(in SignupInput) *ValidationError {
	fields := map[string]string{}

	if utf8.RuneCountInString(in.Name) < minNameLen {
		fields["name"] = "Name must be at least 2 characters"
	}
	if !emailPattern.MatchString(in.Email) {
		fields["email"] = "Invalid email address"
	}
	if len(in.Password) < minPasswordLen {
		fields["password"] = "Password must be at least 8 characters"
	}

	if len(fields) > 0 {
		return &ValidationError{
			Fields:  fields,
			Message: "Invalid fields. Failed to sign up.",
		}
	}

	return nil
}

func validateLogin(in LoginInput) *ValidationError {
	fields := map[string]string{}

	if !emailPattern.MatchString(in.Email) {
		fields["email"] = "Invalid email address"
	}
	if in.Password == "" {
		fields["password"] = "Password is required"
	}

	if len(fields) > 0 {
		return &ValidationError{
			Fields:  fields,
			Message: "Invalid fields. Failed to log in.",
		}
	}

	return nil
}
