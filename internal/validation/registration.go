// Copyright (c) 2025 FreshMart
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package validation checks sign-up input on the client before it is sent.
// The rules match what the storefront service enforces, so a form that passes
// here is rejected by the server only for reasons the client cannot know,
// such as an email that is already registered.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"freshmart/cli/internal/backend"
	apperrors "freshmart/cli/internal/errors"
)

var (
	reEmail   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	rePhone   = regexp.MustCompile(`^[0-9]{10}$`)
	reName    = regexp.MustCompile(`^[a-zA-Z\s]{2,100}$`)
	rePwChars = regexp.MustCompile(`^[A-Za-z\d@$!%*?&]+$`)
)

const passwordSpecials = "@$!%*?&"

// FieldError is a single failed rule.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string { return fmt.Sprintf("%s: %s", e.Field, e.Message) }

// Registration checks every field and reports all failures at once.
// The returned error has kind invalid_input and unwraps to the individual
// *FieldError values.
func Registration(reg backend.Registration) error {
	var errs []error
	add := func(field, msg string) { errs = append(errs, &FieldError{Field: field, Message: msg}) }

	if msg := customerName(reg.CustomerName); msg != "" {
		add("customerName", msg)
	}
	if msg := Email(reg.Email); msg != "" {
		add("email", msg)
	}
	if msg := Password(reg.Password); msg != "" {
		add("password", msg)
	}
	if reg.ConfirmPassword != reg.Password {
		add("confirmPassword", "Passwords do not match")
	}
	if msg := address(reg.Address); msg != "" {
		add("address", msg)
	}
	if msg := contactNumber(reg.ContactNumber); msg != "" {
		add("contactNumber", msg)
	}

	if len(errs) == 0 {
		return nil
	}
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.(*FieldError).Message
	}
	return apperrors.Wrap(apperrors.InvalidInput, strings.Join(msgs, "; "), errors.Join(errs...))
}

// Fields lists the failing field names in err, in form order.
func Fields(err error) []string {
	var out []string
	for _, fe := range fieldErrors(err) {
		out = append(out, fe.Field)
	}
	return out
}

// Messages lists the failure messages in err, in form order.
func Messages(err error) []string {
	var out []string
	for _, fe := range fieldErrors(err) {
		out = append(out, fe.Message)
	}
	return out
}

func fieldErrors(err error) []*FieldError {
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		return nil
	}
	var out []*FieldError
	for _, e := range joined.Unwrap() {
		var fe *FieldError
		if errors.As(e, &fe) {
			out = append(out, fe)
		}
	}
	return out
}

func customerName(s string) string {
	switch {
	case strings.TrimSpace(s) == "":
		return "Customer name is required"
	case len(s) > 100:
		return "Customer name must not exceed 100 characters"
	case !reName.MatchString(strings.TrimSpace(s)):
		return "Customer name must contain only letters and spaces"
	}
	return ""
}

// Email returns the rule an email address breaks, or "".
func Email(s string) string {
	switch {
	case strings.TrimSpace(s) == "":
		return "Email is required"
	case len(s) > 100:
		return "Email must not exceed 100 characters"
	case !reEmail.MatchString(strings.TrimSpace(s)):
		return "Email format is invalid"
	}
	return ""
}

// Password returns the rule a password breaks, or "".
func Password(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Password is required"
	}
	if len(s) < 8 {
		return "Password must be at least 8 characters long"
	}
	var lower, upper, digit, special bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	if !lower || !upper || !digit || !special || !rePwChars.MatchString(s) {
		return "Password must contain at least one uppercase letter, one lowercase letter, one digit, and one special character"
	}
	return ""
}

func address(s string) string {
	switch {
	case strings.TrimSpace(s) == "":
		return "Address is required"
	case len(s) > 500:
		return "Address must not exceed 500 characters"
	}
	return ""
}

func contactNumber(s string) string {
	switch {
	case strings.TrimSpace(s) == "":
		return "Contact number is required"
	case !rePhone.MatchString(strings.TrimSpace(s)):
		return "Contact number must be exactly 10 digits"
	}
	return ""
}
