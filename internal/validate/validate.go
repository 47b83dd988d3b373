// Package validate holds the field predicates applied to operator input.
// Each function returns a descriptive error on rejection; re-prompting on
// rejection is the caller's policy, not this package's.
package validate

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)
	loginPattern = regexp.MustCompile(`^[\w.-]+$`)
	digitPattern = regexp.MustCompile(`\D`)
)

// Name accepts display names of at least 3 characters containing no digits.
func Name(name string) error {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) < 3 {
		return errors.New("name must have at least 3 characters")
	}
	for _, r := range name {
		if unicode.IsDigit(r) {
			return errors.New("name must not contain digits")
		}
	}
	return nil
}

// Phone accepts numbers with 8 to 11 digits; punctuation and spacing are
// ignored when counting.
func Phone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errors.New("phone must not be empty")
	}
	digits := digitPattern.ReplaceAllString(phone, "")
	if len(digits) < 8 || len(digits) > 11 {
		return errors.New("phone must have between 8 and 11 digits")
	}
	return nil
}

// Email accepts addresses of the form local@domain.tld.
func Email(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errors.New("e-mail must not be empty")
	}
	if !emailPattern.MatchString(email) {
		return errors.New("e-mail format is invalid")
	}
	return nil
}

// Login accepts identifiers of at least 3 characters limited to letters,
// digits, dot, dash and underscore.
func Login(login string) error {
	login = strings.TrimSpace(login)
	if utf8.RuneCountInString(login) < 3 {
		return errors.New("login must have at least 3 characters")
	}
	if !loginPattern.MatchString(login) {
		return errors.New("login may only use letters, digits, dot, dash or underscore")
	}
	return nil
}

// Password accepts credentials of at least 4 characters.
func Password(password string) error {
	if utf8.RuneCountInString(password) < 4 {
		return errors.New("password must have at least 4 characters")
	}
	return nil
}
