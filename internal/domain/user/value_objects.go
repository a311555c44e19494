package user

import (
	"regexp"
	"strings"

	"rvmarket/internal/pkg/errs"
)

var (
	ErrInvalidEmail = errs.New("invalid email address")
	ErrEmptyName    = errs.New("name is required")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if !emailPattern.MatchString(value) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: value}, nil
}

func (e Email) Value() string {
	return e.value
}

type Name struct {
	value string
}

func NewName(value string) (Name, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Name{}, ErrEmptyName
	}
	return Name{value: value}, nil
}

func (n Name) Value() string {
	return n.value
}
