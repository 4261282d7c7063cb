package model

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
)

var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	passwordPattern = regexp.MustCompile(`^\S+$`)
)

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required,
			validation.Length(1, 32),
			validation.Match(usernamePattern).Error("must contain only letters, digits and underscores"),
		),
		validation.Field(&r.Password,
			validation.Required,
			validation.Length(6, 64),
			validation.Match(passwordPattern).Error("must not contain whitespace"),
		),
	)
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(1, 32)),
		validation.Field(&r.Password, validation.Required, validation.Length(1, 64)),
	)
}
