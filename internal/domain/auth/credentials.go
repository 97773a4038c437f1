package auth

import (
	"commission-tracker/internal/domain/user"
	"commission-tracker/internal/pkg/errs"
)

// ErrInvalidCredentials covers malformed input, unknown emails and wrong
// passwords alike.
var ErrInvalidCredentials = errs.Unauthorized(errs.New("invalid email or password"))

// PasswordMatcher compares a stored hash with a plain password.
type PasswordMatcher func(hash, plain string) error

// Credentials is a login attempt: a normalized email and the submitted
// password.
type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(email, password string) (Credentials, error) {
	e, err := user.NewEmail(email)
	if err != nil {
		return Credentials{}, ErrInvalidCredentials
	}
	p, err := user.NewPassword(password)
	if err != nil {
		return Credentials{}, ErrInvalidCredentials
	}
	return Credentials{email: e, password: p}, nil
}

func (c Credentials) Email() user.Email { return c.email }

// Authenticate checks the submitted password against storedHash. An empty
// hash never matches.
func (c Credentials) Authenticate(storedHash string, match PasswordMatcher) error {
	if storedHash == "" || match == nil {
		return ErrInvalidCredentials
	}
	if err := match(storedHash, c.password.Value()); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
