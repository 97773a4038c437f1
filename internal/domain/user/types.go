package user

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"commission-tracker/internal/pkg/errs"
	"commission-tracker/internal/pkg/password"
)

var (
	ErrInvalidEmail    = errs.Validation(errs.New("invalid email format"))
	ErrInvalidRole     = errs.Validation(errs.New("invalid role"))
	ErrInvalidName     = errs.Validation(errs.New("name must be 1-100 characters"))
	ErrPasswordTooWeak = errs.Validation(errs.New("password must be 8 characters to 72 bytes long"))
)

type Role string

const (
	RoleSales Role = "sales"
	RoleAdmin Role = "admin"
)

// privilege orders roles; unknown roles rank below every known one.
var privilege = map[Role]int{
	RoleSales: 1,
	RoleAdmin: 2,
}

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	_, ok := privilege[r]
	return ok
}

func (r Role) AtLeast(required Role) bool {
	return privilege[r] >= privilege[required]
}

const maxNameRunes = 100

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email is stored lower case so lookups ignore case.
type Email struct{ value string }

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailPattern.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string { return e.value }

type Name struct{ value string }

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if n := utf8.RuneCountInString(s); n == 0 || n > maxNameRunes {
		return Name{}, ErrInvalidName
	}
	return Name{value: s}, nil
}

func (n Name) Value() string { return n.value }

// Password is a plain text password that bcrypt can hash without truncation.
type Password struct{ value string }

func NewPassword(s string) (Password, error) {
	if err := password.Validate(s); err != nil {
		return Password{}, errs.Mark(err, ErrPasswordTooWeak)
	}
	return Password{value: s}, nil
}

func (p Password) Value() string { return p.value }
