package validator

import (
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"

	"ims-dao/internal/domain/user"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe, counted in bytes
	maxNameLen     = 64
)

// ValidateNewUser checks a registration before it reaches the repository.
// It returns nil when the user is acceptable, otherwise a message per field.
func ValidateNewUser(u user.User) map[string]string {
	errs := make(map[string]string)

	// email (required + format)
	email := strings.TrimSpace(u.Email)
	if email == "" {
		errs["email"] = "email is required"
	} else if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		errs["email"] = "invalid email format"
	}

	// names are optional, but bounded
	if msg := validateName(u.FirstName); msg != "" {
		errs["first_name"] = msg
	}
	if msg := validateName(u.LastName); msg != "" {
		errs["last_name"] = msg
	}

	// password (required + length)
	if strings.TrimSpace(u.Password) == "" {
		errs["password"] = "password is required"
	} else if l := len(u.Password); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be 8-72 bytes"
	}

	if u.Role != "" && !u.Role.Valid() {
		errs["role"] = "role must be ADMIN or WORKER"
	}
	if u.AccountID <= 0 {
		errs["account_id"] = "account_id must be positive"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func validateName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if utf8.RuneCountInString(s) > maxNameLen {
		return "length must be at most 64 characters"
	}
	for _, r := range s {
		if unicode.IsLetter(r) || r == ' ' || r == '-' || r == '\'' {
			continue
		}
		return "allowed characters: letters, space, '-', '''"
	}
	return ""
}
