package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"ims-dao/internal/domain/user"
)

func TestValidateNewUser(t *testing.T) {
	valid := user.User{
		AccountID: 1,
		FirstName: "Anne-Marie",
		LastName:  "O'Neil",
		Email:     "anne@example.com",
		Password:  "VeryStrongPassw0rd!",
		Role:      user.RoleWorker,
	}

	tests := []struct {
		name    string
		mutate  func(u *user.User)
		wantErr map[string]string
	}{
		{name: "valid", mutate: func(*user.User) {}},
		{name: "empty role defaults later", mutate: func(u *user.User) { u.Role = "" }},
		{
			name:    "missing email",
			mutate:  func(u *user.User) { u.Email = "  " },
			wantErr: map[string]string{"email": "email is required"},
		},
		{
			name:    "display name is not an address",
			mutate:  func(u *user.User) { u.Email = "Anne <anne@example.com>" },
			wantErr: map[string]string{"email": "invalid email format"},
		},
		{
			name:    "short password",
			mutate:  func(u *user.User) { u.Password = "short" },
			wantErr: map[string]string{"password": "password length must be 8-72 bytes"},
		},
		{
			name:    "password over bcrypt limit",
			mutate:  func(u *user.User) { u.Password = strings.Repeat("p", 73) },
			wantErr: map[string]string{"password": "password length must be 8-72 bytes"},
		},
		{
			name: "bad role and account",
			mutate: func(u *user.User) {
				u.Role = "OWNER"
				u.AccountID = 0
			},
			wantErr: map[string]string{
				"role":       "role must be ADMIN or WORKER",
				"account_id": "account_id must be positive",
			},
		},
		{
			name:    "digits in name",
			mutate:  func(u *user.User) { u.FirstName = "R2D2" },
			wantErr: map[string]string{"first_name": "allowed characters: letters, space, '-', '''"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			u := valid
			tt.mutate(&u)
			assert.Equal(t, tt.wantErr, ValidateNewUser(u))
		})
	}
}
