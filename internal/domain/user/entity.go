package user

import (
	"time"
)

const (
	RoleAdmin  Role = "ADMIN"
	RoleWorker Role = "WORKER"
)

type (
	ID        int64
	AccountID int64
	Role      string
	User      struct {
		ID        ID
		AccountID AccountID
		FirstName string
		LastName  string
		Email     string
		// Password holds the plaintext on input to Create/UpdatePassword
		// and the bcrypt hash everywhere else.
		Password string
		Role     Role

		CreatedDate time.Time
		UpdatedDate time.Time

		Active    bool
		EmailUUID string
	}
	Users []*User
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleWorker
}
