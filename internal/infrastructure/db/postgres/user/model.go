package user

import (
	"time"
)

type (
	User struct {
		ID        int64
		AccountID int64
		FirstName string
		LastName  string
		Email     string
		Password  string
		Role      string

		CreatedDate time.Time
		UpdatedDate time.Time

		Active    bool
		EmailUUID string
	}
	Users []*User
)
