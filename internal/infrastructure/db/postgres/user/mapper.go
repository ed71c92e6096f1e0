package user

import (
	domain "ims-dao/internal/domain/user"
	"ims-dao/internal/infrastructure/db/postgres"
)

// scanUser reads one row selected with the users column list in queries.go.
func scanUser(row postgres.RowScanner) (*User, error) {
	u := new(User)
	if err := row.Scan(
		&u.ID,
		&u.AccountID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.Password,
		&u.Role,

		&u.CreatedDate,
		&u.UpdatedDate,

		&u.Active,
		&u.EmailUUID,
	); err != nil {
		return nil, err
	}

	return u, nil
}

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		ID:        domain.ID(model.ID),
		AccountID: domain.AccountID(model.AccountID),
		FirstName: model.FirstName,
		LastName:  model.LastName,
		Email:     model.Email,
		Password:  model.Password,
		Role:      domain.Role(model.Role),

		CreatedDate: model.CreatedDate,
		UpdatedDate: model.UpdatedDate,

		Active:    model.Active,
		EmailUUID: model.EmailUUID,
	}

	return u
}

func fromDBModels(models Users) domain.Users {
	us := make(domain.Users, len(models))
	for idx, u := range models {
		us[idx] = fromDBModel(u)
	}

	return us
}
