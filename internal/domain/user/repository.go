package user

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, req User) (*User, error)
	FindByID(ctx context.Context, id ID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByEmailUUID(ctx context.Context, emailUUID string) (*User, error)
	FindUsersByAccountID(ctx context.Context, accountID AccountID) (Users, error)
	FindAdminByAccountID(ctx context.Context, accountID AccountID) (*User, error)
	FindAll(ctx context.Context) (Users, error)
	Update(ctx context.Context, req User) (*User, error)
	UpdatePassword(ctx context.Context, id ID, newPassword string) error
	SoftDelete(ctx context.Context, id ID) error
	HardDelete(ctx context.Context, id ID) error
	CountOfUsers(ctx context.Context, accountID AccountID) (int, error)
}
