package accounttype

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, req AccountType) (*AccountType, error)
	FindByID(ctx context.Context, id ID) (*AccountType, error)
	FindByName(ctx context.Context, name string) (*AccountType, error)
	SelectAllActive(ctx context.Context) (AccountTypes, error)
	SelectAllPossibleToUpgrade(ctx context.Context, typeID ID) (AccountTypes, error)
	Update(ctx context.Context, req AccountType) (*AccountType, error)
	MinLvlType(ctx context.Context) (ID, error)
	Delete(ctx context.Context, id ID) error
}
