package internal

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"ims-dao/internal/domain/accounttype"
	"ims-dao/internal/domain/storage"
	"ims-dao/internal/domain/user"
)

// DefaultAccountTypes are the tiers every installation starts with.
var DefaultAccountTypes = []accounttype.AccountType{
	{
		Name: "Basic", Price: decimal.Zero, Level: 1,
		MaxWarehouses: 1, MaxWarehouseDepth: 2, MaxUsers: 3, MaxSuppliers: 10, MaxClients: 10,
	},
	{
		Name: "Pro", Price: decimal.RequireFromString("49.99"), Level: 2,
		MaxWarehouses: 10, MaxWarehouseDepth: 5, MaxUsers: 50, MaxSuppliers: 500, MaxClients: 1000,
	},
	{
		Name: "Enterprise", Price: decimal.RequireFromString("199.00"), Level: 3,
		MaxWarehouses: 100, MaxWarehouseDepth: 10, MaxUsers: 1000, MaxSuppliers: 10000, MaxClients: 100000,
	},
}

// SeedAccountTypes creates the tiers missing by name and leaves existing ones untouched.
// It returns how many tiers were created.
func SeedAccountTypes(ctx context.Context, logger *zap.Logger, repo accounttype.Repository, tiers []accounttype.AccountType) (int, error) {
	created := 0
	for _, tier := range tiers {
		_, err := repo.FindByName(ctx, tier.Name)
		if err == nil {
			logger.Info("account type already present", zap.String("name", tier.Name))
			continue
		}
		if !storage.IsNotFound(err) {
			return created, fmt.Errorf("seed %s: %w", tier.Name, err)
		}

		at, err := repo.Create(ctx, tier)
		if err != nil {
			return created, fmt.Errorf("seed %s: %w", tier.Name, err)
		}
		logger.Info("account type created", zap.String("name", at.Name), zap.Int64("id", int64(at.ID)))
		created++
	}

	return created, nil
}

// Seed creates the default tiers in one transaction.
func (a *App) Seed(ctx context.Context) (int, error) {
	var created int
	err := a.InTx(ctx, func(_ user.Repository, accountTypes accounttype.Repository) error {
		var err error
		created, err = SeedAccountTypes(ctx, a.logger, accountTypes, DefaultAccountTypes)
		return err
	})
	if err != nil {
		return 0, err
	}

	return created, nil
}
