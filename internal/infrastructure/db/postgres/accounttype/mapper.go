package accounttype

import (
	domain "ims-dao/internal/domain/accounttype"
	"ims-dao/internal/infrastructure/db/postgres"
)

func scanAccountType(row postgres.RowScanner) (*AccountType, error) {
	at := new(AccountType)
	if err := row.Scan(
		&at.ID,
		&at.Name,
		&at.Price,
		&at.Level,

		&at.MaxWarehouses,
		&at.MaxWarehouseDepth,
		&at.MaxUsers,
		&at.MaxSuppliers,
		&at.MaxClients,

		&at.Active,
	); err != nil {
		return nil, err
	}

	return at, nil
}

func fromDBModel(model *AccountType) *domain.AccountType {
	return &domain.AccountType{
		ID:    domain.ID(model.ID),
		Name:  model.Name,
		Price: model.Price,
		Level: model.Level,

		MaxWarehouses:     model.MaxWarehouses,
		MaxWarehouseDepth: model.MaxWarehouseDepth,
		MaxUsers:          model.MaxUsers,
		MaxSuppliers:      model.MaxSuppliers,
		MaxClients:        model.MaxClients,

		Active: model.Active,
	}
}

func fromDBModels(models AccountTypes) domain.AccountTypes {
	ats := make(domain.AccountTypes, len(models))
	for idx, at := range models {
		ats[idx] = fromDBModel(at)
	}

	return ats
}
