package accounttype

import (
	"github.com/shopspring/decimal"
)

type (
	ID          int64
	AccountType struct {
		ID    ID
		Name  string
		Price decimal.Decimal
		// Level orders tiers: a tier with a greater level is an upgrade.
		Level int

		MaxWarehouses     int
		MaxWarehouseDepth int
		MaxUsers          int
		MaxSuppliers      int
		MaxClients        int

		Active bool
	}
	AccountTypes []*AccountType
)
