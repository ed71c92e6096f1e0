package accounttype

import (
	"github.com/shopspring/decimal"
)

type (
	AccountType struct {
		ID    int64
		Name  string
		Price decimal.Decimal
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
