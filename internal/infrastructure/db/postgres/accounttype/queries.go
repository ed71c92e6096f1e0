package accounttype

const (
	InsertAccountType = `
		INSERT INTO account_types (name, price, level, max_warehouses, max_warehouse_depth, max_users, max_suppliers, max_clients, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, TRUE)
		RETURNING id
	`
	SelectAccountTypeByID = `
		SELECT id, name, price, level, max_warehouses, max_warehouse_depth, max_users, max_suppliers, max_clients, active
		FROM account_types
		WHERE id = $1
	`
	SelectAccountTypeByName = `
		SELECT id, name, price, level, max_warehouses, max_warehouse_depth, max_users, max_suppliers, max_clients, active
		FROM account_types
		WHERE name = $1
	`
	SelectActiveAccountTypes = `
		SELECT id, name, price, level, max_warehouses, max_warehouse_depth, max_users, max_suppliers, max_clients, active
		FROM account_types
		WHERE active
		ORDER BY level, id
	`
	// an unknown reference makes the subquery NULL, so nothing compares greater
	SelectUpgradesForAccountType = `
		SELECT id, name, price, level, max_warehouses, max_warehouse_depth, max_users, max_suppliers, max_clients, active
		FROM account_types
		WHERE active
		  AND level > (SELECT level FROM account_types WHERE id = $1)
		ORDER BY level, id
	`
	UpdateAccountTypeByID = `
		UPDATE account_types
		SET name = $1,
		    price = $2,
		    level = $3,
		    max_warehouses = $4,
		    max_warehouse_depth = $5,
		    max_users = $6,
		    max_suppliers = $7,
		    max_clients = $8,
		    active = $9
		WHERE id = $10
		RETURNING
		  id, name, price, level, max_warehouses, max_warehouse_depth, max_users, max_suppliers, max_clients, active
	`
	SelectMinLevelAccountTypeID = `
		SELECT id
		FROM account_types
		WHERE active
		ORDER BY level, id
		LIMIT 1
	`
	SoftDeleteAccountTypeByID = `UPDATE account_types SET active = FALSE WHERE id = $1`
)
