package user

const (
	InsertUser = `
		INSERT INTO users (account_id, first_name, last_name, email, password, role, created_date, updated_date, active, email_uuid)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7, TRUE, $8)
		RETURNING id
	`
	SelectUserByID = `
		SELECT id, account_id, first_name, last_name, email, password, role, created_date, updated_date, active, email_uuid
		FROM users
		WHERE id = $1
	`
	// an inactive row may share its email with an active one, the active row wins
	SelectUserByEmail = `
		SELECT id, account_id, first_name, last_name, email, password, role, created_date, updated_date, active, email_uuid
		FROM users
		WHERE email = $1
		ORDER BY active DESC, id DESC
		LIMIT 1
	`
	SelectUserByEmailUUID = `
		SELECT id, account_id, first_name, last_name, email, password, role, created_date, updated_date, active, email_uuid
		FROM users
		WHERE email_uuid = $1
	`
	SelectUsersByAccountID = `
		SELECT id, account_id, first_name, last_name, email, password, role, created_date, updated_date, active, email_uuid
		FROM users
		WHERE account_id = $1
		ORDER BY id
	`
	SelectAdminByAccountID = `
		SELECT id, account_id, first_name, last_name, email, password, role, created_date, updated_date, active, email_uuid
		FROM users
		WHERE account_id = $1 AND role = $2
		ORDER BY id
		LIMIT 1
	`
	SelectUsers = `
		SELECT id, account_id, first_name, last_name, email, password, role, created_date, updated_date, active, email_uuid
		FROM users
		ORDER BY id
	`
	// an empty password keeps the stored hash
	UpdateUserByID = `
		UPDATE users
		SET first_name = $1,
		    last_name = $2,
		    email = $3,
		    password = COALESCE(NULLIF($4, ''), password),
		    active = $5,
		    updated_date = $6
		WHERE id = $7
		RETURNING
		  id, account_id, first_name, last_name, email, password, role, created_date, updated_date, active, email_uuid
	`
	UpdatePasswordByID = `
		UPDATE users
		SET password = $1,
		    updated_date = $2
		WHERE id = $3
	`
	SoftDeleteUserByID = `
		UPDATE users
		SET active = FALSE,
		    updated_date = $1
		WHERE id = $2
	`
	HardDeleteUserByID = `DELETE FROM users WHERE id = $1`
	CountUsersByAccountID = `SELECT COUNT(*) FROM users WHERE account_id = $1`
)
