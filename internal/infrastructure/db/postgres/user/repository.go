package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"ims-dao/internal/domain/storage"
	"ims-dao/internal/domain/user"
	"ims-dao/internal/infrastructure/db/postgres"
)

const entity = "user"

var ErrEmailAlreadyExists = errors.New("email already exists")

type PasswordHasher interface {
	Hash(plain string) (string, error)
	IsHash(s string) bool
}

type Repository struct {
	db      postgres.Querier
	hasher  PasswordHasher
	report  postgres.Reporter
	now     func() time.Time
	newUUID func() string
}

func NewRepository(
	db postgres.Querier,
	hasher PasswordHasher,
	logger *zap.Logger,
	mCounter *prometheus.CounterVec,
) user.Repository {
	return &Repository{
		db:      db,
		hasher:  hasher,
		report:  postgres.NewReporter(entity, logger, mCounter),
		now:     time.Now,
		newUUID: uuid.NewString,
	}
}

func (r *Repository) Create(ctx context.Context, req user.User) (*user.User, error) {
	const op = "create"
	email := normalizeEmail(req.Email)
	key := storage.Key("email", email)

	hash, err := r.hasher.Hash(req.Password)
	if err != nil {
		return nil, r.report.Fail(op, key, fmt.Errorf("hash password: %w", err))
	}
	if req.Role == "" {
		req.Role = user.RoleWorker
	}

	ts := r.timestamp()
	emailUUID := r.newUUID()

	var id int64
	err = r.db.QueryRow(
		ctx,
		InsertUser,
		int64(req.AccountID), req.FirstName, req.LastName, email, hash, string(req.Role), ts, emailUUID,
	).Scan(&id)
	if err != nil {
		if postgres.IsNoRows(err) {
			return nil, r.report.Fail(op, key, fmt.Errorf("%w: %w", postgres.ErrNoIDReturned, err))
		}
		if postgres.IsPgUniqueViolation(err) {
			return nil, r.report.Fail(op, key, fmt.Errorf("%w: %w", ErrEmailAlreadyExists, err))
		}
		return nil, r.report.Fail(op, key, err)
	}
	if id == 0 {
		return nil, r.report.Fail(op, key, postgres.ErrNoIDReturned)
	}

	u := req
	u.ID = user.ID(id)
	u.Email = email
	u.Password = hash
	u.CreatedDate = ts
	u.UpdatedDate = ts
	u.Active = true
	u.EmailUUID = emailUUID

	r.report.OK(op)

	return &u, nil
}

func (r *Repository) FindByID(ctx context.Context, id user.ID) (*user.User, error) {
	return r.findOne(ctx, "get", storage.Key("id", id), SelectUserByID, int64(id))
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	email = normalizeEmail(email)
	return r.findOne(ctx, "get by email", storage.Key("email", email), SelectUserByEmail, email)
}

func (r *Repository) FindByEmailUUID(ctx context.Context, emailUUID string) (*user.User, error) {
	const op = "get by email uuid"
	key := storage.Key("email_uuid", emailUUID)

	// no row can carry a malformed token; accepted forms are sent in canonical text
	id, err := uuid.Parse(emailUUID)
	if err != nil {
		return nil, r.report.NotFound(op, key, err)
	}

	return r.findOne(ctx, op, key, SelectUserByEmailUUID, id.String())
}

func (r *Repository) FindAdminByAccountID(ctx context.Context, accountID user.AccountID) (*user.User, error) {
	return r.findOne(ctx, "get admin", storage.Key("account_id", accountID),
		SelectAdminByAccountID, int64(accountID), string(user.RoleAdmin))
}

func (r *Repository) FindUsersByAccountID(ctx context.Context, accountID user.AccountID) (user.Users, error) {
	return r.findMany(ctx, "list by account", storage.Key("account_id", accountID), SelectUsersByAccountID, int64(accountID))
}

func (r *Repository) FindAll(ctx context.Context) (user.Users, error) {
	return r.findMany(ctx, "list", "*", SelectUsers)
}

func (r *Repository) Update(ctx context.Context, req user.User) (*user.User, error) {
	const op = "update"
	key := storage.Key("id", req.ID)

	pass := req.Password
	if pass != "" && !r.hasher.IsHash(pass) {
		hash, err := r.hasher.Hash(pass)
		if err != nil {
			return nil, r.report.Fail(op, key, fmt.Errorf("hash password: %w", err))
		}
		pass = hash
	}

	u, err := scanUser(r.db.QueryRow(ctx, UpdateUserByID,
		req.FirstName, req.LastName, normalizeEmail(req.Email), pass, req.Active, r.timestamp(), int64(req.ID),
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, r.report.Fail(op, key, fmt.Errorf("%w: %w", ErrEmailAlreadyExists, err))
		}
		return nil, r.report.Lookup(op, key, err)
	}

	r.report.OK(op)

	return fromDBModel(u), nil
}

func (r *Repository) UpdatePassword(ctx context.Context, id user.ID, newPassword string) error {
	const op = "update password"
	key := storage.Key("id", id)

	hash, err := r.hasher.Hash(newPassword)
	if err != nil {
		return r.report.Fail(op, key, fmt.Errorf("hash password: %w", err))
	}

	return r.execOne(ctx, op, key, UpdatePasswordByID, hash, r.timestamp(), int64(id))
}

func (r *Repository) SoftDelete(ctx context.Context, id user.ID) error {
	return r.execOne(ctx, "soft delete", storage.Key("id", id), SoftDeleteUserByID, r.timestamp(), int64(id))
}

func (r *Repository) HardDelete(ctx context.Context, id user.ID) error {
	return r.execOne(ctx, "hard delete", storage.Key("id", id), HardDeleteUserByID, int64(id))
}

func (r *Repository) CountOfUsers(ctx context.Context, accountID user.AccountID) (int, error) {
	const op = "count"

	var n int64
	if err := r.db.QueryRow(ctx, CountUsersByAccountID, int64(accountID)).Scan(&n); err != nil {
		return 0, r.report.Fail(op, storage.Key("account_id", accountID), err)
	}

	r.report.OK(op)

	return int(n), nil
}

func (r *Repository) findOne(ctx context.Context, op, key, query string, args ...any) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, r.report.Lookup(op, key, err)
	}

	r.report.OK(op)

	return fromDBModel(u), nil
}

func (r *Repository) findMany(ctx context.Context, op, key, query string, args ...any) (user.Users, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, r.report.Fail(op, key, err)
	}
	defer rows.Close()

	var us Users
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, r.report.Fail(op, key, err)
		}

		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, r.report.Fail(op, key, err)
	}

	r.report.OK(op)

	return fromDBModels(us), nil
}

// execOne runs a keyed mutation that must affect exactly one row.
func (r *Repository) execOne(ctx context.Context, op, key, query string, args ...any) error {
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return r.report.Fail(op, key, err)
	}
	if tag.RowsAffected() == 0 {
		return r.report.NotFound(op, key, postgres.ErrNoRowsAffected)
	}

	r.report.OK(op)

	return nil
}

// timestamp matches the microsecond precision of timestamptz so returned
// entities compare equal to what a later read yields.
func (r *Repository) timestamp() time.Time {
	return r.now().UTC().Truncate(time.Microsecond)
}

func normalizeEmail(email string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(email)))
}
