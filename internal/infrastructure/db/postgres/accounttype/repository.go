package accounttype

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"ims-dao/internal/domain/accounttype"
	"ims-dao/internal/domain/storage"
	"ims-dao/internal/infrastructure/db/postgres"
)

const entity = "account type"

var ErrNameAlreadyExists = errors.New("account type name already exists")

type Repository struct {
	db     postgres.Querier
	report postgres.Reporter
}

func NewRepository(db postgres.Querier, logger *zap.Logger, mCounter *prometheus.CounterVec) accounttype.Repository {
	return &Repository{
		db:     db,
		report: postgres.NewReporter(entity, logger, mCounter),
	}
}

func (r *Repository) Create(ctx context.Context, req accounttype.AccountType) (*accounttype.AccountType, error) {
	const op = "create"
	req.Name = strings.TrimSpace(req.Name)
	key := storage.Key("name", req.Name)

	var id int64
	err := r.db.QueryRow(
		ctx,
		InsertAccountType,
		req.Name, req.Price, req.Level,
		req.MaxWarehouses, req.MaxWarehouseDepth, req.MaxUsers, req.MaxSuppliers, req.MaxClients,
	).Scan(&id)
	if err != nil {
		if postgres.IsNoRows(err) {
			return nil, r.report.Fail(op, key, fmt.Errorf("%w: %w", postgres.ErrNoIDReturned, err))
		}
		if postgres.IsPgUniqueViolation(err) {
			return nil, r.report.Fail(op, key, fmt.Errorf("%w: %w", ErrNameAlreadyExists, err))
		}
		return nil, r.report.Fail(op, key, err)
	}
	if id == 0 {
		return nil, r.report.Fail(op, key, postgres.ErrNoIDReturned)
	}

	at := req
	at.ID = accounttype.ID(id)
	at.Active = true

	r.report.OK(op)

	return &at, nil
}

func (r *Repository) FindByID(ctx context.Context, id accounttype.ID) (*accounttype.AccountType, error) {
	return r.findOne(ctx, "get", storage.Key("id", id), SelectAccountTypeByID, int64(id))
}

func (r *Repository) FindByName(ctx context.Context, name string) (*accounttype.AccountType, error) {
	name = strings.TrimSpace(name)
	return r.findOne(ctx, "get by name", storage.Key("name", name), SelectAccountTypeByName, name)
}

func (r *Repository) SelectAllActive(ctx context.Context) (accounttype.AccountTypes, error) {
	return r.findMany(ctx, "list active", "active", SelectActiveAccountTypes)
}

func (r *Repository) SelectAllPossibleToUpgrade(ctx context.Context, typeID accounttype.ID) (accounttype.AccountTypes, error) {
	return r.findMany(ctx, "list upgrades", storage.Key("id", typeID), SelectUpgradesForAccountType, int64(typeID))
}

func (r *Repository) Update(ctx context.Context, req accounttype.AccountType) (*accounttype.AccountType, error) {
	const op = "update"
	key := storage.Key("id", req.ID)

	at, err := scanAccountType(r.db.QueryRow(ctx, UpdateAccountTypeByID,
		strings.TrimSpace(req.Name), req.Price, req.Level,
		req.MaxWarehouses, req.MaxWarehouseDepth, req.MaxUsers, req.MaxSuppliers, req.MaxClients,
		req.Active, int64(req.ID),
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, r.report.Fail(op, key, fmt.Errorf("%w: %w", ErrNameAlreadyExists, err))
		}
		return nil, r.report.Lookup(op, key, err)
	}

	r.report.OK(op)

	return fromDBModel(at), nil
}

// MinLvlType returns the entry tier: the active one with the lowest level.
func (r *Repository) MinLvlType(ctx context.Context) (accounttype.ID, error) {
	const op = "get min level"

	var id int64
	if err := r.db.QueryRow(ctx, SelectMinLevelAccountTypeID).Scan(&id); err != nil {
		return 0, r.report.Lookup(op, "active", err)
	}

	r.report.OK(op)

	return accounttype.ID(id), nil
}

// Delete deactivates the tier; accounts referencing it keep a valid row.
func (r *Repository) Delete(ctx context.Context, id accounttype.ID) error {
	const op = "delete"
	key := storage.Key("id", id)

	tag, err := r.db.Exec(ctx, SoftDeleteAccountTypeByID, int64(id))
	if err != nil {
		return r.report.Fail(op, key, err)
	}
	if tag.RowsAffected() == 0 {
		return r.report.NotFound(op, key, postgres.ErrNoRowsAffected)
	}

	r.report.OK(op)

	return nil
}

func (r *Repository) findOne(ctx context.Context, op, key, query string, args ...any) (*accounttype.AccountType, error) {
	at, err := scanAccountType(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, r.report.Lookup(op, key, err)
	}

	r.report.OK(op)

	return fromDBModel(at), nil
}

func (r *Repository) findMany(ctx context.Context, op, key, query string, args ...any) (accounttype.AccountTypes, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, r.report.Fail(op, key, err)
	}
	defer rows.Close()

	var ats AccountTypes
	for rows.Next() {
		at, err := scanAccountType(rows)
		if err != nil {
			return nil, r.report.Fail(op, key, err)
		}

		ats = append(ats, at)
	}
	if err = rows.Err(); err != nil {
		return nil, r.report.Fail(op, key, err)
	}

	r.report.OK(op)

	return fromDBModels(ats), nil
}
