package boiledrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/friendsofgo/errors"
	"github.com/lib/pq"
	"github.com/volatiletech/null/v8"
	"github.com/volatiletech/sqlboiler/v4/queries"

	"github.com/edlane/campusdir/core"
	"github.com/edlane/campusdir/core/account"
)

type accountRepository struct {
	exec core.DBExecutor
}

var _ account.Repository = (*accountRepository)(nil) // interface compliance check

func NewAccountRepository(exec core.DBExecutor) *accountRepository {
	return &accountRepository{exec: exec}
}

func (repo accountRepository) getExec(svcExec []core.DBExecutor) core.DBExecutor {
	if len(svcExec) > 0 {
		return svcExec[0]
	}
	return repo.exec
}

// trapNoRowsErr maps psql "no rows" err to account.ErrNotFound
func (repo accountRepository) trapNoRowsErr(err error, msg string) error {
	if errors.Cause(err) == sql.ErrNoRows {
		return account.ErrNotFound
	}
	return errors.Wrap(err, msg)
}

// trapUniqueErr maps psql unique constraint violations to account.ErrAccountExists
func (repo accountRepository) trapUniqueErr(err error, msg string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return account.ErrAccountExists
	}
	return errors.Wrap(err, msg)
}

type accountRow struct {
	ID           string      `boil:"id"`
	ProviderID   null.String `boil:"provider_id"`
	Name         string      `boil:"name"`
	Username     string      `boil:"username"`
	Email        string      `boil:"email"`
	IsActive     null.Bool   `boil:"is_active"`
	IsAdmin      bool        `boil:"is_admin"`
	PasswordHash null.Bytes  `boil:"password_hash"`
	CreatedAt    time.Time   `boil:"created_at"`
	UpdatedAt    time.Time   `boil:"updated_at"`
	LastLogin    null.Time   `boil:"last_login"`
}

const accountSelect = `SELECT id, provider_id, name, username, email, is_active, is_admin, password_hash, created_at, updated_at, last_login FROM account`

func (row accountRow) toDomain() account.Account {
	acct := account.Account{
		ID:           row.ID,
		ProviderID:   row.ProviderID.String,
		Name:         row.Name,
		Username:     row.Username,
		Email:        row.Email,
		IsAdmin:      row.IsAdmin,
		PasswordHash: row.PasswordHash.Bytes,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
		LastLogin:    row.LastLogin.Time,
	}
	if row.IsActive.Valid {
		acct.SetActive(row.IsActive.Bool)
	}
	return acct
}

func toRow(acct account.Account) accountRow {
	row := accountRow{
		ID:           acct.ID,
		ProviderID:   null.NewString(acct.ProviderID, acct.ProviderID != ""),
		Name:         acct.Name,
		Username:     acct.Username,
		Email:        acct.Email,
		IsAdmin:      acct.IsAdmin,
		PasswordHash: null.BytesFrom(acct.PasswordHash),
		CreatedAt:    acct.CreatedAt,
		UpdatedAt:    acct.UpdatedAt,
		LastLogin:    null.NewTime(acct.LastLogin, !acct.LastLogin.IsZero()),
	}
	if acct.IsActive != nil {
		row.IsActive = null.BoolFrom(*acct.IsActive)
	}
	return row
}

func (repo accountRepository) GetAccount(ctx context.Context, filter account.GetFilter, exec ...core.DBExecutor) (account.Account, error) {
	var (
		where string
		args  []interface{}
	)
	switch {
	case filter.ID != "":
		where, args = "id = $1", []interface{}{filter.ID}
	case filter.ProviderID != "":
		where, args = "provider_id = $1", []interface{}{filter.ProviderID}
	case filter.Username != "":
		where, args = "username = $1", []interface{}{filter.Username}
	case filter.Email != "":
		where, args = "email = $1", []interface{}{filter.Email}
	case len(filter.UsernameOrEmail) == 2:
		where = "(username = $1 OR email = $2)"
		args = []interface{}{filter.UsernameOrEmail[0], filter.UsernameOrEmail[1]}
	default:
		return account.Account{}, errors.New("empty account filter")
	}

	var row accountRow
	err := queries.Raw(accountSelect+" WHERE "+where, args...).Bind(ctx, repo.getExec(exec), &row)
	if err != nil {
		return account.Account{}, repo.trapNoRowsErr(err, "finding account")
	}
	return row.toDomain(), nil
}

func (repo accountRepository) CreateAccount(ctx context.Context, acct account.Account, exec ...core.DBExecutor) (account.Account, error) {
	row := toRow(acct)
	_, err := repo.getExec(exec).ExecContext(ctx,
		`INSERT INTO account (id, provider_id, name, username, email, is_active, is_admin, password_hash, created_at, updated_at, last_login)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		row.ID, row.ProviderID, row.Name, row.Username, row.Email, row.IsActive,
		row.IsAdmin, row.PasswordHash, row.CreatedAt, row.UpdatedAt, row.LastLogin,
	)
	if err != nil {
		return account.Account{}, repo.trapUniqueErr(err, "creating account")
	}
	return acct, nil
}

func (repo accountRepository) UpdateAccount(ctx context.Context, acct account.Account, exec ...core.DBExecutor) (account.Account, error) {
	row := toRow(acct)
	res, err := repo.getExec(exec).ExecContext(ctx,
		`UPDATE account SET provider_id = $2, name = $3, username = $4, email = $5, is_active = $6,
		 is_admin = $7, password_hash = $8, updated_at = $9, last_login = $10 WHERE id = $1`,
		row.ID, row.ProviderID, row.Name, row.Username, row.Email, row.IsActive,
		row.IsAdmin, row.PasswordHash, row.UpdatedAt, row.LastLogin,
	)
	if err != nil {
		return account.Account{}, repo.trapUniqueErr(err, "updating account")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return account.Account{}, account.ErrNotFound
	}
	return acct, nil
}

func (repo accountRepository) UpdateOrCreateAccount(ctx context.Context, acct account.Account, exec ...core.DBExecutor) (account.Account, error) {
	updated, err := repo.UpdateAccount(ctx, acct, exec...)
	if err == nil {
		return updated, nil
	}
	if err != account.ErrNotFound {
		return account.Account{}, err
	}
	return repo.CreateAccount(ctx, acct, exec...)
}
