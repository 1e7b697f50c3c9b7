package dummydb

import (
	"context"

	"github.com/edlane/campusdir/core"
	"github.com/edlane/campusdir/core/account"
)

type accountRepository struct {
	db *accountTable
}

var _ account.Repository = (*accountRepository)(nil) // interface compliance check

func NewAccountRepository(db *DB) account.Repository {
	return &accountRepository{db: db.account}
}

func (repo *accountRepository) query() []account.Account {
	accts := make([]account.Account, 0, len(repo.db.table))
	for _, acct := range repo.db.table {
		accts = append(accts, *acct)
	}
	return accts
}

func (repo *accountRepository) GetAccount(ctx context.Context, filter account.GetFilter, exec ...core.DBExecutor) (account.Account, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if filter.ID != "" {
		if acct, ok := repo.db.table[filter.ID]; ok {
			return *acct, nil
		}
		return account.Account{}, account.ErrNotFound
	}

	for _, acct := range repo.query() {
		switch {
		case filter.ProviderID != "" && acct.ProviderID == filter.ProviderID:
			return acct, nil
		case filter.Username != "" && acct.Username == filter.Username:
			return acct, nil
		case filter.Email != "" && acct.Email == filter.Email:
			return acct, nil
		case len(filter.UsernameOrEmail) == 2 &&
			(acct.Username == filter.UsernameOrEmail[0] || acct.Email == filter.UsernameOrEmail[1]):
			return acct, nil
		}
	}
	return account.Account{}, account.ErrNotFound
}

func (repo *accountRepository) CreateAccount(ctx context.Context, acct account.Account, exec ...core.DBExecutor) (account.Account, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	for _, existing := range repo.query() {
		if existing.Username == acct.Username || existing.Email == acct.Email {
			return account.Account{}, account.ErrAccountExists
		}
	}
	repo.db.table[acct.ID] = &acct
	return acct, nil
}

func (repo *accountRepository) UpdateAccount(ctx context.Context, acct account.Account, exec ...core.DBExecutor) (account.Account, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[acct.ID]; !ok {
		return account.Account{}, account.ErrNotFound
	}
	repo.db.table[acct.ID] = &acct
	return acct, nil
}

func (repo *accountRepository) UpdateOrCreateAccount(ctx context.Context, acct account.Account, exec ...core.DBExecutor) (account.Account, error) {
	if _, err := repo.UpdateAccount(ctx, acct); err == nil {
		return acct, nil
	}
	return repo.CreateAccount(ctx, acct)
}
