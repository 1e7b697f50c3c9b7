package account

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/edlane/campusdir/core"
)

var (
	ErrNotFound      = errors.New("account not found")
	ErrAccountExists = errors.New("an account with this username or email already exists")
)

type (
	// GetFilter selects a single account; exactly one selector should be set.
	GetFilter struct {
		ID              string
		ProviderID      string
		Username        string
		Email           string
		UsernameOrEmail []string // [username, email]
	}

	Repository interface {
		GetAccount(ctx context.Context, filter GetFilter, exec ...core.DBExecutor) (Account, error)
		CreateAccount(ctx context.Context, acct Account, exec ...core.DBExecutor) (Account, error)
		UpdateAccount(ctx context.Context, acct Account, exec ...core.DBExecutor) (Account, error)
		UpdateOrCreateAccount(ctx context.Context, acct Account, exec ...core.DBExecutor) (Account, error)
	}

	ServiceInterface interface {
		GetByID(ctx context.Context, id string) (Account, error)
		GetByUsernameOrEmail(ctx context.Context, uname string) (Account, error)
		SyncProviderAccount(ctx context.Context, pa ProviderAccount) (Account, error)
		AddAdmin(ctx context.Context, uname, email, pwd string) (Account, error)
		ResetPassword(ctx context.Context, uname, pwd string) error
		SetLastLogin(ctx context.Context, acct Account) (Account, error)
	}

	Service struct {
		repo Repository
	}
)

var _ ServiceInterface = (*Service)(nil)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) GetByID(ctx context.Context, id string) (Account, error) {
	return svc.repo.GetAccount(ctx, GetFilter{ID: id})
}

func (svc *Service) GetByUsernameOrEmail(ctx context.Context, uname string) (Account, error) {
	uname = core.CleanString(uname, true /* lower */)
	return svc.repo.GetAccount(ctx, GetFilter{UsernameOrEmail: []string{uname, uname}})
}

// SyncProviderAccount mirrors a provider identity locally, keyed by the
// provider's user id. Provider accounts never carry a local password.
func (svc *Service) SyncProviderAccount(ctx context.Context, pa ProviderAccount) (Account, error) {
	now := time.Now().UTC()

	acct, err := svc.repo.GetAccount(ctx, GetFilter{ProviderID: pa.ProviderID})
	if err != nil {
		if err != ErrNotFound {
			return Account{}, err
		}
		acct = Account{
			ID:         uuid.New().String(),
			ProviderID: pa.ProviderID,
			CreatedAt:  now,
		}
	}
	acct.Name = pa.Name
	acct.Username = core.CleanString(pa.Username, true /* lower */)
	acct.Email = core.CleanString(pa.Email, true /* lower */)
	acct.SetActive(true)
	acct.UpdatedAt = now
	return svc.repo.UpdateOrCreateAccount(ctx, acct)
}

// AddAdmin updates or creates a local admin account.
func (svc *Service) AddAdmin(ctx context.Context, uname, email, pwd string) (Account, error) {
	uname = core.CleanString(uname, true /* lower */)
	email = core.CleanString(email, true /* lower */)

	if err := ValidatePassword(pwd, uname, email); err != nil {
		return Account{}, err
	}

	now := time.Now().UTC()
	acct, err := svc.repo.GetAccount(ctx, GetFilter{UsernameOrEmail: []string{uname, email}})
	if err != nil {
		if err != ErrNotFound {
			return Account{}, err
		}
		acct = Account{
			ID:        uuid.New().String(),
			Username:  uname,
			Email:     email,
			CreatedAt: now,
		}
	}
	acct.IsAdmin = true
	acct.SetActive(true)
	acct.UpdatedAt = now
	if err = acct.SetPassword(pwd); err != nil {
		return Account{}, err
	}
	return svc.repo.UpdateOrCreateAccount(ctx, acct)
}

// ResetPassword sets a new password on an existing account.
func (svc *Service) ResetPassword(ctx context.Context, uname, pwd string) error {
	acct, err := svc.GetByUsernameOrEmail(ctx, uname)
	if err != nil {
		return err
	}
	if err = ValidatePassword(pwd, acct.Name, acct.Username, acct.Email); err != nil {
		return err
	}
	if err = acct.SetPassword(pwd); err != nil {
		return err
	}
	acct.UpdatedAt = time.Now().UTC()
	_, err = svc.repo.UpdateAccount(ctx, acct)
	return err
}

func (svc *Service) SetLastLogin(ctx context.Context, acct Account) (Account, error) {
	acct.LastLogin = time.Now().UTC()
	return svc.repo.UpdateAccount(ctx, acct)
}
