package usecases

import (
	"context"
	"time"

	"railway-reservation/internal/module/account/models/entity"
	"railway-reservation/internal/module/account/models/request"
	"railway-reservation/internal/module/account/repositories"
	"railway-reservation/internal/pkg/errors"
	"railway-reservation/internal/pkg/log"
)

const minPasswordLength = 6

type usecase struct {
	repo repositories.Repositories
	log  log.Logger
}

type Usecase interface {
	Register(ctx context.Context, payload *request.Register) error
	Authenticate(ctx context.Context, username, password string) (entity.AccountHandle, error)
	SeedAccounts(ctx context.Context, accounts []entity.Account) error
}

func New(repo repositories.Repositories, log log.Logger) Usecase {
	return &usecase{
		repo: repo,
		log:  log,
	}
}

// Register checks, in order, that the username is free, that both passwords
// match and that the password is long enough.
func (u *usecase) Register(ctx context.Context, payload *request.Register) error {
	if payload.Username == "" {
		return errors.BadRequest("username is required")
	}

	existing, err := u.repo.FindAccount(ctx, payload.Username)
	if err != nil {
		return err
	}
	if existing.Username != "" {
		return errors.ErrDuplicateUsername
	}

	if payload.Password != payload.ConfirmPassword {
		return errors.ErrPasswordMismatch
	}
	if len(payload.Password) < minPasswordLength {
		return errors.ErrPasswordTooShort
	}

	account := entity.Account{
		Username:  payload.Username,
		Password:  payload.Password,
		CreatedAt: time.Now().UTC(),
	}
	if err := u.repo.InsertAccount(ctx, account); err != nil {
		return err
	}

	u.log.Info(ctx, "account registered", account.Handle())
	return nil
}

// Authenticate compares the stored password verbatim.
func (u *usecase) Authenticate(ctx context.Context, username, password string) (entity.AccountHandle, error) {
	account, err := u.repo.FindAccount(ctx, username)
	if err != nil {
		return entity.AccountHandle{}, err
	}
	if account.Username == "" || account.Password != password {
		return entity.AccountHandle{}, errors.ErrInvalidCredentials
	}
	return account.Handle(), nil
}

// SeedAccounts inserts the accounts when the directory is still empty.
func (u *usecase) SeedAccounts(ctx context.Context, accounts []entity.Account) error {
	count, err := u.repo.CountAccounts(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	for _, account := range accounts {
		account.CreatedAt = now
		if err := u.repo.InsertAccount(ctx, account); err != nil {
			return err
		}
	}
	return nil
}
