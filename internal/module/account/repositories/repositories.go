package repositories

import (
	"context"
	"database/sql"
	stderrors "errors"

	"railway-reservation/internal/module/account/models/entity"
	"railway-reservation/internal/pkg/database"
	"railway-reservation/internal/pkg/errors"
	"railway-reservation/internal/pkg/log"

	"github.com/jmoiron/sqlx"
)

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	// FindAccount returns an empty Account when the username is unknown.
	FindAccount(ctx context.Context, username string) (entity.Account, error)
	InsertAccount(ctx context.Context, account entity.Account) error
	CountAccounts(ctx context.Context) (int, error)
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// FindAccount implements Repositories.
func (r *repositories) FindAccount(ctx context.Context, username string) (entity.Account, error) {
	query := r.db.Rebind(`SELECT username, password, created_at FROM accounts WHERE username = ?`)
	var account entity.Account
	err := r.db.GetContext(ctx, &account, query, username)
	if stderrors.Is(err, sql.ErrNoRows) {
		return entity.Account{}, nil
	}
	if err != nil {
		return entity.Account{}, errors.Wrap(err, "error find account by username")
	}
	return account, nil
}

// InsertAccount implements Repositories.
func (r *repositories) InsertAccount(ctx context.Context, account entity.Account) error {
	query := r.db.Rebind(`INSERT INTO accounts (username, password, created_at) VALUES (?, ?, ?)`)
	_, err := r.db.ExecContext(ctx, query, account.Username, account.Password, account.CreatedAt)
	if database.IsUniqueViolation(err) {
		return errors.ErrDuplicateUsername
	}
	if err != nil {
		r.log.Error(ctx, "error insert account", err)
		return errors.Wrap(err, "error insert account")
	}
	return nil
}

// CountAccounts implements Repositories.
func (r *repositories) CountAccounts(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM accounts`); err != nil {
		return 0, errors.Wrap(err, "error count accounts")
	}
	return count, nil
}
