package repositories

import (
	"context"

	"railway-reservation/internal/module/account/models/entity"
	"railway-reservation/internal/pkg/memstore"
)

type memoryRepositories struct {
	store *memstore.Store
}

func NewMemory(store *memstore.Store) Repositories {
	return &memoryRepositories{store: store}
}

func (r *memoryRepositories) FindAccount(ctx context.Context, username string) (entity.Account, error) {
	account, _ := r.store.FindAccount(username)
	return account, nil
}

func (r *memoryRepositories) InsertAccount(ctx context.Context, account entity.Account) error {
	return r.store.InsertAccount(account)
}

func (r *memoryRepositories) CountAccounts(ctx context.Context) (int, error) {
	return r.store.CountAccounts(), nil
}
