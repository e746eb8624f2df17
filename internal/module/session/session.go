package session

import (
	"context"
	"sync"

	"railway-reservation/internal/module/account/models/entity"

	"github.com/google/uuid"
)

type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (entity.AccountHandle, error)
}

// Session holds the account of one interactive run. The zero value is
// logged out.
type Session struct {
	current *entity.AccountHandle
}

func (s *Session) Login(ctx context.Context, directory Authenticator, username, password string) (entity.AccountHandle, error) {
	handle, err := directory.Authenticate(ctx, username, password)
	if err != nil {
		return entity.AccountHandle{}, err
	}
	s.current = &handle
	return handle, nil
}

func (s *Session) Logout() {
	s.current = nil
}

func (s *Session) Current() (entity.AccountHandle, bool) {
	if s.current == nil {
		return entity.AccountHandle{}, false
	}
	return *s.current, true
}

// Registry maps bearer tokens to logged in accounts for the HTTP surface.
type Registry struct {
	mutex  sync.RWMutex
	tokens map[string]entity.AccountHandle
}

func NewRegistry() *Registry {
	return &Registry{tokens: make(map[string]entity.AccountHandle)}
}

func (r *Registry) Issue(handle entity.AccountHandle) string {
	token := uuid.NewString()
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.tokens[token] = handle
	return token
}

func (r *Registry) Resolve(token string) (entity.AccountHandle, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	handle, ok := r.tokens[token]
	return handle, ok
}

func (r *Registry) Revoke(token string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	delete(r.tokens, token)
}
