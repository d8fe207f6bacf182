package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/vilinga/supermercado-api/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// testBcryptCost keeps hashing fast in tests.
const testBcryptCost = 4

type stubUserRepo struct {
	mu      sync.Mutex
	users   map[string]*domain.User // keyed by id
	nextID  int
	findErr error
	calls   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[created.ID] = created
	return cloneUser(created), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string, role domain.Role) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	u, ok := r.users[id]
	if !ok || u.Role != role {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) ListByRole(_ context.Context, role domain.Role) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	var out []*domain.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubSaleRepo struct {
	sales     []*domain.Sale
	createErr error
}

func (r *stubSaleRepo) Create(_ context.Context, s *domain.Sale) (string, error) {
	if r.createErr != nil {
		return "", r.createErr
	}
	clone := *s
	clone.ID = fmt.Sprintf("sale-%d", len(r.sales)+1)
	r.sales = append(r.sales, &clone)
	return clone.ID, nil
}

func (r *stubSaleRepo) List(_ context.Context) ([]*domain.Sale, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	return r.sales, nil
}

type stubLimiter struct {
	allowed  bool
	allowErr error
	resets   []string
}

func (l *stubLimiter) Allow(_ context.Context, _ string) (bool, error) {
	return l.allowed, l.allowErr
}

func (l *stubLimiter) Reset(_ context.Context, email string) error {
	l.resets = append(l.resets, email)
	return nil
}

var errStore = errors.New("store unavailable")
