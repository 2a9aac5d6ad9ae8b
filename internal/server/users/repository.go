package users

import (
	"context"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/authgate/internal/common"
)

// Repository is the read surface of the user store.
type Repository interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
}

// InMemoryRepository is the mock user store the server ships with.
// Safe for concurrent use.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{users: make(map[string]*User)}
}

// Add inserts or replaces a user.
func (r *InMemoryRepository) Add(user *User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.Username] = user
}

// GetByUsername returns the user or common.ErrorNotFound.
func (r *InMemoryRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u := *user
	return &u, nil
}

// SeedMockUsers populates r with the development accounts. In a real
// deployment this would be a proper database; see the package comment.
func SeedMockUsers(r *InMemoryRepository) error {
	seed := []struct {
		username string
		email    string
		fullName string
		password string
	}{
		{username: "johndoe", email: "johndoe@example.com", fullName: "John Doe", password: "password123"},
		{username: "alice", email: "alice@example.com", fullName: "Alice Smith", password: "secret456"},
	}

	for _, s := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		r.Add(&User{
			Username:       s.username,
			Email:          s.email,
			FullName:       s.fullName,
			HashedPassword: string(hash),
		})
	}
	return nil
}
