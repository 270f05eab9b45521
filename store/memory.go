package store

import (
	"context"
	"strings"
	"sync"

	"github.com/vastrastudio/vastra-backend/models"
)

// Memory is an in-process Store used by tests and local development.
type Memory struct {
	mu        sync.RWMutex
	snapshots map[string][]byte      // userID + "/" + key
	users     map[string]models.User // by id
}

func NewMemory() *Memory {
	return &Memory{
		snapshots: make(map[string][]byte),
		users:     make(map[string]models.User),
	}
}

func snapKey(userID, key string) string { return userID + "/" + key }

func (m *Memory) Save(_ context.Context, userID, key string, v any) error {
	raw, err := seal(v)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots[snapKey(userID, key)] = raw
	return nil
}

func (m *Memory) Load(_ context.Context, userID, key string, out any) (bool, error) {
	m.mu.RLock()
	raw, ok := m.snapshots[snapKey(userID, key)]
	m.mu.RUnlock()
	if !ok {
		return false, nil
	}
	return open(raw, out), nil
}

func (m *Memory) Wipe(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range TrackedKeys {
		delete(m.snapshots, snapKey(userID, key))
	}
	return nil
}

func (m *Memory) CreateUser(_ context.Context, u models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return models.ErrDuplicateEmail
		}
	}
	m.users[u.ID] = u
	return nil
}

func (m *Memory) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			copied := u
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *Memory) FindUserByID(_ context.Context, id string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if u, ok := m.users[id]; ok {
		copied := u
		return &copied, nil
	}
	return nil, nil
}

func (m *Memory) UpdateUser(_ context.Context, u models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.ID] = u
	return nil
}

// Corrupt overwrites a stored snapshot with garbage. Test hook for the
// best-effort load contract.
func (m *Memory) Corrupt(userID, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots[snapKey(userID, key)] = []byte("{not json")
}
