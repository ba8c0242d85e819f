package repository

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/userhub/user-service/internal/users"
)

// MemoryRepository is an in-memory Repository used for unit tests and local
// development without a MongoDB instance. List returns records in insertion
// order.
type MemoryRepository struct {
	mu    sync.RWMutex
	store map[primitive.ObjectID]*users.User
	order []primitive.ObjectID
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{store: make(map[primitive.ObjectID]*users.User)}
}

func (m *MemoryRepository) List(ctx context.Context) ([]users.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]users.User, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, *m.store[id])
	}
	return out, nil
}

func (m *MemoryRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*users.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.store[id]
	if !ok {
		return nil, users.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *MemoryRepository) Insert(ctx context.Context, u *users.User) (*users.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	u.ID = primitive.NewObjectID()
	u.CreatedAt = now
	u.UpdatedAt = now
	cp := *u
	m.store[u.ID] = &cp
	m.order = append(m.order, u.ID)
	return u, nil
}

func (m *MemoryRepository) Update(ctx context.Context, id primitive.ObjectID, p Patch) (*users.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.store[id]
	if !ok {
		return nil, users.ErrNotFound
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
	if p.PhoneNumber != nil {
		u.PhoneNumber = *p.PhoneNumber
	}
	if p.CompanyName != nil {
		u.CompanyName = *p.CompanyName
	}
	u.UpdatedAt = time.Now().UTC()
	cp := *u
	return &cp, nil
}

func (m *MemoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return users.ErrNotFound
	}
	delete(m.store, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}
