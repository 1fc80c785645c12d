package users

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps users in process memory. Records are copied on the
// way in and out, so callers never share state with the store.
type MemoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]*models.User
	byEmail map[string]string
	now     func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:    make(map[string]*models.User),
		byEmail: make(map[string]string),
		now:     time.Now,
	}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return nil, common.ErrDuplicateEmail
	}

	u := user.Clone()
	u.ID = uuid.NewString()
	u.CreatedAt = r.now().UTC()

	r.byID[u.ID] = u
	r.byEmail[u.Email] = u.ID

	return u.Clone(), nil
}

func (r *MemoryRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	return r.byID[id].Clone(), nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return u.Clone(), nil
}

func (r *MemoryRepository) Save(ctx context.Context, user *models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.byID[user.ID]
	if !ok {
		return common.ErrNotFound
	}
	if owner, taken := r.byEmail[user.Email]; taken && owner != user.ID {
		return common.ErrDuplicateEmail
	}

	u := user.Clone()
	u.CreatedAt = old.CreatedAt

	delete(r.byEmail, old.Email)
	r.byEmail[u.Email] = u.ID
	r.byID[u.ID] = u

	return nil
}
