package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/users"
)

// CartService owns the per-user item quantities. Every mutation is a full
// load-mutate-save of the user record under a per-user lock; stores that
// implement users.Mutator additionally run it in one transaction.
//
// A quantity that drops to zero is removed from the map.
type CartService struct {
	users        users.Repository
	locks        *keyedMutex
	storeTimeout time.Duration
}

func NewCartService(repo users.Repository, storeTimeout time.Duration) *CartService {
	return &CartService{
		users:        repo,
		locks:        newKeyedMutex(),
		storeTimeout: storeTimeout,
	}
}

func (s *CartService) GetCart(ctx context.Context, userID string) (models.Cart, error) {
	user, err := callStore(ctx, s.storeTimeout, func(ctx context.Context) (*models.User, error) {
		return s.users.FindByID(ctx, userID)
	})
	if err != nil {
		return nil, err
	}
	return user.Cart.Clone(), nil
}

func (s *CartService) AddItem(ctx context.Context, userID, itemKey string) (models.Cart, error) {
	if itemKey == "" {
		return nil, fmt.Errorf("%w: empty item key", common.ErrInvalidInput)
	}

	return s.update(ctx, userID, func(c models.Cart) error {
		c[itemKey]++
		return nil
	})
}

// RemoveItem fails with ErrNothingToRemove and leaves the cart untouched
// when the item is absent or at zero.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemKey string) (models.Cart, error) {
	if itemKey == "" {
		return nil, fmt.Errorf("%w: empty item key", common.ErrInvalidInput)
	}

	return s.update(ctx, userID, func(c models.Cart) error {
		q := c[itemKey]
		if q <= 0 {
			return common.ErrNothingToRemove
		}
		if q == 1 {
			delete(c, itemKey)
		} else {
			c[itemKey] = q - 1
		}
		return nil
	})
}

func (s *CartService) update(ctx context.Context, userID string, change func(models.Cart) error) (models.Cart, error) {
	unlock, err := s.locks.Lock(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("waiting for cart lock: %w", err)
	}
	defer unlock()

	if m, ok := s.users.(users.Mutator); ok {
		user, err := callStore(ctx, s.storeTimeout, func(ctx context.Context) (*models.User, error) {
			return m.Mutate(ctx, userID, func(u *models.User) error {
				if u.Cart == nil {
					u.Cart = models.Cart{}
				}
				if err := change(u.Cart); err != nil {
					return err
				}
				return ctx.Err()
			})
		})
		if err != nil {
			return nil, err
		}
		return user.Cart.Clone(), nil
	}

	user, err := callStore(ctx, s.storeTimeout, func(ctx context.Context) (*models.User, error) {
		return s.users.FindByID(ctx, userID)
	})
	if err != nil {
		return nil, err
	}

	cart := user.Cart.Clone()
	if err := change(cart); err != nil {
		return nil, err
	}

	// a request cancelled before this point leaves the stored cart as it was
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("cart update aborted: %w", err)
	}

	user.Cart = cart
	err = callStoreErr(ctx, s.storeTimeout, func(ctx context.Context) error {
		return s.users.Save(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	return cart.Clone(), nil
}
