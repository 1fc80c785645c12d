// Package services contains server-side business logic: identity (signup
// and login), per-user cart state, the product catalog and image storage.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/storefront/internal/common"
)

// callStore runs one store call bounded by timeout (no bound when timeout is
// zero). Failures that are not domain errors become ErrStoreUnavailable.
func callStore[T any](ctx context.Context, timeout time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	v, err := fn(ctx)
	return v, storeErr(err)
}

func callStoreErr(ctx context.Context, timeout time.Duration, fn func(ctx context.Context) error) error {
	_, err := callStore(ctx, timeout, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

func storeErr(err error) error {
	if err == nil {
		return nil
	}
	if common.KindOf(err) != common.KindInfrastructure || errors.Is(err, common.ErrStoreUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", common.ErrStoreUnavailable, err)
}
