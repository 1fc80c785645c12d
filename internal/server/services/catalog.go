package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/products"
	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	newCollectionsSize = 8
	popularInWomenSize = 4
	popularCategory    = "women"
)

// CatalogService is a thin layer over the product store.
type CatalogService struct {
	products     products.Repository
	storeTimeout time.Duration
}

func NewCatalogService(repo products.Repository, storeTimeout time.Duration) *CatalogService {
	return &CatalogService{products: repo, storeTimeout: storeTimeout}
}

type productInput struct {
	Name     string
	Image    string
	Category string
	NewPrice float64
	OldPrice float64
}

func (in productInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&in.Image, validation.Required),
		validation.Field(&in.Category, validation.Required),
		validation.Field(&in.NewPrice, validation.Min(0.0)),
		validation.Field(&in.OldPrice, validation.Min(0.0)),
	)
}

func (s *CatalogService) AddProduct(ctx context.Context, p *models.Product) (*models.Product, error) {
	in := productInput{Name: p.Name, Image: p.Image, Category: p.Category, NewPrice: p.NewPrice, OldPrice: p.OldPrice}
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidInput, err)
	}

	return callStore(ctx, s.storeTimeout, func(ctx context.Context) (*models.Product, error) {
		return s.products.Create(ctx, p)
	})
}

func (s *CatalogService) RemoveProduct(ctx context.Context, id int64) error {
	return callStoreErr(ctx, s.storeTimeout, func(ctx context.Context) error {
		return s.products.Delete(ctx, id)
	})
}

func (s *CatalogService) AllProducts(ctx context.Context) ([]*models.Product, error) {
	return callStore(ctx, s.storeTimeout, s.products.List)
}

// NewCollections returns the most recently added products.
func (s *CatalogService) NewCollections(ctx context.Context) ([]*models.Product, error) {
	return callStore(ctx, s.storeTimeout, func(ctx context.Context) ([]*models.Product, error) {
		return s.products.Latest(ctx, newCollectionsSize)
	})
}

func (s *CatalogService) PopularInWomen(ctx context.Context) ([]*models.Product, error) {
	return callStore(ctx, s.storeTimeout, func(ctx context.Context) ([]*models.Product, error) {
		return s.products.ByCategory(ctx, popularCategory, popularInWomenSize)
	})
}
