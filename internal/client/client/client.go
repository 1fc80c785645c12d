package client

import (
	"context"

	"github.com/dmitrijs2005/storefront/internal/api"
)

// ProductList selects one of the catalog listings.
type ProductList string

const (
	ListAll            ProductList = "all"
	ListNewCollections ProductList = "new"
	ListPopularInWomen ProductList = "women"
)

type Client interface {
	Close() error
	Ping(ctx context.Context) error
	Signup(ctx context.Context, username, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	SetToken(token string)
	GetCart(ctx context.Context) (map[string]int, error)
	AddToCart(ctx context.Context, itemID string) (map[string]int, error)
	RemoveFromCart(ctx context.Context, itemID string) (map[string]int, error)
	Products(ctx context.Context, list ProductList) ([]api.Product, error)
	PresignImageUpload(ctx context.Context, fileName string) (*api.PresignImageUploadResponse, error)
}
