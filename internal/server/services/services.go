package services

import (
	"github.com/dmitrijs2005/storefront/internal/server/auth"
	"github.com/dmitrijs2005/storefront/internal/server/config"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/repomanager"
)

// Services is the set of business services the transports dispatch to.
type Services struct {
	Tokens  *auth.TokenManager
	Users   *UserService
	Carts   *CartService
	Catalog *CatalogService
	Images  *ImageService
}

// New wires every service against the repositories of m.
func New(m repomanager.RepositoryManager, cfg *config.Config) *Services {
	tokens := auth.NewTokenManager([]byte(cfg.SecretKey), cfg.AccessTokenValidityDuration)
	hasher := auth.NewBcryptHasher(cfg.PasswordHashCost)

	return &Services{
		Tokens:  tokens,
		Users:   NewUserService(m.Users(), hasher, tokens, cfg.StoreTimeout),
		Carts:   NewCartService(m.Users(), cfg.StoreTimeout),
		Catalog: NewCatalogService(m.Products(), cfg.StoreTimeout),
		Images:  NewImageService(cfg),
	}
}
