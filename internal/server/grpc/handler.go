package grpc

import (
	"bytes"
	"context"

	"github.com/dmitrijs2005/storefront/internal/api"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/server/auth"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Signup(ctx context.Context, req *api.SignupRequest) (*api.TokenResponse, error) {
	token, id, err := s.services.Users.Signup(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, "signup", err)
	}

	s.logger.Info(ctx, "Signed up", "user_id", id)
	return &api.TokenResponse{Success: true, Token: token}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *api.LoginRequest) (*api.TokenResponse, error) {
	token, err := s.services.Users.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, "login", err)
	}

	return &api.TokenResponse{Success: true, Token: token}, nil
}

// userID reads the id placed in ctx by accessTokenInterceptor.
func userID(ctx context.Context) (string, error) {
	id, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, common.ErrMissingToken.Error())
	}
	return id, nil
}

func cartResponse(c models.Cart) *api.CartResponse {
	return &api.CartResponse{Success: true, CartData: c}
}

func (s *GRPCServer) GetCart(ctx context.Context, _ *api.CartRequest) (*api.CartResponse, error) {
	id, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	cart, err := s.services.Carts.GetCart(ctx, id)
	if err != nil {
		return nil, s.toStatus(ctx, "get cart", err)
	}
	return cartResponse(cart), nil
}

func (s *GRPCServer) AddToCart(ctx context.Context, req *api.CartItemRequest) (*api.CartResponse, error) {
	id, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	cart, err := s.services.Carts.AddItem(ctx, id, string(req.ItemID))
	if err != nil {
		return nil, s.toStatus(ctx, "add to cart", err)
	}
	return cartResponse(cart), nil
}

func (s *GRPCServer) RemoveFromCart(ctx context.Context, req *api.CartItemRequest) (*api.CartResponse, error) {
	id, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	cart, err := s.services.Carts.RemoveItem(ctx, id, string(req.ItemID))
	if err != nil {
		return nil, s.toStatus(ctx, "remove from cart", err)
	}
	return cartResponse(cart), nil
}

func (s *GRPCServer) AddProduct(ctx context.Context, req *api.AddProductRequest) (*api.AddProductResponse, error) {
	p, err := s.services.Catalog.AddProduct(ctx, req.Model())
	if err != nil {
		return nil, s.toStatus(ctx, "add product", err)
	}

	s.logger.Info(ctx, "Product added", "id", p.ID, "name", p.Name)
	return &api.AddProductResponse{Success: true, Name: p.Name, Product: api.ProductFromModel(p)}, nil
}

func (s *GRPCServer) RemoveProduct(ctx context.Context, req *api.RemoveProductRequest) (*api.RemoveProductResponse, error) {
	if err := s.services.Catalog.RemoveProduct(ctx, req.ID); err != nil {
		return nil, s.toStatus(ctx, "remove product", err)
	}

	s.logger.Info(ctx, "Product removed", "id", req.ID)
	return &api.RemoveProductResponse{Success: true, ID: req.ID}, nil
}

func (s *GRPCServer) products(ctx context.Context, op string, list func(context.Context) ([]*models.Product, error)) (*api.ProductsResponse, error) {
	items, err := list(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, op, err)
	}
	return &api.ProductsResponse{Products: api.ProductsFromModels(items)}, nil
}

func (s *GRPCServer) AllProducts(ctx context.Context, _ *api.ProductsRequest) (*api.ProductsResponse, error) {
	return s.products(ctx, "all products", s.services.Catalog.AllProducts)
}

func (s *GRPCServer) NewCollections(ctx context.Context, _ *api.ProductsRequest) (*api.ProductsResponse, error) {
	return s.products(ctx, "new collections", s.services.Catalog.NewCollections)
}

func (s *GRPCServer) PopularInWomen(ctx context.Context, _ *api.ProductsRequest) (*api.ProductsResponse, error) {
	return s.products(ctx, "popular in women", s.services.Catalog.PopularInWomen)
}

func (s *GRPCServer) PresignImageUpload(ctx context.Context, req *api.PresignImageUploadRequest) (*api.PresignImageUploadResponse, error) {
	up, err := s.services.Images.PresignUpload(ctx, req.FileName)
	if err != nil {
		return nil, s.toStatus(ctx, "presign image upload", err)
	}
	return &api.PresignImageUploadResponse{Key: up.Key, URL: up.URL, ImageURL: up.ImageURL}, nil
}

func (s *GRPCServer) UploadImage(ctx context.Context, req *api.UploadImageRequest) (*api.UploadImageResponse, error) {
	if len(req.Data) == 0 {
		return nil, s.toStatus(ctx, "upload image", common.ErrInvalidInput)
	}

	url, err := s.services.Images.Upload(ctx, "product", req.FileName, req.ContentType, bytes.NewReader(req.Data))
	if err != nil {
		return nil, s.toStatus(ctx, "upload image", err)
	}
	return &api.UploadImageResponse{Success: true, ImageURL: url}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *api.PingRequest) (*api.PingResponse, error) {
	return &api.PingResponse{Message: "OK"}, nil
}
