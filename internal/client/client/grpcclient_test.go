package client

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/dmitrijs2005/storefront/internal/server/config"
	grpcserver "github.com/dmitrijs2005/storefront/internal/server/grpc"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/storefront/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func newTestClient(t *testing.T) (*GRPCClient, *services.Services) {
	t.Helper()

	cfg := &config.Config{
		SecretKey:                   "test-secret",
		AccessTokenValidityDuration: time.Hour,
		PasswordHashCost:            bcrypt.MinCost,
		StoreTimeout:                time.Second,
		ImageBaseURL:                "http://localhost:5000/images",
	}
	svc := services.New(repomanager.NewMemoryRepositoryManager(), cfg)

	srv := grpcserver.NewGRPCServer("bufnet", logging.Nop{}, svc)
	lis := bufconn.Listen(1 << 20)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	c, err := NewStorefrontClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
		cancel()
		<-done
	})

	return c, svc
}

func TestGRPCClient_Ping(t *testing.T) {
	c, _ := newTestClient(t)
	require.NoError(t, c.Ping(context.Background()))
}

func TestGRPCClient_SignupAndCart(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	token, err := c.Signup(ctx, "Alice", "a@x.io", "p1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	cart, err := c.GetCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart)

	cart, err = c.AddToCart(ctx, "12")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"12": 1}, cart)

	cart, err = c.AddToCart(ctx, "12")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"12": 2}, cart)

	cart, err = c.RemoveFromCart(ctx, "12")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"12": 1}, cart)

	_, err = c.RemoveFromCart(ctx, "99")
	assert.ErrorIs(t, err, common.ErrNothingToRemove)
}

func TestGRPCClient_LoginErrors(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	_, err := c.Signup(ctx, "Alice", "a@x.io", "p1")
	require.NoError(t, err)

	_, err = c.Signup(ctx, "Alice", "a@x.io", "p2")
	assert.ErrorIs(t, err, common.ErrDuplicateEmail)

	_, err = c.Login(ctx, "nobody@x.io", "p1")
	assert.ErrorIs(t, err, common.ErrWrongEmail)

	_, err = c.Login(ctx, "a@x.io", "bad")
	assert.ErrorIs(t, err, common.ErrWrongPassword)

	token, err := c.Login(ctx, "a@x.io", "p1")
	require.NoError(t, err)
	assert.Equal(t, token, c.token())

	_, err = c.Signup(ctx, "Bob", "not-an-email", "p1")
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestGRPCClient_TokenErrors(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	_, err := c.GetCart(ctx)
	assert.ErrorIs(t, err, common.ErrMissingToken)

	c.SetToken("garbage")
	_, err = c.AddToCart(ctx, "1")
	assert.ErrorIs(t, err, common.ErrInvalidSignature)
}

func TestGRPCClient_Products(t *testing.T) {
	c, svc := newTestClient(t)
	ctx := context.Background()

	for _, cat := range []string{"women", "men", "women"} {
		_, err := svc.Catalog.AddProduct(ctx, &models.Product{
			Name: "p-" + cat, Image: "http://img/x.png", Category: cat, NewPrice: 10, OldPrice: 20,
		})
		require.NoError(t, err)
	}

	all, err := c.Products(ctx, ListAll)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	women, err := c.Products(ctx, ListPopularInWomen)
	require.NoError(t, err)
	assert.Len(t, women, 2)

	latest, err := c.Products(ctx, ListNewCollections)
	require.NoError(t, err)
	assert.Len(t, latest, 3)

	_, err = c.Products(ctx, "kids")
	assert.ErrorIs(t, err, ErrUnknownList)
}

func TestGRPCClient_mapError(t *testing.T) {
	c := &GRPCClient{}

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"expired", status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error()), common.ErrTokenExpired},
		{"unauthenticated", status.Error(codes.Unauthenticated, "nope"), ErrUnauthorized},
		{"unavailable", status.Error(codes.Unavailable, "down"), ErrUnavailable},
		{"deadline", status.Error(codes.DeadlineExceeded, "slow"), ErrUnavailable},
		{"not found", status.Error(codes.NotFound, common.ErrNotFound.Error()), common.ErrNotFound},
		{"invalid", status.Error(codes.InvalidArgument, "invalid input: empty item id"), common.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.mapError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}

	internal := c.mapError(status.Error(codes.Internal, "internal error"))
	assert.False(t, errors.Is(internal, ErrUnavailable))
	assert.ErrorContains(t, internal, "rpc error")
}

func TestGRPCClient_PresignImageUploadRejectsEmptyName(t *testing.T) {
	c, _ := newTestClient(t)

	_, err := c.PresignImageUpload(context.Background(), "")
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}
