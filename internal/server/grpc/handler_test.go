package grpc

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/dmitrijs2005/storefront/internal/api"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/dmitrijs2005/storefront/internal/server/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

func assertCode(t *testing.T, err error, code codes.Code, msg string) {
	t.Helper()
	require.Error(t, err)
	st := status.Convert(err)
	assert.Equal(t, code, st.Code(), st.Message())
	if msg != "" {
		assert.Equal(t, msg, st.Message())
	}
}

func TestCartScenario_Alice(t *testing.T) {
	svcs := newTestServices()
	conn := startServer(t, svcs)
	ctx := context.Background()

	signup, err := invoke[api.TokenResponse](ctx, conn, api.MethodSignup,
		&api.SignupRequest{Username: "alice", Email: "a@x.com", Password: "pw123"})
	require.NoError(t, err)
	require.True(t, signup.Success)
	token := signup.Token

	cart, err := invoke[api.CartResponse](withToken(token), conn, api.MethodAddToCart, &api.CartItemRequest{ItemID: "42"})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"42": 1}, cart.CartData)

	cart, err = invoke[api.CartResponse](withToken(token), conn, api.MethodAddToCart, &api.CartItemRequest{ItemID: "42"})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"42": 2}, cart.CartData)

	cart, err = invoke[api.CartResponse](withToken(token), conn, api.MethodRemoveFromCart, &api.CartItemRequest{ItemID: "42"})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"42": 1}, cart.CartData)

	// forged: signed with another secret
	forged, err := auth.NewTokenManager([]byte("other"), time.Hour).Issue("someone")
	require.NoError(t, err)
	_, err = invoke[api.CartResponse](withToken(forged), conn, api.MethodRemoveFromCart, &api.CartItemRequest{ItemID: "42"})
	assertCode(t, err, codes.Unauthenticated, "invalid signature")

	// expired: right secret, exp in the past
	userID, err := svcs.Tokens.Verify(token)
	require.NoError(t, err)
	expired, err := auth.NewTokenManager([]byte("test-secret"), -time.Minute).Issue(userID)
	require.NoError(t, err)
	_, err = invoke[api.CartResponse](withToken(expired), conn, api.MethodRemoveFromCart, &api.CartItemRequest{ItemID: "42"})
	assertCode(t, err, codes.Unauthenticated, "token expired")

	got, err := invoke[api.CartResponse](withToken(token), conn, api.MethodGetCart, &api.CartRequest{})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"42": 1}, got.CartData)
}

func TestCart_NumericItemIDAndErrors(t *testing.T) {
	conn := startServer(t, newTestServices())
	ctx := context.Background()

	signup, err := invoke[api.TokenResponse](ctx, conn, api.MethodSignup,
		&api.SignupRequest{Username: "bob", Email: "b@x.com", Password: "pw"})
	require.NoError(t, err)
	tctx := withToken(signup.Token)

	cart, err := invoke[api.CartResponse](tctx, conn, api.MethodAddToCart, map[string]any{"itemId": 7})
	require.NoError(t, err)
	assert.Equal(t, 1, cart.CartData["7"])

	_, err = invoke[api.CartResponse](tctx, conn, api.MethodRemoveFromCart, &api.CartItemRequest{ItemID: "8"})
	assertCode(t, err, codes.FailedPrecondition, "item not in cart or quantity is already zero")

	_, err = invoke[api.CartResponse](tctx, conn, api.MethodAddToCart, &api.CartItemRequest{})
	assertCode(t, err, codes.InvalidArgument, "")

	_, err = invoke[api.CartResponse](ctx, conn, api.MethodGetCart, &api.CartRequest{})
	assertCode(t, err, codes.Unauthenticated, "missing token")
}

func TestCart_DeletedUserIsNotFound(t *testing.T) {
	svcs := newTestServices()
	conn := startServer(t, svcs)

	token, err := svcs.Tokens.Issue("no-such-user")
	require.NoError(t, err)

	_, err = invoke[api.CartResponse](withToken(token), conn, api.MethodGetCart, &api.CartRequest{})
	assertCode(t, err, codes.NotFound, "not found")
}

func TestSignupAndLogin(t *testing.T) {
	conn := startServer(t, newTestServices())
	ctx := context.Background()

	_, err := invoke[api.TokenResponse](ctx, conn, api.MethodSignup,
		&api.SignupRequest{Username: "alice", Email: "a@x.com", Password: "pw123"})
	require.NoError(t, err)

	_, err = invoke[api.TokenResponse](ctx, conn, api.MethodSignup,
		&api.SignupRequest{Username: "other", Email: "a@x.com", Password: "x"})
	assertCode(t, err, codes.AlreadyExists, "existing user found with the same email address")

	_, err = invoke[api.TokenResponse](ctx, conn, api.MethodSignup,
		&api.SignupRequest{Username: "bad", Email: "nope", Password: "x"})
	assertCode(t, err, codes.InvalidArgument, "")

	login, err := invoke[api.TokenResponse](ctx, conn, api.MethodLogin, &api.LoginRequest{Email: "a@x.com", Password: "pw123"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)

	_, err = invoke[api.TokenResponse](ctx, conn, api.MethodLogin, &api.LoginRequest{Email: "a@x.com", Password: "bad"})
	assertCode(t, err, codes.InvalidArgument, "wrong password")

	_, err = invoke[api.TokenResponse](ctx, conn, api.MethodLogin, &api.LoginRequest{Email: "z@x.com", Password: "pw123"})
	assertCode(t, err, codes.InvalidArgument, "wrong email")
}

func TestCatalog(t *testing.T) {
	conn := startServer(t, newTestServices())
	ctx := context.Background()

	for _, c := range []string{"women", "men", "women"} {
		resp, err := invoke[api.AddProductResponse](ctx, conn, api.MethodAddProduct, &api.AddProductRequest{
			Name: "dress", Image: "http://img/d.png", Category: c, NewPrice: 50, OldPrice: 80,
		})
		require.NoError(t, err)
		assert.True(t, resp.Success)
	}

	all, err := invoke[api.ProductsResponse](ctx, conn, api.MethodAllProducts, &api.ProductsRequest{})
	require.NoError(t, err)
	assert.Len(t, all.Products, 3)

	women, err := invoke[api.ProductsResponse](ctx, conn, api.MethodPopularInWomen, &api.ProductsRequest{})
	require.NoError(t, err)
	assert.Len(t, women.Products, 2)

	latest, err := invoke[api.ProductsResponse](ctx, conn, api.MethodNewCollections, &api.ProductsRequest{})
	require.NoError(t, err)
	assert.Len(t, latest.Products, 3)

	removed, err := invoke[api.RemoveProductResponse](ctx, conn, api.MethodRemoveProduct, &api.RemoveProductRequest{ID: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed.ID)

	_, err = invoke[api.RemoveProductResponse](ctx, conn, api.MethodRemoveProduct, &api.RemoveProductRequest{ID: 2})
	assertCode(t, err, codes.NotFound, "")

	_, err = invoke[api.AddProductResponse](ctx, conn, api.MethodAddProduct, &api.AddProductRequest{Name: "x"})
	assertCode(t, err, codes.InvalidArgument, "")

	_, err = invoke[api.UploadImageResponse](ctx, conn, api.MethodUploadImage, &api.UploadImageRequest{FileName: "a.png"})
	assertCode(t, err, codes.InvalidArgument, "")
}

func TestPingAndHealth(t *testing.T) {
	conn := startServer(t, newTestServices())
	ctx := context.Background()

	pong, err := invoke[api.PingResponse](ctx, conn, api.MethodPing, &api.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", pong.Message)

	// the health service is protobuf; override the default JSON subtype
	resp, err := healthpb.NewHealthClient(conn).Check(ctx,
		&healthpb.HealthCheckRequest{Service: api.ServiceName}, grpc.CallContentSubtype("proto"))
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)
}

func TestSignup_LogsUserIDNotEmail(t *testing.T) {
	var logs bytes.Buffer
	svcs := newTestServices()
	srv := NewGRPCServer("bufnet", logging.NewJSONLogger(&logs, slog.LevelInfo), svcs)

	resp, err := srv.Signup(context.Background(), &api.SignupRequest{Username: "alice", Email: "shopper@x.com", Password: "pw"})
	require.NoError(t, err)
	userID, err := svcs.Tokens.Verify(resp.Token)
	require.NoError(t, err)

	assert.Contains(t, logs.String(), `"user_id":"`+userID+`"`)
	assert.NotContains(t, logs.String(), "shopper@x.com")
}
