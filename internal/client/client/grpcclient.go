package client

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/storefront/internal/api"
	"github.com/dmitrijs2005/storefront/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token := s.token(); token != "" {
		ctx = withAccessToken(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewStorefrontClient connects to the storefront gRPC endpoint. Extra dial
// options are appended after the defaults.
func NewStorefrontClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(api.CodecName)),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, dialOpts...)
	if err != nil {
		return err
	}
	s.conn = conn
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

// SetToken replaces the session token sent with every call.
func (s *GRPCClient) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = token
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func invoke[Resp any](ctx context.Context, s *GRPCClient, method string, req any) (*Resp, error) {
	resp := new(Resp)
	if err := s.conn.Invoke(ctx, api.FullMethod(method), req, resp); err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := invoke[api.PingResponse](ctx, s, api.MethodPing, &api.PingRequest{})
	if err != nil {
		return err
	}

	if resp.Message != "OK" {
		return ErrUnavailable
	}

	return nil
}

// Signup creates an account and keeps the returned token for later calls.
func (s *GRPCClient) Signup(ctx context.Context, username, email, password string) (string, error) {
	req := &api.SignupRequest{Username: username, Email: email, Password: password}

	resp, err := invoke[api.TokenResponse](ctx, s, api.MethodSignup, req)
	if err != nil {
		return "", err
	}

	s.SetToken(resp.Token)
	return resp.Token, nil
}

// Login authenticates and keeps the returned token for later calls.
func (s *GRPCClient) Login(ctx context.Context, email, password string) (string, error) {
	req := &api.LoginRequest{Email: email, Password: password}

	resp, err := invoke[api.TokenResponse](ctx, s, api.MethodLogin, req)
	if err != nil {
		return "", err
	}

	s.SetToken(resp.Token)
	return resp.Token, nil
}

func (s *GRPCClient) GetCart(ctx context.Context) (map[string]int, error) {
	resp, err := invoke[api.CartResponse](ctx, s, api.MethodGetCart, &api.CartRequest{})
	if err != nil {
		return nil, err
	}
	return resp.CartData, nil
}

func (s *GRPCClient) AddToCart(ctx context.Context, itemID string) (map[string]int, error) {
	req := &api.CartItemRequest{ItemID: api.ItemKey(itemID)}

	resp, err := invoke[api.CartResponse](ctx, s, api.MethodAddToCart, req)
	if err != nil {
		return nil, err
	}
	return resp.CartData, nil
}

func (s *GRPCClient) RemoveFromCart(ctx context.Context, itemID string) (map[string]int, error) {
	req := &api.CartItemRequest{ItemID: api.ItemKey(itemID)}

	resp, err := invoke[api.CartResponse](ctx, s, api.MethodRemoveFromCart, req)
	if err != nil {
		return nil, err
	}
	return resp.CartData, nil
}

func (s *GRPCClient) Products(ctx context.Context, list ProductList) ([]api.Product, error) {
	var method string
	switch list {
	case ListAll, "":
		method = api.MethodAllProducts
	case ListNewCollections:
		method = api.MethodNewCollections
	case ListPopularInWomen:
		method = api.MethodPopularInWomen
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownList, list)
	}

	resp, err := invoke[api.ProductsResponse](ctx, s, method, &api.ProductsRequest{})
	if err != nil {
		return nil, err
	}
	return resp.Products, nil
}

// PresignImageUpload asks the server for a presigned PUT URL for a product
// image and the public URL the image will have once uploaded.
func (s *GRPCClient) PresignImageUpload(ctx context.Context, fileName string) (*api.PresignImageUploadResponse, error) {
	req := &api.PresignImageUploadRequest{FileName: fileName}
	return invoke[api.PresignImageUploadResponse](ctx, s, api.MethodPresignImageUpload, req)
}

var sentinels = map[string]error{
	common.ErrDuplicateEmail.Error():   common.ErrDuplicateEmail,
	common.ErrWrongEmail.Error():       common.ErrWrongEmail,
	common.ErrWrongPassword.Error():    common.ErrWrongPassword,
	common.ErrMissingToken.Error():     common.ErrMissingToken,
	common.ErrInvalidSignature.Error(): common.ErrInvalidSignature,
	common.ErrTokenExpired.Error():     common.ErrTokenExpired,
	common.ErrNotFound.Error():         common.ErrNotFound,
	common.ErrNothingToRemove.Error():  common.ErrNothingToRemove,
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	if known, ok := sentinels[st.Message()]; ok {
		return known
	}
	switch st.Code() {
	case codes.InvalidArgument:
		return fmt.Errorf("%w%s", common.ErrInvalidInput, strings.TrimPrefix(st.Message(), common.ErrInvalidInput.Error()))
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
