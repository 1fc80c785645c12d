package grpc

import (
	"context"

	"github.com/dmitrijs2005/storefront/internal/api"
	"google.golang.org/grpc"
)

// StorefrontServer is the gRPC surface of the storefront.
type StorefrontServer interface {
	Signup(context.Context, *api.SignupRequest) (*api.TokenResponse, error)
	Login(context.Context, *api.LoginRequest) (*api.TokenResponse, error)
	GetCart(context.Context, *api.CartRequest) (*api.CartResponse, error)
	AddToCart(context.Context, *api.CartItemRequest) (*api.CartResponse, error)
	RemoveFromCart(context.Context, *api.CartItemRequest) (*api.CartResponse, error)
	AddProduct(context.Context, *api.AddProductRequest) (*api.AddProductResponse, error)
	RemoveProduct(context.Context, *api.RemoveProductRequest) (*api.RemoveProductResponse, error)
	AllProducts(context.Context, *api.ProductsRequest) (*api.ProductsResponse, error)
	NewCollections(context.Context, *api.ProductsRequest) (*api.ProductsResponse, error)
	PopularInWomen(context.Context, *api.ProductsRequest) (*api.ProductsResponse, error)
	PresignImageUpload(context.Context, *api.PresignImageUploadRequest) (*api.PresignImageUploadResponse, error)
	UploadImage(context.Context, *api.UploadImageRequest) (*api.UploadImageResponse, error)
	Ping(context.Context, *api.PingRequest) (*api.PingResponse, error)
}

// unary adapts a typed StorefrontServer method to a grpc.MethodDesc.
func unary[Req, Resp any](name string, call func(StorefrontServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(StorefrontServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: api.FullMethod(name),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(StorefrontServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ServiceDesc describes storefront.v1.Storefront for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: api.ServiceName,
	HandlerType: (*StorefrontServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(api.MethodSignup, StorefrontServer.Signup),
		unary(api.MethodLogin, StorefrontServer.Login),
		unary(api.MethodGetCart, StorefrontServer.GetCart),
		unary(api.MethodAddToCart, StorefrontServer.AddToCart),
		unary(api.MethodRemoveFromCart, StorefrontServer.RemoveFromCart),
		unary(api.MethodAddProduct, StorefrontServer.AddProduct),
		unary(api.MethodRemoveProduct, StorefrontServer.RemoveProduct),
		unary(api.MethodAllProducts, StorefrontServer.AllProducts),
		unary(api.MethodNewCollections, StorefrontServer.NewCollections),
		unary(api.MethodPopularInWomen, StorefrontServer.PopularInWomen),
		unary(api.MethodPresignImageUpload, StorefrontServer.PresignImageUpload),
		unary(api.MethodUploadImage, StorefrontServer.UploadImage),
		unary(api.MethodPing, StorefrontServer.Ping),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "storefront/v1/storefront",
}
