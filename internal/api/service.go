package api

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "storefront.v1.Storefront"

const (
	MethodSignup             = "Signup"
	MethodLogin              = "Login"
	MethodGetCart            = "GetCart"
	MethodAddToCart          = "AddToCart"
	MethodRemoveFromCart     = "RemoveFromCart"
	MethodAddProduct         = "AddProduct"
	MethodRemoveProduct      = "RemoveProduct"
	MethodAllProducts        = "AllProducts"
	MethodNewCollections     = "NewCollections"
	MethodPopularInWomen     = "PopularInWomen"
	MethodPresignImageUpload = "PresignImageUpload"
	MethodUploadImage        = "UploadImage"
	MethodPing               = "Ping"
)

// FullMethod returns "/storefront.v1.Storefront/<method>".
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}
