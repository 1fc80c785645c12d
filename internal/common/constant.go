package common

// AccessTokenHeaderName is the gRPC metadata key and HTTP header used to carry
// the session token.
const AccessTokenHeaderName = "auth-token"
