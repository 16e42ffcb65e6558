package common

// AuthorizationHeaderName is the gRPC metadata / HTTP header key used to carry
// the session token on outbound requests.
const AuthorizationHeaderName = "authorization"

// BearerPrefix precedes the session token in the authorization value.
const BearerPrefix = "Bearer "

// Role names known to the service.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)
