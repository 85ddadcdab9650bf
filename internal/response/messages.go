package response

// Canonical messages for the auth and routing failure modes. Resource
// handlers build their own "<Resource> not found" / "Server error while ..."
// strings; these are the ones shared across the middleware chain.
const (
	MsgNoToken            = "Access denied. No token provided."
	MsgInvalidToken       = "Invalid token."
	MsgTokenExpired       = "Token expired."
	MsgAdminNotFound      = "Invalid token. Admin not found."
	MsgAccountDeactivated = "Account is deactivated."
	MsgInvalidCredentials = "Invalid credentials"
	MsgValidationFailed   = "Validation failed"
	MsgRouteNotFound      = "Route not found"
	MsgRateLimited        = "Too many requests. Please try again later."
	MsgAuthServerError    = "Server error during authentication."
)
