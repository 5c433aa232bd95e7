package common

const (
	// RequestIDHeaderName carries the per-request correlation id in both
	// directions.
	RequestIDHeaderName = "X-Request-ID"

	// DefaultSessionCookieName is used when the configuration does not
	// override the cookie name.
	DefaultSessionCookieName = "notekeeper.sid"
)
