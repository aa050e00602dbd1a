package constants

const (
	// FilterAll is the category filter value meaning "no category restriction"
	FilterAll = "All"

	// Session
	SessionCookieName  = "todo_session"
	SessionKeySearch   = "search"
	SessionKeyCategory = "category"

	// Context keys
	ContextKeyRequestID = "request_id"

	// HeaderRequestID carries the request ID in both directions
	HeaderRequestID = "X-Request-ID"
)
