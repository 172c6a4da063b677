package values

// Response status strings shared by handlers and helpers.
const (
	Success        = "success"
	Created        = "created"
	Failed         = "failed"
	Error          = "internal-error"
	BadRequestBody = "bad-request"
	Unprocessable  = "unprocessable"
	NotAllowed     = "not-allowed"
	Conflict       = "conflict"
	NotFound       = "not-found"
	NotAuthorised  = "not-authorised"
	TokenExpired   = "token-expired"
	ActiveLogin    = "active-login"
)

const (
	HeaderRequestID     = "X-Request-Id"
	HeaderRequestSource = "X-Request-Source"
)

type contextKey string

// ContextTracingKey is the request-context key holding the tracing.Context.
const ContextTracingKey = contextKey("tracing-context")
