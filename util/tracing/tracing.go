package tracing

// Context carries the per-request tracing fields attached by the
// RequestTracing middleware and threaded through log lines.
type Context struct {
	RequestID     string `json:"request_id"`
	RequestSource string `json:"request_source"`
}
