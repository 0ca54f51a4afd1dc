package apictx

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v5"
	"github.com/zhulik/namefilter/internal/core"
)

type ctxKey struct{}

// APICtx contains API request details extracted from the HTTP request.
type APICtx struct {
	Method        string
	URI           string
	Path          string
	Host          string
	RemoteAddr    string
	UserAgent     string
	RequestID     string
	ContentType   string
	ContentLength int64

	// FilterID is set for routes addressing a single filter.
	FilterID string
}

// Inject adds ApiCtx to the context and returns a new context.
// The ApiCtx is extracted from the Echo context.
func Inject(c *echo.Context) context.Context {
	req := c.Request()

	apiCtx := APICtx{
		Method:        req.Method,
		URI:           req.RequestURI,
		Path:          req.URL.Path,
		Host:          req.Host,
		RemoteAddr:    req.RemoteAddr,
		UserAgent:     req.UserAgent(),
		RequestID:     getRequestID(req),
		ContentType:   req.Header.Get("Content-Type"),
		ContentLength: req.ContentLength,
	}

	return context.WithValue(req.Context(), ctxKey{}, &apiCtx)
}

// FromContext retrieves ApiCtx from the context.
// Returns nil if ApiCtx is not present in the context.
func FromContext(ctx context.Context) *APICtx {
	apiCtx, ok := ctx.Value(ctxKey{}).(*APICtx)
	if !ok {
		return nil
	}

	return apiCtx
}

// MustFromContext retrieves ApiCtx from the context.
// Panics if ApiCtx is not present in the context.
func MustFromContext(ctx context.Context) *APICtx {
	apiCtx := FromContext(ctx)
	if apiCtx == nil {
		panic("ApiCtx not found in context")
	}

	return apiCtx
}

// getRequestID takes the caller's request id or generates a new one.
func getRequestID(req *http.Request) string {
	if id := req.Header.Get(core.RequestIDHeader); id != "" {
		return id
	}

	return uuid.NewString()
}
