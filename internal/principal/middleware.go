package principal

import "github.com/gin-gonic/gin"

// contextKey is the gin context key the resolved principal is stored under.
const contextKey = "principal"

// HeaderName carries the authenticated user id, set by the upstream
// authentication layer. An absent header means an anonymous request.
const HeaderName = "X-User-Id"

// Resolve returns a middleware that resolves the request principal from
// the authentication header and stores it in the request context.
func Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := Anonymous()
		if userID := c.GetHeader(HeaderName); userID != "" {
			p = Principal{UserID: userID}
		}
		c.Set(contextKey, p)
		c.Next()
	}
}

// FromContext extracts the principal resolved by the middleware.
// Requests that skipped the middleware are treated as anonymous.
func FromContext(c *gin.Context) Principal {
	value, ok := c.Get(contextKey)
	if !ok {
		return Anonymous()
	}
	p, ok := value.(Principal)
	if !ok {
		return Anonymous()
	}
	return p
}
