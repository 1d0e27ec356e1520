package middleware

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type nonceCtxKey struct{}

// NonceContextKey is the echo.Context key holding the request's style nonce
const NonceContextKey = "csp_nonce"

const nonceBytes = 16

// nonceSource is swapped in tests
var (
	defaultNonceSource io.Reader = rand.Reader
	nonceSource        io.Reader = defaultNonceSource
)

func newNonce() (string, error) {
	b := make([]byte, nonceBytes)
	if _, err := io.ReadFull(nonceSource, b); err != nil {
		return "", fmt.Errorf("failed to read nonce: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// pagePolicy allows no scripts at all. The layout's single inline
// stylesheet is admitted by nonce.
func pagePolicy(nonce string) string {
	return strings.Join([]string{
		"default-src 'self'",
		"script-src 'none'",
		"style-src 'self' 'nonce-" + nonce + "'",
		"img-src 'self' data:",
		"form-action 'self'",
		"base-uri 'none'",
		"frame-ancestors 'none'",
	}, "; ")
}

// CSPNonce sets a fresh nonce on every request and sends the matching
// Content-Security-Policy. A request fails with 500 rather than reuse a nonce.
func CSPNonce() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			nonce, err := newNonce()
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
			}

			c.Set(NonceContextKey, nonce)
			c.SetRequest(c.Request().WithContext(WithNonce(c.Request().Context(), nonce)))
			c.Response().Header().Set(echo.HeaderContentSecurityPolicy, pagePolicy(nonce))

			return next(c)
		}
	}
}

// WithNonce returns ctx carrying nonce for GetNonce
func WithNonce(ctx context.Context, nonce string) context.Context {
	return context.WithValue(ctx, nonceCtxKey{}, nonce)
}

// GetNonce returns the request's style nonce, or "" outside CSPNonce
func GetNonce(ctx context.Context) string {
	nonce, _ := ctx.Value(nonceCtxKey{}).(string)
	return nonce
}
