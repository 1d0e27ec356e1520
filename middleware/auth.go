package middleware

import (
	"context"
	"net/http"
	"time"

	"trace_app_go/config"
	"trace_app_go/models"

	"github.com/labstack/echo/v4"
)

const (
	// SessionCookieName is the name of the admin session cookie
	SessionCookieName = "trace_admin_session"
	// ContextKeyAdmin is the context key for the authenticated admin
	ContextKeyAdmin = "admin"
	// ContextKeySession is the context key for the session
	ContextKeySession = "session"
)

// SessionValidator resolves a session token to an admin session
type SessionValidator interface {
	ValidateSession(ctx context.Context, token string) (*models.AdminSession, error)
}

// RequireAdmin protects admin pages; unauthenticated requests are sent to the login form
func RequireAdmin(auth SessionValidator) echo.MiddlewareFunc {
	return requireSession(auth, func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, "/admin/login")
	})
}

// RequireAdminAPI protects admin JSON endpoints with a 401 response
func RequireAdminAPI(auth SessionValidator) echo.MiddlewareFunc {
	return requireSession(auth, func(c echo.Context) error {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
	})
}

func requireSession(auth SessionValidator, deny func(c echo.Context) error) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil {
				return deny(c)
			}

			session, err := auth.ValidateSession(c.Request().Context(), cookie.Value)
			if err != nil {
				// Invalid or expired session, clear cookie
				ClearSessionCookie(c)
				return deny(c)
			}

			c.Set(ContextKeyAdmin, &session.Admin)
			c.Set(ContextKeySession, session)
			return next(c)
		}
	}
}

// GetCurrentAdmin retrieves the current admin from context
func GetCurrentAdmin(c echo.Context) *models.Admin {
	admin, ok := c.Get(ContextKeyAdmin).(*models.Admin)
	if !ok {
		return nil
	}
	return admin
}

// SetSessionCookie stores the session token in an HTTP-only cookie
func SetSessionCookie(c echo.Context, session *models.AdminSession) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		MaxAge:   int(time.Until(session.ExpiresAt).Seconds()),
		HttpOnly: true,
		Secure:   isProduction(c),
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie clears the session cookie
func ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   isProduction(c),
		SameSite: http.SameSiteLaxMode,
	})
}

func isProduction(c echo.Context) bool {
	if cfg, ok := c.Get("config").(*config.Config); ok {
		return cfg.IsProduction()
	}
	return false
}
