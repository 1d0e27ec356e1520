package handlers

import (
	"trace_app_go/middleware"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes mounts the citizen pages, the admin pages and the JSON API.
// forms wraps every HTML route, normally with CSRF protection.
func RegisterRoutes(e *echo.Echo, h *Handler, sessions middleware.SessionValidator, forms ...echo.MiddlewareFunc) {
	withForms := func(m ...echo.MiddlewareFunc) []echo.MiddlewareFunc {
		return append(append([]echo.MiddlewareFunc{}, forms...), m...)
	}

	// Public routes
	e.GET("/", h.HomeHandler)
	e.GET("/complaints/new", h.ComplaintFormHandler, withForms()...)
	e.POST("/complaints", h.ComplaintPostHandler, withForms(middleware.PublicFormRateLimiter.Middleware())...)
	e.GET("/complaints/:id/report", h.ReportDownloadHandler)
	e.GET("/track", h.TrackHandler, withForms()...)
	e.POST("/track", h.TrackPostHandler, withForms(middleware.PublicFormRateLimiter.Middleware())...)
	e.GET("/officer", h.OfficerHandler, withForms()...)
	e.POST("/officer", h.OfficerPostHandler, withForms(middleware.PublicFormRateLimiter.Middleware())...)
	e.GET("/admin/login", h.AdminLoginHandler, withForms()...)
	e.POST("/admin/login", h.AdminLoginPostHandler, withForms(middleware.LoginRateLimiter.Middleware())...)

	// Admin pages (session required)
	admin := e.Group("/admin", withForms(middleware.RequireAdmin(sessions))...)
	{
		admin.GET("", h.AdminPanelHandler)
		admin.POST("/cases", h.AdminUpdateCaseHandler)
		admin.POST("/logout", h.AdminLogoutHandler)
		admin.GET("/export", h.AdminExportHandler)
		admin.GET("/exports/latest", h.AdminLatestExportHandler)
	}

	// JSON API
	api := e.Group("/api/v1", middleware.APIRateLimiter.Middleware())
	{
		api.GET("/healthz", h.HealthHandler)
		api.POST("/complaints", h.APICreateComplaint)
		api.GET("/complaints", h.APIListComplaints)
		api.GET("/complaints/:id", h.APIGetComplaint)
		api.PATCH("/admin/complaints/:id", h.APIUpdateComplaint, middleware.RequireAdminAPI(sessions))
	}
}
