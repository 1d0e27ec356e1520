package handlers

import (
	"errors"
	"net/http"
	"path"
	"strings"

	"trace_app_go/middleware"
	"trace_app_go/models"
	"trace_app_go/services"
	"trace_app_go/templates/pages"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AdminLoginHandler renders the admin sign-in form
func (h *Handler) AdminLoginHandler(c echo.Context) error {
	return render(c, http.StatusOK, pages.AdminLogin(middleware.GetCSRFToken(c), "", ""))
}

// AdminLoginPostHandler opens an admin session
func (h *Handler) AdminLoginPostHandler(c echo.Context) error {
	username := strings.TrimSpace(c.FormValue("username"))
	password := c.FormValue("password")
	if username == "" {
		username = services.BootstrapAdminUsername
	}

	session, err := h.auth.Login(c.Request().Context(), username, password, c.RealIP(), c.Request().UserAgent())
	if err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			h.log.Error("Admin login failed", zap.Error(err))
		}
		component := pages.AdminLogin(middleware.GetCSRFToken(c), username, pages.MsgIncorrectCredentials)
		return render(c, http.StatusUnauthorized, component)
	}

	middleware.SetSessionCookie(c, session)
	return c.Redirect(http.StatusSeeOther, "/admin")
}

// AdminLogoutHandler ends the current admin session
func (h *Handler) AdminLogoutHandler(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil {
		if err := h.auth.Logout(c.Request().Context(), cookie.Value); err != nil {
			h.log.Warn("Failed to delete admin session", zap.Error(err))
		}
	}
	middleware.ClearSessionCookie(c)
	return c.Redirect(http.StatusSeeOther, "/admin/login")
}

// AdminPanelHandler renders the override form and the case list
func (h *Handler) AdminPanelHandler(c echo.Context) error {
	return h.renderPanel(c, http.StatusOK, pages.AdminPanelData{})
}

// AdminUpdateCaseHandler applies an admin override. Empty fields keep their stored value.
func (h *Handler) AdminUpdateCaseHandler(c echo.Context) error {
	raw := strings.TrimSpace(c.FormValue("case_id"))
	data := pages.AdminPanelData{CaseID: raw}

	id, err := parseCaseID(raw)
	if err != nil {
		data.Warning = pages.MsgNoCaseForID
		return h.renderPanel(c, http.StatusOK, data)
	}

	update := services.OverrideFromForm(c.FormValue("status"), c.FormValue("officer"), c.FormValue("station"), c.FormValue("phone"))
	if err := h.store.Update(c.Request().Context(), id, update); err != nil {
		if errors.Is(err, services.ErrComplaintNotFound) {
			data.Warning = pages.MsgNoCaseForID
			return h.renderPanel(c, http.StatusOK, data)
		}
		h.log.Error("Failed to update case", zap.Uint("complaint_id", id), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update case")
	}

	admin := middleware.GetCurrentAdmin(c)
	h.log.Info("Case updated by admin",
		zap.Uint("complaint_id", id),
		zap.String("admin", adminName(admin)),
		zap.Any("fields", update.Columns()),
	)

	data.Success = pages.MsgCaseUpdated
	return h.renderPanel(c, http.StatusOK, data)
}

func (h *Handler) renderPanel(c echo.Context, status int, data pages.AdminPanelData) error {
	complaints, err := h.store.List(c.Request().Context())
	if err != nil {
		h.log.Error("Failed to list complaints", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load cases")
	}

	data.CSRFToken = middleware.GetCSRFToken(c)
	data.Username = adminName(middleware.GetCurrentAdmin(c))
	data.Complaints = complaints
	data.Now = h.now()
	return render(c, status, pages.AdminPanel(data))
}

// AdminExportHandler downloads every complaint as an XLSX workbook
func (h *Handler) AdminExportHandler(c echo.Context) error {
	complaints, err := h.store.List(c.Request().Context())
	if err != nil {
		h.log.Error("Failed to list complaints for export", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to export cases")
	}

	buf, err := services.BuildComplaintsWorkbook(complaints)
	if err != nil {
		h.log.Error("Failed to build export workbook", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to export cases")
	}

	filename := "complaints_" + h.now().Format("20060102_150405") + ".xlsx"
	c.Response().Header().Set(echo.HeaderContentDisposition, attachment(filename))
	return c.Blob(http.StatusOK, services.XLSXContentType, buf.Bytes())
}

// AdminLatestExportHandler downloads the most recent nightly export from storage
func (h *Handler) AdminLatestExportHandler(c echo.Context) error {
	if h.exports == nil || h.storage == nil {
		return echo.NewHTTPError(http.StatusNotFound, "No stored export yet")
	}
	key, ok := h.exports.Latest()
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "No stored export yet")
	}

	reader, contentType, err := h.storage.Get(c.Request().Context(), key)
	if err != nil {
		h.log.Error("Failed to read stored export", zap.String("key", key), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to read stored export")
	}
	defer reader.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition, attachment(path.Base(key)))
	return c.Stream(http.StatusOK, contentType, reader)
}

func adminName(admin *models.Admin) string {
	if admin == nil {
		return ""
	}
	return admin.Username
}
