package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"trace_app_go/middleware"
	"trace_app_go/services"
	"trace_app_go/templates/pages"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// HomeHandler sends visitors to the registration form
func (h *Handler) HomeHandler(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/complaints/new")
}

// ComplaintFormHandler renders the registration form
func (h *Handler) ComplaintFormHandler(c echo.Context) error {
	component := pages.ComplaintForm(middleware.GetCSRFToken(c), services.ComplaintForm{}, "")
	return render(c, http.StatusOK, component)
}

// ComplaintPostHandler registers a complaint from the form
func (h *Handler) ComplaintPostHandler(c echo.Context) error {
	var form services.ComplaintForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form data")
	}

	complaint, err := h.intake.Register(c.Request().Context(), form)
	if err != nil {
		if errors.Is(err, services.ErrIncompleteInput) {
			component := pages.ComplaintForm(middleware.GetCSRFToken(c), form, pages.MsgFillAllFields)
			return render(c, http.StatusBadRequest, component)
		}
		h.log.Error("Failed to register complaint", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to register complaint")
	}

	return render(c, http.StatusCreated, pages.ComplaintRegistered(complaint, h.intake.Delay()))
}

// ReportDownloadHandler serves the formal complaint as text, or as PDF with ?format=pdf
func (h *Handler) ReportDownloadHandler(c echo.Context) error {
	id, err := parseCaseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, pages.MsgNoCaseForID)
	}

	complaint, err := h.store.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrComplaintNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, pages.MsgNoCaseForID)
		}
		h.log.Error("Failed to load complaint", zap.Uint("complaint_id", id), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load complaint")
	}

	if c.QueryParam("format") == "pdf" {
		pdf, err := h.toPDF(c.Request().Context(), complaint.FormattedText, h.pdf)
		if err != nil {
			h.log.Error("Failed to render report PDF", zap.Uint("complaint_id", id), zap.Error(err))
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate PDF")
		}
		c.Response().Header().Set(echo.HeaderContentDisposition, attachment(services.ReportFileName(id, "pdf")))
		return c.Blob(http.StatusOK, "application/pdf", pdf)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, attachment(services.ReportFileName(id, "txt")))
	return c.Blob(http.StatusOK, echo.MIMETextPlainCharsetUTF8, []byte(complaint.FormattedText))
}

func parseCaseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, services.ErrComplaintNotFound
	}
	return uint(id), nil
}

func attachment(filename string) string {
	return `attachment; filename="` + filename + `"`
}
