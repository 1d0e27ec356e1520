package handlers

import (
	"errors"
	"net/http"
	"strings"

	"trace_app_go/middleware"
	"trace_app_go/services"
	"trace_app_go/templates/pages"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// TrackHandler renders the status lookup form
func (h *Handler) TrackHandler(c echo.Context) error {
	return render(c, http.StatusOK, pages.Track(middleware.GetCSRFToken(c), "", nil, false))
}

// TrackPostHandler lists every complaint filed with the submitted contact number
func (h *Handler) TrackPostHandler(c echo.Context) error {
	contact := strings.TrimSpace(c.FormValue("contact"))

	complaints, err := h.intake.Track(c.Request().Context(), contact)
	if err != nil {
		h.log.Error("Failed to look up complaints by contact", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to look up complaints")
	}

	return render(c, http.StatusOK, pages.Track(middleware.GetCSRFToken(c), contact, complaints, true))
}

// OfficerHandler renders the officer lookup form
func (h *Handler) OfficerHandler(c echo.Context) error {
	return render(c, http.StatusOK, pages.OfficerLookup(middleware.GetCSRFToken(c), "", pages.OfficerLookupResult{}))
}

// OfficerPostHandler shows the officer assigned to a case
func (h *Handler) OfficerPostHandler(c echo.Context) error {
	raw := strings.TrimSpace(c.FormValue("case_id"))
	csrfToken := middleware.GetCSRFToken(c)

	id, err := parseCaseID(raw)
	if err != nil {
		return render(c, http.StatusOK, pages.OfficerLookup(csrfToken, raw, pages.OfficerLookupResult{Error: pages.MsgNoCaseForID}))
	}

	complaint, err := h.intake.OfficerFor(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrComplaintNotFound) {
			return render(c, http.StatusOK, pages.OfficerLookup(csrfToken, raw, pages.OfficerLookupResult{Error: pages.MsgNoCaseForID}))
		}
		h.log.Error("Failed to look up officer", zap.Uint("complaint_id", id), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to look up case")
	}

	result := pages.OfficerLookupResult{Complaint: complaint}
	if !complaint.IsAssigned() {
		result.Warning = pages.MsgOfficerNotAssigned
	}
	return render(c, http.StatusOK, pages.OfficerLookup(csrfToken, raw, result))
}
