package handlers

import (
	"errors"
	"net/http"
	"strings"

	"trace_app_go/models"
	"trace_app_go/services"
	"trace_app_go/templates/pages"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// HealthHandler reports whether the server and its database are reachable
func (h *Handler) HealthHandler(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request().Context())
	}
	if err != nil {
		h.log.Warn("Health check failed", zap.Error(err))
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// APICreateComplaint registers a complaint from a JSON body
func (h *Handler) APICreateComplaint(c echo.Context) error {
	var form services.ComplaintForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	complaint, err := h.intake.Register(c.Request().Context(), form)
	if err != nil {
		var incomplete *services.IncompleteInputError
		if errors.As(err, &incomplete) {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"error":   pages.MsgFillAllFields,
				"missing": incomplete.Missing,
			})
		}
		h.log.Error("Failed to register complaint", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to register complaint"})
	}

	return c.JSON(http.StatusCreated, complaint)
}

// APIGetComplaint returns one complaint by id
func (h *Handler) APIGetComplaint(c echo.Context) error {
	id, err := parseCaseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": pages.MsgNoCaseForID})
	}

	complaint, err := h.store.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrComplaintNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": pages.MsgNoCaseForID})
		}
		h.log.Error("Failed to load complaint", zap.Uint("complaint_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load complaint"})
	}

	return c.JSON(http.StatusOK, complaint)
}

// APIListComplaints returns every complaint filed with ?contact=
func (h *Handler) APIListComplaints(c echo.Context) error {
	contact := strings.TrimSpace(c.QueryParam("contact"))
	if contact == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "contact is required"})
	}

	complaints, err := h.intake.Track(c.Request().Context(), contact)
	if err != nil {
		h.log.Error("Failed to look up complaints by contact", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to look up complaints"})
	}
	if complaints == nil {
		complaints = []models.Complaint{}
	}

	return c.JSON(http.StatusOK, complaints)
}

// APIUpdateComplaint applies exactly the fields present in the JSON body.
// Unlike the admin form, an empty string is written as given.
func (h *Handler) APIUpdateComplaint(c echo.Context) error {
	id, err := parseCaseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": pages.MsgNoCaseForID})
	}

	var update models.ComplaintUpdate
	if err := c.Bind(&update); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if update.IsEmpty() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "no fields to update"})
	}
	trimUpdate(&update)

	ctx := c.Request().Context()
	if err := h.store.Update(ctx, id, update); err != nil {
		if errors.Is(err, services.ErrComplaintNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": pages.MsgNoCaseForID})
		}
		h.log.Error("Failed to update case", zap.Uint("complaint_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to update case"})
	}

	complaint, err := h.store.GetByID(ctx, id)
	if err != nil {
		h.log.Error("Failed to reload case", zap.Uint("complaint_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load complaint"})
	}
	return c.JSON(http.StatusOK, complaint)
}

func trimUpdate(u *models.ComplaintUpdate) {
	for _, field := range []*string{u.Status, u.OfficerAssigned, u.Station, u.Phone} {
		if field != nil {
			*field = services.CleanText(*field)
		}
	}
}
