package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"trace_app_go/models"
	"trace_app_go/templates/pages"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonRequest(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	_, c, rec := setupEcho(method, path, strings.NewReader(body))
	c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return c, rec
}

func TestAPICreateComplaint(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		env := newTestEnv(t)
		c, rec := jsonRequest(http.MethodPost, "/api/v1/complaints", `{
			"name": "Asha Patil",
			"contact": "9990001111",
			"area": "Kothrud",
			"incident_place": "Market road",
			"description": "Bag snatched"
		}`)

		require.NoError(t, env.handler.APICreateComplaint(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var got models.Complaint
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, uint(1), got.ID)
		assert.Equal(t, models.StatusUnderReview, got.Status)
		assert.Equal(t, models.OfficerNotAssigned, got.OfficerAssigned)
		assert.NotEmpty(t, got.IncidentDate)
		assert.Contains(t, got.FormattedText, "Possible Locations: Pune")
	})

	t.Run("MissingFields", func(t *testing.T) {
		env := newTestEnv(t)
		c, rec := jsonRequest(http.MethodPost, "/api/v1/complaints", `{"name": "Asha", "contact": "999"}`)

		require.NoError(t, env.handler.APICreateComplaint(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{
			"error": "`+pages.MsgFillAllFields+`",
			"missing": ["area", "incident_place", "description"]
		}`, rec.Body.String())
		assert.Empty(t, env.scheduler.IDs())
	})

	t.Run("MalformedBody", func(t *testing.T) {
		env := newTestEnv(t)
		c, rec := jsonRequest(http.MethodPost, "/api/v1/complaints", `{"name":`)

		require.NoError(t, env.handler.APICreateComplaint(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAPIGetComplaint(t *testing.T) {
	env := newTestEnv(t)
	env.seedComplaint(t, "Asha", "9990001111")

	t.Run("Found", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/v1/complaints/1", nil)
		c.SetParamNames("id")
		c.SetParamValues("1")

		require.NoError(t, env.handler.APIGetComplaint(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"Asha"`)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/v1/complaints/5", nil)
		c.SetParamNames("id")
		c.SetParamValues("5")

		require.NoError(t, env.handler.APIGetComplaint(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"`+pages.MsgNoCaseForID+`"}`, rec.Body.String())
	})
}

func TestAPIListComplaints(t *testing.T) {
	env := newTestEnv(t)
	env.seedComplaint(t, "Asha", "9990001111")
	env.seedComplaint(t, "Vikram", "8880002222")
	env.seedComplaint(t, "Asha", "9990001111")

	t.Run("ByContact", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/v1/complaints?contact=9990001111", nil)

		require.NoError(t, env.handler.APIListComplaints(c))
		var got []models.Complaint
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, uint(1), got[0].ID)
		assert.Equal(t, uint(3), got[1].ID)
	})

	t.Run("NoMatchIsEmptyArray", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/v1/complaints?contact=123", nil)

		require.NoError(t, env.handler.APIListComplaints(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("ContactRequired", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/v1/complaints", nil)

		require.NoError(t, env.handler.APIListComplaints(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAPIUpdateComplaint(t *testing.T) {
	env := newTestEnv(t)
	env.seedComplaint(t, "Asha", "9990001111")

	patch := func(id, body string) *httptest.ResponseRecorder {
		c, rec := jsonRequest(http.MethodPatch, "/api/v1/admin/complaints/"+id, body)
		c.SetParamNames("id")
		c.SetParamValues(id)
		require.NoError(t, env.handler.APIUpdateComplaint(c))
		return rec
	}

	t.Run("ExactKeys", func(t *testing.T) {
		rec := patch("1", `{"status": "Closed", "station": ""}`)
		assert.Equal(t, http.StatusOK, rec.Code)

		stored, err := env.store.GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "Closed", stored.Status)
		assert.Equal(t, "", stored.Station)
		assert.Equal(t, models.OfficerNotAssigned, stored.OfficerAssigned)
		assert.Equal(t, models.NotAvailable, stored.Phone)
	})

	t.Run("KeepsValuesAsTyped", func(t *testing.T) {
		rec := patch("1", `{"officer_assigned": "  SI <Rao> a<b  "}`)
		assert.Equal(t, http.StatusOK, rec.Code)

		stored, err := env.store.GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "SI <Rao> a<b", stored.OfficerAssigned)
	})

	t.Run("EmptyBody", func(t *testing.T) {
		rec := patch("1", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		rec := patch("9", `{"status": "Closed"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
