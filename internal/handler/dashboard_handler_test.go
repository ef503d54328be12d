package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardEndpointRequiresActingUser(t *testing.T) {
	r := newTestRouter(t, newHandlerStore(), "")

	rec := doJSON(t, r, http.MethodGet, "/api/v1/dashboard", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDashboardEndpointAdmin(t *testing.T) {
	r := newTestRouter(t, newHandlerStore(), "")

	rec := doJSON(t, r, http.MethodGet, "/api/v1/dashboard", "", "ad-1")
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	var resp struct {
		TotalStudents int `json:"total_students"`
		TotalTeachers int `json:"total_teachers"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &resp))
	assert.Equal(t, 1, resp.TotalStudents)
	assert.Equal(t, 1, resp.TotalTeachers)
}

func TestDashboardEndpointShapeFollowsRole(t *testing.T) {
	r := newTestRouter(t, newHandlerStore(), "")

	rec := doJSON(t, r, http.MethodGet, "/api/v1/dashboard", "", "st-1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"attendance"`)

	rec = doJSON(t, r, http.MethodGet, "/api/v1/dashboard", "", "pa-1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"children"`)
}
