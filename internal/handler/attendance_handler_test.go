package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkAttendanceEndpoint(t *testing.T) {
	st := newHandlerStore()
	r := newTestRouter(t, st, "")

	payload := `{"date":"2026-01-05","period_id":1,"student_id":"st-1","section_id":"g1-s1","status":"PRESENT","marked_by":"te-1"}`
	rec := doJSON(t, r, http.MethodPost, "/api/v1/attendance", payload, "te-1")
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	var record struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &record))
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "PRESENT", record.Status)
	assert.Len(t, st.Attendance(), 1)
}

func TestMarkAttendanceEndpointRejectsBadStatus(t *testing.T) {
	r := newTestRouter(t, newHandlerStore(), "")

	payload := `{"date":"2026-01-05","period_id":1,"student_id":"st-1","section_id":"g1-s1","status":"SLEEPING","marked_by":"te-1"}`
	rec := doJSON(t, r, http.MethodPost, "/api/v1/attendance", payload, "te-1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAttendanceSheetEndpoint(t *testing.T) {
	r := newTestRouter(t, newHandlerStore(), "")

	payload := `{"date":"2026-01-05","period_id":1,"student_id":"st-1","section_id":"g1-s1","status":"LATE","marked_by":"te-1"}`
	rec := doJSON(t, r, http.MethodPost, "/api/v1/attendance", payload, "te-1")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/v1/attendance/sheet?date=2026-01-05&periodId=1&sectionId=g1-s1", "", "te-1")
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	var sheet []struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &sheet))
	require.Len(t, sheet, 1)
	assert.Equal(t, "LATE", sheet[0].Status)
}

func TestAttendanceSheetEndpointMissingParams(t *testing.T) {
	r := newTestRouter(t, newHandlerStore(), "")

	rec := doJSON(t, r, http.MethodGet, "/api/v1/attendance/sheet?date=2026-01-05", "", "te-1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAttendanceReportEndpoints(t *testing.T) {
	r := newTestRouter(t, newHandlerStore(), "")

	payload := `{"date":"2026-01-05","period_id":1,"student_id":"st-1","section_id":"g1-s1","status":"PRESENT","marked_by":"te-1"}`
	rec := doJSON(t, r, http.MethodPost, "/api/v1/attendance", payload, "te-1")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/v1/attendance/report.pdf?date=2026-01-05&sectionId=g1-s1", "", "te-1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))

	rec = doJSON(t, r, http.MethodGet, "/api/v1/attendance/report.csv?date=2026-01-05&sectionId=g1-s1", "", "te-1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Student No")
	assert.Contains(t, rec.Body.String(), "PRESENT")
}
