package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageFlowEndpoints(t *testing.T) {
	r := newTestRouter(t, newHandlerStore(), "")

	rec := doJSON(t, r, http.MethodPost, "/api/v1/messages", `{"sender_id":"pa-1","receiver_id":"te-1","content":"مرحبا"}`, "pa-1")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/v1/messages?with=pa-1", "", "te-1")
	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	var thread []struct {
		Content string `json:"content"`
		Read    bool   `json:"read"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &thread))
	require.Len(t, thread, 1)
	assert.False(t, thread[0].Read)

	rec = doJSON(t, r, http.MethodGet, "/api/v1/messages/unread", "", "te-1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"unread":1`)

	rec = doJSON(t, r, http.MethodPost, "/api/v1/messages/read", `{"sender_id":"pa-1"}`, "te-1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"updated":1`)

	rec = doJSON(t, r, http.MethodGet, "/api/v1/messages/unread", "", "te-1")
	assert.Contains(t, rec.Body.String(), `"unread":0`)
}

func TestMessagesRequireActingUser(t *testing.T) {
	r := newTestRouter(t, newHandlerStore(), "")

	rec := doJSON(t, r, http.MethodGet, "/api/v1/messages?with=pa-1", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/v1/messages/contacts", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactsEndpoint(t *testing.T) {
	r := newTestRouter(t, newHandlerStore(), "")

	rec := doJSON(t, r, http.MethodGet, "/api/v1/messages/contacts", "", "st-1")
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	var contacts []struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &contacts))
	require.Len(t, contacts, 1, "students only see teachers")
	assert.Equal(t, "te-1", contacts[0].User.ID)
}
