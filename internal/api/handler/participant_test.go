package handler

import (
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Think-iT-Labs/jad/internal/model"
)

func validManifestBody() map[string]any {
	return map[string]any{
		"participant_id": "did:web:consumer.example.com",
		"token_url":      "https://sts.example.com/token",
		"client_id":      "consumer",
		"client_secret":  "secret",
		"vault_config": map[string]any{
			"url":   "https://vault.example.com",
			"token": "root",
		},
	}
}

// --- Onboard ---

func TestParticipantOnboard_Success(t *testing.T) {
	onboarder := new(mockOnboarder)
	onboarder.On("Onboard", mock.Anything, mock.AnythingOfType("model.ParticipantManifest")).
		Return("did:web:consumer.example.com", nil)
	h := NewParticipant(onboarder, nil)

	rec := httptest.NewRecorder()
	r := newRequest(http.MethodPost, "/participants", validManifestBody())

	h.Onboard(rec, r)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t,
		base64.URLEncoding.EncodeToString([]byte("did:web:consumer.example.com")),
		rec.Header().Get("Location"))
	assert.JSONEq(t, `{"participant_context_id":"did:web:consumer.example.com"}`, rec.Body.String())
	onboarder.AssertExpectations(t)
}

func TestParticipantOnboard_InvalidJSON(t *testing.T) {
	h := NewParticipant(nil, nil)
	rec := httptest.NewRecorder()
	r := newRequestRaw(http.MethodPost, "/participants", "{bad json")

	h.Onboard(rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeErrorResponse(rec)
	assert.Contains(t, body["error"], "invalid JSON")
}

func TestParticipantOnboard_MissingFields(t *testing.T) {
	h := NewParticipant(nil, nil)
	rec := httptest.NewRecorder()
	r := newRequest(http.MethodPost, "/participants", map[string]any{
		"participant_id": "did:web:consumer.example.com",
	})

	h.Onboard(rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeErrorResponse(rec)
	assert.Contains(t, body["error"], "validation error")
}

func TestParticipantOnboard_FailedStep(t *testing.T) {
	onboarder := new(mockOnboarder)
	onboarder.On("Onboard", mock.Anything, mock.Anything).
		Return("", errors.New("onboarding failed at register data plane: connection refused"))
	h := NewParticipant(onboarder, nil)

	rec := httptest.NewRecorder()
	r := newRequest(http.MethodPost, "/participants", validManifestBody())

	h.Onboard(rec, r)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeErrorResponse(rec)
	assert.Contains(t, body["error"], "register data plane")
}

// --- Get ---

func TestParticipantGet_Success(t *testing.T) {
	store := new(mockParticipantStore)
	store.On("Get", mock.Anything, "ctx-1").Return(&model.ParticipantContext{
		ParticipantContextID: "ctx-1",
		Identity:             "did:web:consumer.example.com",
		State:                model.ParticipantStateActivated,
	}, nil)
	h := NewParticipant(nil, store)

	rec := httptest.NewRecorder()
	r := newRequest(http.MethodGet, "/participants/ctx-1", nil)
	r = withChiURLParam(r, "id", "ctx-1")

	h.Get(rec, r)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "did:web:consumer.example.com")
	store.AssertExpectations(t)
}

func TestParticipantGet_EmptyID(t *testing.T) {
	h := NewParticipant(nil, nil)
	rec := httptest.NewRecorder()
	r := newRequest(http.MethodGet, "/participants/", nil)
	r = withChiURLParam(r, "id", "")

	h.Get(rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestParticipantGet_NotFound(t *testing.T) {
	store := new(mockParticipantStore)
	store.On("Get", mock.Anything, "missing").Return(nil, errors.New("participant missing not found"))
	h := NewParticipant(nil, store)

	rec := httptest.NewRecorder()
	r := newRequest(http.MethodGet, "/participants/missing", nil)
	r = withChiURLParam(r, "id", "missing")

	h.Get(rec, r)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
