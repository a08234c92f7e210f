package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Think-iT-Labs/jad/internal/model"
)

func dataRequestBody() map[string]any {
	return map[string]any{
		"counter_party_id": "did:web:provider.example.com",
		"offer_id":         "offer-1",
	}
}

// --- Request ---

func TestDataRequest_Success(t *testing.T) {
	requester := new(mockDataRequester)
	requester.On("RequestData", mock.Anything, "ctx-1", model.DataRequest{
		CounterPartyID: "did:web:provider.example.com",
		OfferID:        "offer-1",
	}).Return([]byte(`[{"id":1,"title":"delectus"}]`), nil)
	h := NewData(requester)

	rec := httptest.NewRecorder()
	r := newRequest(http.MethodPost, "/participants/ctx-1/data", dataRequestBody())
	r = withChiURLParam(r, "id", "ctx-1")

	h.Request(rec, r)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, `[{"id":1,"title":"delectus"}]`, rec.Body.String())
	requester.AssertExpectations(t)
}

func TestDataRequest_EmptyID(t *testing.T) {
	h := NewData(nil)
	rec := httptest.NewRecorder()
	r := newRequest(http.MethodPost, "/participants//data", dataRequestBody())
	r = withChiURLParam(r, "id", "")

	h.Request(rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeErrorResponse(rec)
	assert.Contains(t, body["error"], "missing required ID")
}

func TestDataRequest_MissingOfferID(t *testing.T) {
	h := NewData(nil)
	rec := httptest.NewRecorder()
	r := newRequest(http.MethodPost, "/participants/ctx-1/data", map[string]any{
		"counter_party_id": "did:web:provider.example.com",
	})
	r = withChiURLParam(r, "id", "ctx-1")

	h.Request(rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDataRequest_PipelineFailure(t *testing.T) {
	requester := new(mockDataRequester)
	requester.On("RequestData", mock.Anything, "ctx-1", mock.Anything).
		Return(nil, errors.New("transfer transfer-1 terminated: provider terminated"))
	h := NewData(requester)

	rec := httptest.NewRecorder()
	r := newRequest(http.MethodPost, "/participants/ctx-1/data", dataRequestBody())
	r = withChiURLParam(r, "id", "ctx-1")

	h.Request(rec, r)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeErrorResponse(rec)
	assert.Contains(t, body["error"], "provider terminated")
}

// --- SetupTransfer ---

func TestDataSetupTransfer_Success(t *testing.T) {
	requester := new(mockDataRequester)
	requester.On("SetupTransfer", mock.Anything, "ctx-1", mock.Anything).
		Return(map[string]any{"endpoint": "https://dataplane.example.com/public"}, nil)
	h := NewData(requester)

	rec := httptest.NewRecorder()
	r := newRequest(http.MethodPost, "/participants/ctx-1/transfer", dataRequestBody())
	r = withChiURLParam(r, "id", "ctx-1")

	h.SetupTransfer(rec, r)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"endpoint":"https://dataplane.example.com/public"}`, rec.Body.String())
	requester.AssertExpectations(t)
}

func TestDataSetupTransfer_PolicyTypePassedThrough(t *testing.T) {
	requester := new(mockDataRequester)
	requester.On("SetupTransfer", mock.Anything, "ctx-1", model.DataRequest{
		CounterPartyID: "did:web:provider.example.com",
		OfferID:        "offer-1",
		PolicyType:     "manufacturer",
	}).Return(map[string]any{}, nil)
	h := NewData(requester)

	rec := httptest.NewRecorder()
	body := dataRequestBody()
	body["policy_type"] = "manufacturer"
	r := newRequest(http.MethodPost, "/participants/ctx-1/transfer", body)
	r = withChiURLParam(r, "id", "ctx-1")

	h.SetupTransfer(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
	requester.AssertExpectations(t)
}
