package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Think-iT-Labs/jad/internal/api/request"
	"github.com/Think-iT-Labs/jad/internal/api/response"
	"github.com/Think-iT-Labs/jad/internal/model"
)

// DataRequester runs the data-request pipeline on behalf of a participant.
type DataRequester interface {
	RequestData(ctx context.Context, participantContextID string, req model.DataRequest) ([]byte, error)
	SetupTransfer(ctx context.Context, participantContextID string, req model.DataRequest) (map[string]any, error)
}

type Data struct {
	requester DataRequester
}

func NewData(requester DataRequester) *Data {
	return &Data{requester: requester}
}

// Request negotiates, transfers and downloads in one call, returning the
// provider payload verbatim.
func (h *Data) Request(w http.ResponseWriter, r *http.Request) {
	id, req, ok := h.decode(w, r)
	if !ok {
		return
	}

	data, err := h.requester.RequestData(r.Context(), id, req)
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	response.WriteRaw(w, http.StatusOK, "application/json", data)
}

// SetupTransfer stops after credential resolution and returns the raw
// endpoint credential properties.
func (h *Data) SetupTransfer(w http.ResponseWriter, r *http.Request) {
	id, req, ok := h.decode(w, r)
	if !ok {
		return
	}

	properties, err := h.requester.SetupTransfer(r.Context(), id, req)
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	response.WriteJSON(w, http.StatusOK, properties)
}

func (h *Data) decode(w http.ResponseWriter, r *http.Request) (string, model.DataRequest, bool) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return "", model.DataRequest{}, false
	}

	var req request.RequestData
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return "", model.DataRequest{}, false
	}

	return id, model.DataRequest{
		CounterPartyID: req.CounterPartyID,
		OfferID:        req.OfferID,
		PolicyType:     req.PolicyType,
	}, true
}
