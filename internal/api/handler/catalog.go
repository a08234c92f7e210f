package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Think-iT-Labs/jad/internal/api/request"
	"github.com/Think-iT-Labs/jad/internal/api/response"
)

// CatalogRequester fetches a counter-party's catalog.
type CatalogRequester interface {
	Request(ctx context.Context, participantContextID, counterPartyDID string, query json.RawMessage) (json.RawMessage, error)
}

type Catalog struct {
	catalogs CatalogRequester
}

func NewCatalog(catalogs CatalogRequester) *Catalog {
	return &Catalog{catalogs: catalogs}
}

func (h *Catalog) Request(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req request.RequestCatalog
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	catalog, err := h.catalogs.Request(r.Context(), id, req.CounterPartyID, req.QuerySpec)
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	response.WriteRaw(w, http.StatusOK, "application/json", catalog)
}
