package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Think-iT-Labs/jad/internal/api/request"
	"github.com/Think-iT-Labs/jad/internal/api/response"
	"github.com/Think-iT-Labs/jad/internal/certstore"
	"github.com/Think-iT-Labs/jad/internal/model"
)

// CertStore is the certificate-exchange persistence surface.
type CertStore interface {
	Store(ctx context.Context, metadata model.CertMetadata, content []byte) error
	GetMetadata(ctx context.Context, id string) (*model.CertMetadata, error)
	Retrieve(ctx context.Context, id string) ([]byte, error)
	QueryMetadata(ctx context.Context, limit, offset int) ([]model.CertMetadata, error)
	Delete(ctx context.Context, id string) error
}

type Cert struct {
	store CertStore
}

func NewCert(store CertStore) *Cert {
	return &Cert{store: store}
}

func (h *Cert) Upload(w http.ResponseWriter, r *http.Request) {
	var req request.UploadCert
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}
	metadata := model.CertMetadata{
		ID:          id,
		ContentType: req.ContentType,
		Properties:  req.Properties,
		CreatedAt:   time.Now(),
	}

	if err := h.store.Store(r.Context(), metadata, req.Content); err != nil {
		response.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	response.WriteJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *Cert) Get(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	metadata, err := h.store.GetMetadata(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, metadata)
}

func (h *Cert) Query(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	certs, err := h.store.QueryMetadata(r.Context(), limit, offset)
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	response.WriteJSON(w, http.StatusOK, certs)
}

func (h *Cert) Download(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	metadata, err := h.store.GetMetadata(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	content, err := h.store.Retrieve(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	response.WriteRaw(w, http.StatusOK, metadata.ContentType, content)
}

func (h *Cert) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		h.writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Cert) writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, certstore.ErrNotFound) {
		response.WriteError(w, http.StatusNotFound, err.Error())
		return
	}
	response.WriteError(w, http.StatusInternalServerError, err.Error())
}
