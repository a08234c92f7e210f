package handler

import (
	"context"
	"encoding/base64"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Think-iT-Labs/jad/internal/api/request"
	"github.com/Think-iT-Labs/jad/internal/api/response"
	"github.com/Think-iT-Labs/jad/internal/core"
	"github.com/Think-iT-Labs/jad/internal/model"
)

// Onboarder provisions a participant from a manifest and returns the
// participant context id.
type Onboarder interface {
	Onboard(ctx context.Context, manifest model.ParticipantManifest) (string, error)
}

type Participant struct {
	onboarder    Onboarder
	participants core.ParticipantStore
}

func NewParticipant(onboarder Onboarder, participants core.ParticipantStore) *Participant {
	return &Participant{onboarder: onboarder, participants: participants}
}

func (h *Participant) Onboard(w http.ResponseWriter, r *http.Request) {
	var manifest model.ParticipantManifest
	if err := request.Decode(r, &manifest); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	participantContextID, err := h.onboarder.Onboard(r.Context(), manifest)
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// The id is base64url-encoded in the Location header since it is
	// usually a DID and contains colons.
	w.Header().Set("Location", base64.URLEncoding.EncodeToString([]byte(participantContextID)))
	response.WriteJSON(w, http.StatusCreated, map[string]string{
		"participant_context_id": participantContextID,
	})
}

func (h *Participant) Get(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	participant, err := h.participants.Get(r.Context(), id)
	if err != nil {
		response.WriteError(w, http.StatusNotFound, err.Error())
		return
	}
	response.WriteJSON(w, http.StatusOK, participant)
}
