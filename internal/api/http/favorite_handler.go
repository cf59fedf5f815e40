package http

import (
	"net/http"

	"vecitools-backend/internal/service"
)

type FavoriteHandler struct {
	favSvc service.FavoriteService
}

func NewFavoriteHandler(favSvc service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favSvc: favSvc}
}

type addFavoriteRequest struct {
	ToolID int32 `json:"tool_id" validate:"required"`
}

func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addFavoriteRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	fav, err := h.favSvc.Add(r.Context(), actorFrom(r), req.ToolID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, fav)
}

func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	favs, err := h.favSvc.ListMine(r.Context(), actorFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, favs)
}

func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	toolID, err := pathID(r, "toolId")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.favSvc.Remove(r.Context(), actorFrom(r), toolID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
