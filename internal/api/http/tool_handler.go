package http

import (
	"net/http"

	"vecitools-backend/internal/domain"
	"vecitools-backend/internal/service"
)

type ToolHandler struct {
	toolSvc service.ToolService
}

func NewToolHandler(toolSvc service.ToolService) *ToolHandler {
	return &ToolHandler{toolSvc: toolSvc}
}

type createToolRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=2000"`
	Category    string `json:"category" validate:"required,max=50"`
	Type        string `json:"type" validate:"omitempty,oneof=loan sale"`
	PriceCents  *int32 `json:"price_cents" validate:"omitempty,min=0"`
}

type updateToolStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

func (h *ToolHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createToolRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	tool := &domain.Tool{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Type:        domain.ToolType(req.Type),
		PriceCents:  req.PriceCents,
	}
	if err := h.toolSvc.Create(r.Context(), actorFrom(r), tool); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tool)
}

func (h *ToolHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	tool, err := h.toolSvc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tool)
}

// ListApproved serves the public catalog.
func (h *ToolHandler) ListApproved(w http.ResponseWriter, r *http.Request) {
	tools, err := h.toolSvc.ListApproved(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tools)
}

func (h *ToolHandler) ListUnavailable(w http.ResponseWriter, r *http.Request) {
	tools, err := h.toolSvc.ListUnavailable(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tools)
}

func (h *ToolHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	tools, err := h.toolSvc.ListPending(r.Context(), actorFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tools)
}

func (h *ToolHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	tools, err := h.toolSvc.ListMine(r.Context(), actorFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tools)
}

func (h *ToolHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req updateToolStatusRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	tool, err := h.toolSvc.UpdateStatus(r.Context(), actorFrom(r), id, domain.ToolStatus(req.Status))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tool)
}

func (h *ToolHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.toolSvc.Remove(r.Context(), actorFrom(r), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
