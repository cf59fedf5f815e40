package http

import (
	"net/http"

	"vecitools-backend/internal/domain"
	"vecitools-backend/internal/service"
)

type LoanHandler struct {
	loanSvc service.LoanService
}

func NewLoanHandler(loanSvc service.LoanService) *LoanHandler {
	return &LoanHandler{loanSvc: loanSvc}
}

type createLoanRequest struct {
	ToolID    int32  `json:"tool_id" validate:"required"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
}

type updateLoanStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *LoanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLoanRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	loan, err := h.loanSvc.Create(r.Context(), actorFrom(r), req.ToolID, req.StartDate, req.EndDate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, loan)
}

func (h *LoanHandler) MyLoans(w http.ResponseWriter, r *http.Request) {
	loans, err := h.loanSvc.MyLoans(r.Context(), actorFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loans)
}

func (h *LoanHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	loan, err := h.loanSvc.Get(r.Context(), actorFrom(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loan)
}

func (h *LoanHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req updateLoanStatusRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	loan, err := h.loanSvc.UpdateStatus(r.Context(), actorFrom(r), id, domain.LoanStatus(req.Status))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loan)
}
