package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kmufreight/leads-api/internal/infra/http/middleware"
	"github.com/kmufreight/leads-api/internal/usecase"
)

type LeadHandler struct {
	SubmitLeadUC *usecase.SubmitLeadUseCase
}

func NewLeadHandler(uc *usecase.SubmitLeadUseCase) *LeadHandler {
	return &LeadHandler{SubmitLeadUC: uc}
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// HandleSubmit (POST /leads)
func (h *LeadHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var input usecase.SubmitLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Success: false,
			Message: "Invalid JSON",
		})
		return
	}

	output, err := h.SubmitLeadUC.Execute(r.Context(), input)
	if err != nil {
		if usecase.IsDomainError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Success: false,
				Message: err.Error(),
			})
			return
		}

		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Success: false,
			Detail:  err.Error(),
		})
		return
	}

	middleware.RecordLeadSubmitted()
	writeJSON(w, http.StatusOK, output)
}
