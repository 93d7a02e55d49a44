package handlers

import (
	"net/http"

	"github.com/kmufreight/leads-api/internal/infra/http/middleware"
	"github.com/kmufreight/leads-api/internal/usecase"
)

type ConfirmHandler struct {
	ConfirmLeadUC *usecase.ConfirmLeadUseCase
}

func NewConfirmHandler(uc *usecase.ConfirmLeadUseCase) *ConfirmHandler {
	return &ConfirmHandler{ConfirmLeadUC: uc}
}

// HandleConfirm (GET /confirm?token=...)
//
// A bad token answers 200 with success=false; only a store outage is a 500.
// The two must not be conflated, the submitter clicking a stale link is not
// an operational problem.
func (h *ConfirmHandler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	confirmToken := r.URL.Query().Get("token")

	output, err := h.ConfirmLeadUC.Execute(r.Context(), confirmToken)
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

	if output.Success {
		middleware.RecordLeadConfirmed()
	}
	writeJSON(w, http.StatusOK, output)
}
