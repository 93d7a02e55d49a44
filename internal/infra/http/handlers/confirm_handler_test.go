package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kmufreight/leads-api/internal/entity"
	"github.com/kmufreight/leads-api/internal/usecase"
)

func TestHandleConfirmSuccess(t *testing.T) {
	mockRepo := new(MockLeadRepository)

	now := time.Now()
	mockRepo.On("Confirm", mock.Anything, "tok-abc").Return(&entity.Lead{
		ID:          "lead-123",
		Status:      entity.StatusConfirmed,
		ConfirmedAt: &now,
	}, nil)

	handler := NewConfirmHandler(usecase.NewConfirmLeadUseCase(mockRepo))

	req := httptest.NewRequest("GET", "/confirm?token=tok-abc", nil)
	w := httptest.NewRecorder()

	handler.HandleConfirm(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response usecase.ConfirmLeadOutput
	json.NewDecoder(w.Body).Decode(&response)
	assert.True(t, response.Success)
	assert.Equal(t, "Anmeldung bestätigt", response.Message)
}

func TestHandleConfirmInvalidToken(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("Confirm", mock.Anything, "bogus").Return(nil, entity.ErrTokenNotFound)

	handler := NewConfirmHandler(usecase.NewConfirmLeadUseCase(mockRepo))

	req := httptest.NewRequest("GET", "/confirm?token=bogus", nil)
	w := httptest.NewRecorder()

	handler.HandleConfirm(w, req)

	// Invalid token is a negative outcome, not an HTTP error.
	assert.Equal(t, http.StatusOK, w.Code)

	var response usecase.ConfirmLeadOutput
	json.NewDecoder(w.Body).Decode(&response)
	assert.False(t, response.Success)
	assert.Equal(t, "Token ungültig oder bereits verwendet", response.Message)
}

func TestHandleConfirmMissingToken(t *testing.T) {
	handler := NewConfirmHandler(usecase.NewConfirmLeadUseCase(new(MockLeadRepository)))

	req := httptest.NewRequest("GET", "/confirm", nil)
	w := httptest.NewRecorder()

	handler.HandleConfirm(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleConfirmStoreOutage(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("Confirm", mock.Anything, "tok-abc").Return(nil, errors.New("connection refused"))

	handler := NewConfirmHandler(usecase.NewConfirmLeadUseCase(mockRepo))

	req := httptest.NewRequest("GET", "/confirm?token=tok-abc", nil)
	w := httptest.NewRecorder()

	handler.HandleConfirm(w, req)

	// Store down is not the same outcome as a bad token.
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
