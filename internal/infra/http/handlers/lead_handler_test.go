package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kmufreight/leads-api/internal/entity"
	"github.com/kmufreight/leads-api/internal/infra/queue"
	"github.com/kmufreight/leads-api/internal/usecase"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Confirm(ctx context.Context, token string) (*entity.Lead, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

// MockDispatcher
type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Dispatch(ctx context.Context, job queue.NotificationJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func submitBody() []byte {
	body, _ := json.Marshal(usecase.SubmitLeadInput{
		Name:     "A",
		Company:  "B",
		Email:    "a@b.com",
		Interest: "x",
		Purpose:  "y",
		Consent:  true,
	})
	return body
}

func TestHandleSubmitSuccess(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockDispatcher := new(MockDispatcher)

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockDispatcher.On("Dispatch", mock.Anything, mock.Anything).Return(nil)

	handler := NewLeadHandler(usecase.NewSubmitLeadUseCase(mockRepo, mockDispatcher))

	req := httptest.NewRequest("POST", "/leads", bytes.NewReader(submitBody()))
	w := httptest.NewRecorder()

	handler.HandleSubmit(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response usecase.SubmitLeadOutput
	json.NewDecoder(w.Body).Decode(&response)

	assert.True(t, response.Success)
	assert.True(t, response.DoubleOptIn)
	assert.NotEmpty(t, response.ID)
}

func TestHandleSubmitInvalidJSON(t *testing.T) {
	handler := NewLeadHandler(usecase.NewSubmitLeadUseCase(new(MockLeadRepository), new(MockDispatcher)))

	req := httptest.NewRequest("POST", "/leads", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()

	handler.HandleSubmit(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleSubmitWithoutConsent(t *testing.T) {
	mockRepo := new(MockLeadRepository)

	handler := NewLeadHandler(usecase.NewSubmitLeadUseCase(mockRepo, new(MockDispatcher)))

	body, _ := json.Marshal(usecase.SubmitLeadInput{
		Name:     "A",
		Company:  "B",
		Email:    "a@b.com",
		Interest: "x",
		Purpose:  "y",
		Consent:  false,
	})

	req := httptest.NewRequest("POST", "/leads", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.HandleSubmit(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	var response map[string]any
	json.NewDecoder(w.Body).Decode(&response)
	assert.Equal(t, false, response["success"])
}

func TestHandleSubmitStoreFailure(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockDispatcher := new(MockDispatcher)

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	handler := NewLeadHandler(usecase.NewSubmitLeadUseCase(mockRepo, mockDispatcher))

	req := httptest.NewRequest("POST", "/leads", bytes.NewReader(submitBody()))
	w := httptest.NewRecorder()

	handler.HandleSubmit(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response map[string]any
	json.NewDecoder(w.Body).Decode(&response)
	assert.NotEmpty(t, response["detail"])
}

func TestHandleSubmitNotificationFailureStillSucceeds(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockDispatcher := new(MockDispatcher)

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockDispatcher.On("Dispatch", mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	handler := NewLeadHandler(usecase.NewSubmitLeadUseCase(mockRepo, mockDispatcher))

	req := httptest.NewRequest("POST", "/leads", bytes.NewReader(submitBody()))
	w := httptest.NewRecorder()

	handler.HandleSubmit(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response usecase.SubmitLeadOutput
	json.NewDecoder(w.Body).Decode(&response)
	assert.True(t, response.Success)
	assert.NotEmpty(t, response.ID)
}
