package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LuckyGen_Go/internal/database/memory"
	"github.com/osse101/LuckyGen_Go/internal/domain"
	"github.com/osse101/LuckyGen_Go/internal/encounter"
)

// MockEncounterService mocks the encounter.Service interface
type MockEncounterService struct {
	mock.Mock
}

func (m *MockEncounterService) ListEncounters(ctx context.Context) ([]domain.Encounter, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Encounter), args.Error(1)
}

func (m *MockEncounterService) GetEncounter(ctx context.Context, id string) (*domain.Encounter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Encounter), args.Error(1)
}

func (m *MockEncounterService) RecordEncounter(ctx context.Context, req domain.NewEncounter) (*domain.Encounter, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Encounter), args.Error(1)
}

// withURLParam attaches a chi route param so handlers can be called directly
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestHandleListEncounters(t *testing.T) {
	h := NewEncounterHandler(encounter.NewService(memory.NewSeededEncounterRepository()))

	t.Run("all encounters with totals", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/encounters", nil)
		w := httptest.NewRecorder()

		h.HandleListEncounters(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp EncounterListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 8, resp.Count)
		assert.Equal(t, 13.0, resp.TotalSpent)
		assert.Equal(t, 23.0, resp.TotalWinnings)
		assert.Equal(t, "1", resp.Encounters[0].ID)
	})

	t.Run("filtered by game", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/encounters?game=pick-6", nil)
		w := httptest.NewRecorder()

		h.HandleListEncounters(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp EncounterListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Count)
		assert.Equal(t, 2.0, resp.TotalSpent)
		assert.Equal(t, 15.0, resp.TotalWinnings)
	})

	t.Run("unknown game filter", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/encounters?game=keno", nil)
		w := httptest.NewRecorder()

		h.HandleListEncounters(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty log encodes an empty array", func(t *testing.T) {
		empty := NewEncounterHandler(encounter.NewService(memory.NewEncounterRepository()))
		req := httptest.NewRequest(http.MethodGet, "/api/v1/encounters", nil)
		w := httptest.NewRecorder()

		empty.HandleListEncounters(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"encounters":[]`)
	})

	t.Run("service failure hides details", func(t *testing.T) {
		mockSvc := &MockEncounterService{}
		mockSvc.On("ListEncounters", mock.Anything).Return(nil, errors.New("disk on fire"))
		req := httptest.NewRequest(http.MethodGet, "/api/v1/encounters", nil)
		w := httptest.NewRecorder()

		NewEncounterHandler(mockSvc).HandleListEncounters(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "disk on fire")
		assert.Contains(t, w.Body.String(), ErrMsgGenericServerError)
	})
}

func TestHandleGetEncounter(t *testing.T) {
	h := NewEncounterHandler(encounter.NewService(memory.NewSeededEncounterRepository()))

	t.Run("found", func(t *testing.T) {
		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/encounters/2", nil), "id", "2")
		w := httptest.NewRecorder()

		h.HandleGetEncounter(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var e domain.Encounter
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
		assert.Equal(t, domain.GameMegaMillions, e.GameType)
		assert.Equal(t, "Mega Ball", e.Numbers.SpecialLabel)
		require.NotNil(t, e.Result)
		assert.Equal(t, domain.ResultMatched2, *e.Result)
	})

	t.Run("not found", func(t *testing.T) {
		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/encounters/x", nil), "id", "x")
		w := httptest.NewRecorder()

		h.HandleGetEncounter(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgEncounterNotFoundError)
	})

	t.Run("missing id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/encounters/", nil)
		w := httptest.NewRecorder()

		h.HandleGetEncounter(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleRecordEncounter(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedBody   string
	}{
		{"minimal", `{"game_type":"pick-3","main_numbers":[1,2,3]}`, http.StatusCreated, `"cost":1`},
		{"full", `{"date":"2024-04-02","game_type":"powerball","main_numbers":[1,2,3,4,5],"special_number":9,"cost":2,"result":"matched-2","win_amount":4,"notes":"lunch break"}`, http.StatusCreated, `"notes":"lunch break"`},
		{"rfc3339 date", `{"date":"2024-04-02T18:30:00Z","game_type":"pick-6","main_numbers":[1,2,3,4,5,6]}`, http.StatusCreated, `"date":"2024-04-02T18:30:00Z"`},
		{"negative cost accepted", `{"game_type":"pick-3","main_numbers":[1,2,3],"cost":-1}`, http.StatusCreated, `"cost":-1`},
		{"unknown game", `{"game_type":"keno","main_numbers":[1]}`, http.StatusBadRequest, "Invalid game type"},
		{"no numbers", `{"game_type":"pick-3","main_numbers":[]}`, http.StatusBadRequest, "main_numbers"},
		{"bad result", `{"game_type":"pick-3","main_numbers":[1],"result":"won-big"}`, http.StatusBadRequest, "Invalid result"},
		{"bad date", `{"game_type":"pick-3","main_numbers":[1],"date":"03/15/2024"}`, http.StatusBadRequest, "YYYY-MM-DD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewEncounterHandler(encounter.NewService(memory.NewEncounterRepository()))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/encounters", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			h.HandleRecordEncounter(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleRecordEncounter_PassesFieldsToService(t *testing.T) {
	InitValidator()
	mockSvc := &MockEncounterService{}

	win := 4.0
	result := domain.ResultMatched2
	cost := 2.0
	special := 9
	expected := domain.NewEncounter{
		Date:      time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC),
		GameType:  domain.GamePowerball,
		Numbers:   domain.DrawResult{MainNumbers: []int{1, 2, 3, 4, 5}, SpecialNumber: &special},
		Cost:      &cost,
		Result:    &result,
		WinAmount: &win,
	}
	mockSvc.On("RecordEncounter", mock.Anything, expected).Return(&domain.Encounter{ID: "new"}, nil)

	body := `{"date":"2024-04-02","game_type":"powerball","main_numbers":[1,2,3,4,5],"special_number":9,"cost":2,"result":"matched-2","win_amount":4}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/encounters", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	NewEncounterHandler(mockSvc).HandleRecordEncounter(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockSvc.AssertExpectations(t)
}
