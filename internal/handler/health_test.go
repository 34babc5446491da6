package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/LuckyGen_Go/internal/database/memory"
)

// MockPinger mocks the Pinger interface
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	handler := HandleHealthz()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	t.Run("Storage Reachable - Success", func(t *testing.T) {
		mockStore := &MockPinger{}
		mockStore.On("Ping", mock.Anything).Return(nil)

		req := httptest.NewRequest("GET", "/readyz", nil)
		w := httptest.NewRecorder()

		HandleReadyz(mockStore).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
		mockStore.AssertExpectations(t)
	})

	t.Run("In-memory repository", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/readyz", nil)
		w := httptest.NewRecorder()

		HandleReadyz(memory.NewEncounterRepository()).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Storage Unavailable", func(t *testing.T) {
		mockStore := &MockPinger{}
		mockStore.On("Ping", mock.Anything).Return(assert.AnError)

		req := httptest.NewRequest("GET", "/readyz", nil)
		w := httptest.NewRecorder()

		HandleReadyz(mockStore).ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"unavailable"`)
		assert.Contains(t, w.Body.String(), `"message":"encounter storage unavailable"`)
		mockStore.AssertExpectations(t)
	})

	t.Run("Storage Timeout", func(t *testing.T) {
		mockStore := &MockPinger{}
		mockStore.On("Ping", mock.Anything).Return(context.DeadlineExceeded)

		req := httptest.NewRequest("GET", "/readyz", nil)
		w := httptest.NewRecorder()

		HandleReadyz(mockStore).ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		mockStore.AssertExpectations(t)
	})

	t.Run("Ping receives a deadline", func(t *testing.T) {
		mockStore := &MockPinger{}
		mockStore.On("Ping", mock.MatchedBy(func(ctx context.Context) bool {
			_, ok := ctx.Deadline()
			return ok
		})).Return(errors.New("refused"))

		req := httptest.NewRequest("GET", "/readyz", nil)
		w := httptest.NewRecorder()

		HandleReadyz(mockStore).ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		mockStore.AssertExpectations(t)
	})
}

func TestHandleVersion(t *testing.T) {
	req := httptest.NewRequest("GET", "/version", nil)
	w := httptest.NewRecorder()

	HandleVersion("luckygen", "1.4.0").ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"service":"luckygen"`)
	assert.Contains(t, w.Body.String(), `"version":"1.4.0"`)
	assert.Contains(t, w.Body.String(), `"go_version":"go`)
}

func TestResolveVersion(t *testing.T) {
	assert.Equal(t, "2.0.0", resolveVersion("2.0.0"))
	assert.Equal(t, "dev", resolveVersion(""))

	orig := Version
	t.Cleanup(func() { Version = orig })
	Version = "9.9.9"
	assert.Equal(t, "9.9.9", resolveVersion("2.0.0"))
}
