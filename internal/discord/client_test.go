package discord

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LuckyGen_Go/internal/domain"
	"github.com/osse101/LuckyGen_Go/internal/handler"
)

func TestAPIClient_GenerateNumbers(t *testing.T) {
	tc := SetupTestContext(t)

	tc.Mux.HandleFunc("POST "+PathGenerate, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-api-key", r.Header.Get(HeaderAPIKey))

		var req handler.GenerateNumbersRequest
		require.NoError(t, decodeJSON(r, &req))
		assert.Equal(t, "pick-3", req.GameType)

		WriteJSON(w, http.StatusOK, handler.GenerateNumbersResponse{
			GameType:   domain.GamePick3,
			GameName:   "Pick 3",
			DrawResult: domain.DrawResult{MainNumbers: []int{1, 4, 8}},
			Formatted:  "1 - 4 - 8",
		})
	})

	resp, err := tc.APIClient.GenerateNumbers(context.Background(), domain.GamePick3)

	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 8}, resp.MainNumbers)
	assert.Equal(t, "1 - 4 - 8", resp.Formatted)
}

func TestAPIClient_ErrorBody(t *testing.T) {
	tc := SetupTestContext(t)

	tc.Mux.HandleFunc("POST "+PathGenerate, func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusBadRequest, handler.ErrorResponse{Error: handler.ErrMsgInvalidGameTypeError})
	})

	_, err := tc.APIClient.GenerateNumbers(context.Background(), "keno")

	require.Error(t, err)
	assert.Contains(t, err.Error(), handler.ErrMsgInvalidGameTypeError)
	assert.Equal(t, MsgInvalidGame, formatFriendlyError(err))
}

func TestAPIClient_Unauthorized(t *testing.T) {
	tc := SetupTestContext(t)

	tc.Mux.HandleFunc("GET "+PathSummary, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	})

	_, err := tc.APIClient.GetSummary(context.Background())

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAPIClient_RetriesServerErrors(t *testing.T) {
	tc := SetupTestContext(t)
	var calls atomic.Int32

	tc.Mux.HandleFunc("GET "+PathGames, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		WriteJSON(w, http.StatusOK, handler.GamesResponse{Games: []domain.GameConfig{{ID: domain.GamePick6}}})
	})

	games, err := tc.APIClient.GetGames(context.Background())

	require.NoError(t, err)
	assert.Len(t, games, 1)
	assert.Equal(t, int32(3), calls.Load())
}

func TestAPIClient_GivesUpAfterMaxRetries(t *testing.T) {
	tc := SetupTestContext(t)
	var calls atomic.Int32

	tc.Mux.HandleFunc("GET "+PathEncounters, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := tc.APIClient.ListEncounters(context.Background())

	require.Error(t, err)
	assert.Equal(t, int32(DefaultMaxRetries+1), calls.Load())
	assert.Equal(t, MsgServerUnavailable, formatFriendlyError(err))
}

func TestAPIClient_BreakerOpensAfterRepeatedFailures(t *testing.T) {
	tc := SetupTestContext(t)
	tc.APIClient.MaxRetries = 0
	var calls atomic.Int32

	tc.Mux.HandleFunc("GET "+PathSummary, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})

	for i := 0; i < DefaultBreakerFailures; i++ {
		_, err := tc.APIClient.GetSummary(context.Background())
		require.Error(t, err)
	}
	require.Equal(t, int32(DefaultBreakerFailures), calls.Load())

	_, err := tc.APIClient.GetSummary(context.Background())

	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, int32(DefaultBreakerFailures), calls.Load(), "open breaker must not reach the API")
	assert.Equal(t, MsgServerUnavailable, formatFriendlyError(err))
}

func TestAPIClient_ClientErrorsDoNotTripBreaker(t *testing.T) {
	tc := SetupTestContext(t)
	tc.Mux.HandleFunc("GET "+PathEncounters, func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusBadRequest, handler.ErrorResponse{Error: handler.ErrMsgInvalidGameTypeError})
	})

	for i := 0; i < DefaultBreakerFailures+2; i++ {
		_, err := tc.APIClient.ListEncounters(context.Background())
		require.Error(t, err)
		assert.NotErrorIs(t, err, gobreaker.ErrOpenState)
	}
}

func TestAPIClient_CanceledContext(t *testing.T) {
	tc := SetupTestContext(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tc.APIClient.GetSummary(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestAPIClient_Healthy(t *testing.T) {
	tc := SetupTestContext(t)
	assert.False(t, tc.APIClient.Healthy(context.Background()))

	tc.Mux.HandleFunc("GET "+PathHealthz, func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, handler.HealthResponse{Status: handler.HealthStatusOK})
	})
	assert.True(t, tc.APIClient.Healthy(context.Background()))
}
