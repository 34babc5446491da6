package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/osse101/LuckyGen_Go/internal/domain"
	"github.com/osse101/LuckyGen_Go/internal/handler"
)

// ErrUnauthorized is returned when the API rejects the configured key
var ErrUnauthorized = errors.New("API rejected the API key")

// APIClient handles communication with the LuckyGen HTTP API.
// Outgoing requests are throttled, and a run of failed calls opens a
// circuit breaker so commands fail fast while the API is down.
type APIClient struct {
	BaseURL    string
	Client     *http.Client
	APIKey     string
	MaxRetries int
	RetryDelay time.Duration

	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: DefaultClientTimeout,
		},
		APIKey:     apiKey,
		MaxRetries: DefaultMaxRetries,
		RetryDelay: DefaultRetryDelay,
		limiter:    rate.NewLimiter(rate.Limit(DefaultRequestsPerSecond), DefaultRequestBurst),
		breaker:    newBreaker(),
	}
}

func newBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    breakerName,
		Timeout: DefaultBreakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= DefaultBreakerFailures
		},
		// A cancelled interaction says nothing about the API's health
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn(LogMsgBreakerStateChange, "breaker", name, "from", from.String(), "to", to.String())
		},
	})
}

// doRequest sends the request through the circuit breaker
func (c *APIClient) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	if c.breaker == nil {
		return c.doRequestWithRetry(ctx, method, path, body)
	}
	out, err := c.breaker.Execute(func() (interface{}, error) {
		return c.doRequestWithRetry(ctx, method, path, body)
	})
	if err != nil {
		return nil, err
	}
	return out.(*http.Response), nil
}

// doRequestWithRetry performs an HTTP request, retrying transport failures and 5xx responses
func (c *APIClient) doRequestWithRetry(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgMarshalBody, err)
		}
	}

	url := c.BaseURL + path

	var lastErr error
	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff with jitter
			jitter := time.Duration(rand.IntN(100)) * time.Millisecond //nolint:gosec // Jitter only
			delay := c.RetryDelay*time.Duration(1<<uint(attempt-1)) + jitter
			slog.Info(LogMsgRetryingRequest, "attempt", attempt, "path", path, "delay", delay)

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(reqBody))
		if err != nil {
			return nil, fmt.Errorf(ErrMsgCreateRequest, err)
		}

		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set(HeaderAPIKey, c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			slog.Warn(LogMsgRequestFailed, "error", err, "attempt", attempt)
			continue
		}

		// Success or non-retryable error
		if resp.StatusCode < http.StatusInternalServerError {
			return resp, nil
		}

		_ = resp.Body.Close()
		lastErr = fmt.Errorf(ErrMsgServerStatus, resp.StatusCode)
		slog.Warn(LogMsgServerErrorRetry, "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf(ErrMsgMaxRetries, lastErr)
}

// call performs a request and decodes a successful response into out
func (c *APIClient) call(ctx context.Context, method, path string, body, out any, okStatus int) error {
	resp, err := c.doRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	if resp.StatusCode != okStatus {
		var errResp handler.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("%s%s", apiErrorPrefix, errResp.Error)
		}
		return fmt.Errorf(ErrMsgUnexpectedStatus, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf(ErrMsgDecodeResponse, err)
	}
	return nil
}

// GetGames returns the game table
func (c *APIClient) GetGames(ctx context.Context) ([]domain.GameConfig, error) {
	var resp handler.GamesResponse
	if err := c.call(ctx, http.MethodGet, PathGames, nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return resp.Games, nil
}

// GenerateNumbers asks the server for a fresh draw
func (c *APIClient) GenerateNumbers(ctx context.Context, gameType domain.GameType) (*handler.GenerateNumbersResponse, error) {
	req := handler.GenerateNumbersRequest{GameType: string(gameType)}

	var resp handler.GenerateNumbersResponse
	if err := c.call(ctx, http.MethodPost, PathGenerate, req, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListEncounters returns the encounter log with totals
func (c *APIClient) ListEncounters(ctx context.Context) (*handler.EncounterListResponse, error) {
	var resp handler.EncounterListResponse
	if err := c.call(ctx, http.MethodGet, PathEncounters, nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetSummary returns the pattern summary
func (c *APIClient) GetSummary(ctx context.Context) (*handler.SummaryResponse, error) {
	var resp handler.SummaryResponse
	if err := c.call(ctx, http.MethodGet, PathSummary, nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Healthy reports whether the API answers its liveness probe
func (c *APIClient) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+PathHealthz, nil)
	if err != nil {
		return false
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
