//go:build staging

// Package staging runs smoke checks against a deployed LuckyGen API.
// Point API_URL and API_KEY at the target and run with -tags staging.
package staging

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	defaultStagingURL = "http://localhost:8080"
	defaultAPIKey     = "test-api-key"
)

var (
	stagingURL string
	apiKey     string
	client     *http.Client
)

func TestMain(m *testing.M) {
	stagingURL = envOr("API_URL", defaultStagingURL)
	apiKey = envOr("API_KEY", defaultAPIKey)
	client = &http.Client{Timeout: 10 * time.Second}

	os.Exit(m.Run())
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// makeRequest sends an authenticated request and returns the response with its body read
func makeRequest(t *testing.T, method, path string, body any) (*http.Response, []byte) {
	return doRequest(t, method, path, body, apiKey)
}

func doRequest(t *testing.T, method, path string, body any, key string) (*http.Response, []byte) {
	t.Helper()

	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, stagingURL+path, bodyReader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if key != "" {
		req.Header.Set("X-API-Key", key)
	}

	resp, err := client.Do(req)
	require.NoError(t, err, "request to %s", req.URL)

	respBody, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	return resp, respBody
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return out
}
