package console

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jtan/courtcast/go/internal/models"
)

// APIClient is the production Store: a thin client for the match REST API.
type APIClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewAPIClient creates a client for the API at baseURL using the given
// bearer token for write access.
func NewAPIClient(baseURL, token string, httpClient *http.Client) *APIClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: httpClient,
	}
}

func (c *APIClient) GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/matches/%s", id), nil)
}

func (c *APIClient) PatchMatch(ctx context.Context, id uuid.UUID, patch models.MatchPatch) (*models.Match, error) {
	body, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("failed to encode patch: %w", err)
	}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/matches/%s", id), body)
}

func (c *APIClient) do(ctx context.Context, method, path string, body []byte) (*models.Match, error) {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s %s", resp.StatusCode, method, path)
	}

	var m models.Match
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode match: %w", err)
	}
	return &m, nil
}
