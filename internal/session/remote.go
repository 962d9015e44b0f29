package session

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxUserBody caps how much of the auth service's reply is read.
const maxUserBody = 1 << 20

// RemoteChecker asks the hosted auth service who owns a token by calling
// GET {baseURL}/auth/v1/user.
type RemoteChecker struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewRemoteChecker returns a checker for the auth service at baseURL.
// A nil client means http.DefaultClient.
func NewRemoteChecker(baseURL, apiKey string, client *http.Client) *RemoteChecker {
	if client == nil {
		client = http.DefaultClient
	}
	return &RemoteChecker{baseURL: baseURL, apiKey: apiKey, client: client}
}

type remoteUser struct {
	ID string `json:"id"`
}

// Check maps the auth service's answer onto a Result:
// 200 with a user id is authenticated, 401/403 or a 200 without an id is
// unauthenticated, and anything else, including transport failures, is an
// error.
func (c *RemoteChecker) Check(ctx context.Context, token string) Result {
	if token == "" {
		return Result{Status: StatusUnauthenticated}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return Result{Status: StatusError, Err: fmt.Errorf("session.RemoteChecker: build request: %w", err)}
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Result{Status: StatusError, Err: fmt.Errorf("session.RemoteChecker: %w", err)}
	}
	defer resp.Body.Close()
	body := io.LimitReader(resp.Body, maxUserBody)

	switch resp.StatusCode {
	case http.StatusOK:
		var u remoteUser
		if err := json.NewDecoder(body).Decode(&u); err != nil {
			return Result{Status: StatusError, Err: fmt.Errorf("session.RemoteChecker: decode user: %w", err)}
		}
		if u.ID == "" {
			return Result{Status: StatusUnauthenticated}
		}
		return Result{Status: StatusAuthenticated, UserID: u.ID}
	case http.StatusUnauthorized, http.StatusForbidden:
		_, _ = io.Copy(io.Discard, body)
		return Result{Status: StatusUnauthenticated}
	default:
		_, _ = io.Copy(io.Discard, body)
		return Result{Status: StatusError, Err: fmt.Errorf("session.RemoteChecker: auth service returned %d", resp.StatusCode)}
	}
}
