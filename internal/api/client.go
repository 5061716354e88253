package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"driverapp/internal/domain"
	"driverapp/internal/utils"
)

// TokenSource hands the client the current bearer token; the session
// store satisfies it.
type TokenSource interface {
	Token() string
}

// Client talks to the ride-share backend. One in-flight request per
// user action; timeout policy is whatever the HTTP client carries.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// New builds a backend client. The base URL is configuration, not
// contract; it varies across deployments.
func New(baseURL string, tokens TokenSource, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do issues one JSON request. When auth is set, a missing token fails
// fast with an AuthError before anything goes on the wire.
func (c *Client) do(ctx context.Context, method, path string, body, out any, auth bool) error {
	rid := uuid.NewString()

	var token string
	if auth {
		token = c.tokens.Token()
		if token == "" {
			return domain.AuthError{Msg: "user not authenticated"}
		}
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return domain.InternalError{Msg: "failed to encode request", Err: err}
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return domain.InternalError{Msg: "failed to build request", Err: err}
	}
	req.Header.Set("X-Request-ID", rid)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	utils.LogEvent(rid, "api", "request", method+" "+path)

	resp, err := c.http.Do(req)
	if err != nil {
		utils.LogError(rid, "api", "request", err)
		return domain.ProviderError{Provider: "backend", Msg: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.errorFromResponse(rid, resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			utils.LogError(rid, "api", "decode", err)
			return domain.ProviderError{Provider: "backend", Msg: "invalid response", Err: err}
		}
	}
	return nil
}

func (c *Client) errorFromResponse(rid string, resp *http.Response) error {
	msg := ""
	var decoded errorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&decoded); err == nil {
		if decoded.Message != "" {
			msg = decoded.Message
		} else {
			msg = decoded.Error
		}
	}
	if msg == "" {
		msg = fmt.Sprintf("backend returned %d", resp.StatusCode)
	}

	utils.LogEvent(rid, "api", "response", fmt.Sprintf("status=%d msg=%s", resp.StatusCode, msg))

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.AuthError{Msg: msg}
	case http.StatusNotFound:
		return domain.NotFoundError{Resource: msg}
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ValidationError{Msg: msg}
	default:
		return domain.ProviderError{Provider: "backend", Msg: msg}
	}
}
