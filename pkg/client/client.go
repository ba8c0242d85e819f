// Package client is the data-fetch layer for the user directory API. It
// wraps the five REST calls plus the health check behind a small typed
// surface and turns non-2xx envelopes into *APIError values.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/userhub/user-service/internal/users"
)

// User mirrors the record shape returned by the API.
type User struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	PhoneNumber string    `json:"phoneNumber"`
	CompanyName string    `json:"companyName"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Patch carries the business fields to change in an update call. Nil fields
// are omitted from the request body.
type Patch struct {
	Name        *string `json:"name,omitempty"`
	Address     *string `json:"address,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	CompanyName *string `json:"companyName,omitempty"`
}

// Health is the payload of GET /api/health.
type Health struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Uptime      string `json:"uptime"`
	Environment string `json:"environment"`
}

// APIError is a non-2xx response translated into an error. Error() prefers
// the server-supplied detail over the generic message.
type APIError struct {
	Status  int
	Message string
	Errors  []string
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		return strings.Join(e.Errors, ", ")
	}
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// NotFound reports whether the error represents a missing record.
func (e *APIError) NotFound() bool { return e.Status == http.StatusNotFound }

type Client struct {
	baseURL string
	hc      *http.Client
}

// New creates a client for the API at baseURL (e.g. "http://localhost:5000").
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: 15 * time.Second},
	}
}

// NewWithHTTPClient creates a client using the given http.Client.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), hc: hc}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []string        `json:"errors"`
	Error   string          `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response (%s %s, status %d): %w", method, path, resp.StatusCode, err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode, Message: env.Message, Errors: env.Errors}
		if apiErr.Message == "" {
			apiErr.Message = env.Error
		}
		return apiErr
	}

	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode payload: %w", err)
		}
	}
	return nil
}

// ListUsers returns all records.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var out []User
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetUser returns one record by id.
func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	var out User
	if err := c.do(ctx, http.MethodGet, "/api/users/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateUser submits the four business fields and returns the created record.
func (c *Client) CreateUser(ctx context.Context, in users.Input) (*User, error) {
	var out User
	if err := c.do(ctx, http.MethodPost, "/api/users", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser applies a full or partial patch and returns the updated record.
func (c *Client) UpdateUser(ctx context.Context, id string, p Patch) (*User, error) {
	var out User
	if err := c.do(ctx, http.MethodPut, "/api/users/"+id, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser removes a record by id.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/users/"+id, nil, nil)
}

// Health fetches the service health payload.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Status: resp.StatusCode, Message: "health check failed"}
	}
	var h Health
	if err := json.NewDecoder(resp.Body).Decode(&h); err != nil {
		return nil, err
	}
	return &h, nil
}
