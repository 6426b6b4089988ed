// Package api is the HTTP client for the remote LMS API: envelope reads
// on mount, full-envelope writes on save, and the read-only course
// lookup. It owns no state; the builder's in-memory copy remains the
// source of truth after a successful save.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lumenlearn/pagecraft/internal/domain"
)

// Client talks to the remote LMS API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying http.Client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a client for the given API base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// orgResponse mirrors the org read shape: the landing document nests
// under config.config.landing.
type orgResponse struct {
	Config struct {
		Config struct {
			Landing json.RawMessage `json:"landing"`
		} `json:"config"`
	} `json:"config"`
	Previews json.RawMessage `json:"previews"`
}

// GetOrgLanding fetches the org's landing document. A missing or
// malformed document returns nil bytes and no error: the builder
// hydrates an empty envelope in that case.
func (c *Client) GetOrgLanding(ctx context.Context, orgID, token string) ([]byte, error) {
	body, err := c.get(ctx, fmt.Sprintf("/orgs/%s", orgID), token)
	if err != nil {
		return nil, err
	}
	var org orgResponse
	if err := json.Unmarshal(body, &org); err != nil {
		return nil, nil
	}
	return org.Config.Config.Landing, nil
}

// GetOrgPreviews fetches the org's stored preview media config.
func (c *Client) GetOrgPreviews(ctx context.Context, orgID, token string) ([]byte, error) {
	body, err := c.get(ctx, fmt.Sprintf("/orgs/%s", orgID), token)
	if err != nil {
		return nil, err
	}
	var org orgResponse
	if err := json.Unmarshal(body, &org); err != nil {
		return nil, nil
	}
	return org.Previews, nil
}

// UpdateOrgLanding overwrites the org's landing document with the given
// envelope payload. Last write wins; there is no merge and no version
// check.
func (c *Client) UpdateOrgLanding(ctx context.Context, orgID string, envelope any, token string) error {
	return c.put(ctx, fmt.Sprintf("/orgs/%s/landing", orgID), envelope, token)
}

// UpdateOrgPreviews overwrites the org's stored preview media config.
func (c *Client) UpdateOrgPreviews(ctx context.Context, orgID string, previews any, token string) error {
	return c.put(ctx, fmt.Sprintf("/orgs/%s/previews", orgID), previews, token)
}

// GetUser fetches the full user object. The profile builder reads fresh
// user data right before a save so only the profile field is replaced.
func (c *Client) GetUser(ctx context.Context, userID, token string) (map[string]json.RawMessage, error) {
	body, err := c.get(ctx, fmt.Sprintf("/users/%s", userID), token)
	if err != nil {
		return nil, err
	}
	var user map[string]json.RawMessage
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("decoding user: %w", err)
	}
	return user, nil
}

// UpdateUserProfile writes the user object back with its profile field
// replaced by the given envelope.
func (c *Client) UpdateUserProfile(ctx context.Context, userID string, user map[string]json.RawMessage, envelope any, token string) error {
	raw, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshalling profile: %w", err)
	}
	if user == nil {
		user = map[string]json.RawMessage{}
	}
	user["profile"] = raw
	return c.put(ctx, fmt.Sprintf("/users/%s", userID), user, token)
}

// ListOrgCourses fetches the org's courses for read-only selection UI.
func (c *Client) ListOrgCourses(ctx context.Context, orgSlug, token string) ([]domain.Course, error) {
	body, err := c.get(ctx, fmt.Sprintf("/orgs/slug/%s/courses", orgSlug), token)
	if err != nil {
		return nil, err
	}
	var courses []domain.Course
	if err := json.Unmarshal(body, &courses); err != nil {
		return nil, fmt.Errorf("decoding course list: %w", err)
	}
	return courses, nil
}

func (c *Client) get(ctx context.Context, path, token string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: %w (status %d)", path, domain.ErrNotFound, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (c *Client) put(ctx context.Context, path string, payload any, token string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshalling payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	c.setHeaders(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("PUT %s: %w", path, err)
	}
	defer resp.Body.Close()

	// Only a 200 counts as success; anything else surfaces as a failed
	// save and leaves local state untouched.
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("PUT %s: %w (status %d)", path, domain.ErrSaveFailed, resp.StatusCode)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request, token string) {
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}
