// Package client provides an HTTP client for the listings backend API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fjordhomes/listing-composer/internal/listing"
)

// Backend endpoints. The listing id travels as a form field on edit, never
// in the URL path.
const (
	createPath  = "/listings/listing"
	editPath    = "/listings/edit-listing"
	getByIDPath = "/listings/getById"
)

// Client is an HTTP client for the listings backend.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a backend client with the session's API token.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// FieldError is one entry of the backend's structured validation response.
type FieldError struct {
	Path    []string `json:"path"`
	Message string   `json:"message"`
}

// APIError is a non-2xx response from the backend. Fields is populated when
// the backend returned structured validation errors.
type APIError struct {
	StatusCode int
	Message    string
	Fields     []FieldError
}

// Error aggregates the backend's field errors into a single message naming
// each offending field.
func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		parts := make([]string, len(e.Fields))
		for i, f := range e.Fields {
			parts[i] = strings.Join(f.Path, ".") + ": " + f.Message
		}
		return strings.Join(parts, "; ")
	}
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server error: %s", http.StatusText(e.StatusCode))
}

// GetListing fetches an existing listing to hydrate an edit-mode draft.
func (c *Client) GetListing(ctx context.Context, id string, t listing.Type) (*listing.Record, error) {
	url := fmt.Sprintf("%s%s/%s/%s", c.baseURL, getByIDPath, id, t)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	var rec listing.Record
	if err := c.do(req, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// CreateListing posts a new listing as a multipart body.
func (c *Client) CreateListing(ctx context.Context, body io.Reader, contentType string) error {
	return c.submit(ctx, "POST", createPath, body, contentType)
}

// UpdateListing puts an edited listing as a multipart body.
func (c *Client) UpdateListing(ctx context.Context, body io.Reader, contentType string) error {
	return c.submit(ctx, "PUT", editPath, body, contentType)
}

func (c *Client) submit(ctx context.Context, method, path string, body io.Reader, contentType string) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	return c.do(req, nil)
}

// do executes a request with the auth header, decoding a success body into
// result and non-2xx bodies into an APIError.
func (c *Client) do(req *http.Request, result interface{}) (err error) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing response body: %w", closeErr)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return parseAPIError(resp.StatusCode, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

// parseAPIError decodes the two error shapes the backend produces: a
// structured {errors: [...]} list, or a {message, error} pair.
func parseAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}

	var structured struct {
		Errors []FieldError `json:"errors"`
	}
	if json.Unmarshal(body, &structured) == nil && len(structured.Errors) > 0 {
		apiErr.Fields = structured.Errors
		return apiErr
	}

	var plain struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(body, &plain) == nil {
		if plain.Message != "" {
			apiErr.Message = plain.Message
		} else if plain.Error != "" {
			apiErr.Message = plain.Error
		}
	}

	return apiErr
}
