// Package content is the boundary to the external headless content store.
// Pages are read through its query API; submitted inquiries are created
// through its mutation API.
package content

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/FaizBuildsStuff/matera-media/internal/common/config"
)

// ErrNoWriteToken is returned when a mutation is attempted without a
// write credential configured. Callers map this to a configuration
// error, not a downstream store error.
var ErrNoWriteToken = errors.New("content store write token not configured")

type Client struct {
	projectID  string
	dataset    string
	apiVersion string
	token      string
	useCDN     bool
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithBaseURL overrides the derived API base URL. Used by tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(cfg config.ContentConfig, opts ...Option) *Client {
	c := &Client{
		projectID:  cfg.ProjectID,
		dataset:    cfg.Dataset,
		apiVersion: cfg.APIVersion,
		token:      cfg.Token,
		useCDN:     cfg.UseCDN,
		httpClient: &http.Client{
			Timeout: config.GetDuration(cfg.Timeout),
		},
	}
	if c.httpClient.Timeout == 0 {
		c.httpClient.Timeout = 10 * time.Second
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) apiBase() string {
	if c.baseURL != "" {
		return c.baseURL
	}
	host := "api.sanity.io"
	if c.useCDN {
		host = "apicdn.sanity.io"
	}
	return fmt.Sprintf("https://%s.%s/v%s", c.projectID, host, c.apiVersion)
}

type queryResponse struct {
	Result json.RawMessage `json:"result"`
}

// Query runs a read query with named parameters and returns the raw
// result. A JSON null result is returned as-is; transport failures and
// non-2xx responses are errors.
func (c *Client) Query(ctx context.Context, query string, params map[string]interface{}) (json.RawMessage, error) {
	values := url.Values{}
	values.Set("query", query)
	for name, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("encode query param %s: %w", name, err)
		}
		values.Set("$"+name, string(encoded))
	}

	endpoint := fmt.Sprintf("%s/data/query/%s?%s", c.apiBase(), c.dataset, values.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("query failed (status %d): %s", resp.StatusCode, string(body))
	}

	var queryResp queryResponse
	if err := json.Unmarshal(body, &queryResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal query response: %w", err)
	}

	return queryResp.Result, nil
}

type mutationRequest struct {
	Mutations []map[string]interface{} `json:"mutations"`
}

// Create persists one new document. The store is the system of record;
// this service only ever creates, never reads back or updates.
func (c *Client) Create(ctx context.Context, doc map[string]interface{}) error {
	if c.token == "" {
		return ErrNoWriteToken
	}

	payload := mutationRequest{
		Mutations: []map[string]interface{}{
			{"create": doc},
		},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal mutation: %w", err)
	}

	endpoint := fmt.Sprintf("%s/data/mutate/%s", c.apiBase(), c.dataset)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute mutation: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("mutation failed (status %d): %s", resp.StatusCode, string(body))
	}

	return nil
}
