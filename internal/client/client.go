// Package client provides a typed HTTP client for the strand API, used by
// the CLI and the integration tests.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dreamware/strand/internal/errors"
	"github.com/dreamware/strand/internal/filter"
	"github.com/dreamware/strand/internal/storage"
)

// ListResult is the response of the listing endpoints
type ListResult struct {
	Data           []storage.Entry `json:"data"`
	Count          int             `json:"count"`
	FiltersApplied filter.Criteria `json:"filters_applied"`
}

// InterpretedQuery echoes a natural-language query and its translation
type InterpretedQuery struct {
	Original      string          `json:"original"`
	ParsedFilters filter.Criteria `json:"parsed_filters"`
}

// NaturalLanguageResult is the response of the natural-language endpoint
type NaturalLanguageResult struct {
	ListResult
	InterpretedQuery InterpretedQuery `json:"interpreted_query"`
}

// Client talks to a strand server over HTTP
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the server at baseURL, e.g. "http://127.0.0.1:8080"
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

// CreateString submits value for analysis and storage
func (c *Client) CreateString(ctx context.Context, value string) (storage.Entry, error) {
	var entry storage.Entry
	body := map[string]string{"value": value}
	err := c.postJSON(ctx, "/strings", body, &entry)
	return entry, err
}

// GetString fetches the entry stored for value
func (c *Client) GetString(ctx context.Context, value string) (storage.Entry, error) {
	var entry storage.Entry
	err := c.getJSON(ctx, "/strings/"+url.PathEscape(value), &entry)
	return entry, err
}

// DeleteString removes the entry stored for value
func (c *Client) DeleteString(ctx context.Context, value string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
		c.baseURL+"/strings/"+url.PathEscape(value), nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// ListStrings lists entries narrowed by the given criteria.
// Nil criteria fields are omitted from the query string.
func (c *Client) ListStrings(ctx context.Context, criteria filter.Criteria) (ListResult, error) {
	var result ListResult
	err := c.getJSON(ctx, "/strings"+criteriaQuery(criteria), &result)
	return result, err
}

// FilterByNaturalLanguage runs a natural-language query
func (c *Client) FilterByNaturalLanguage(ctx context.Context, query string) (NaturalLanguageResult, error) {
	var result NaturalLanguageResult
	err := c.getJSON(ctx, "/strings/filter-by-natural-language?query="+url.QueryEscape(query), &result)
	return result, err
}

// Stats fetches store operation statistics
func (c *Client) Stats(ctx context.Context) (storage.StoreStats, error) {
	var stats storage.StoreStats
	err := c.getJSON(ctx, "/stats", &stats)
	return stats, err
}

// Health checks the liveness endpoint
func (c *Client) Health(ctx context.Context) error {
	return c.getJSON(ctx, "/healthz", nil)
}

// criteriaQuery renders present criteria fields as a query string
func criteriaQuery(criteria filter.Criteria) string {
	q := url.Values{}
	if criteria.IsPalindrome != nil {
		q.Set("is_palindrome", boolString(*criteria.IsPalindrome))
	}
	if criteria.MinLength != nil {
		q.Set("min_length", strconv.Itoa(*criteria.MinLength))
	}
	if criteria.MaxLength != nil {
		q.Set("max_length", strconv.Itoa(*criteria.MaxLength))
	}
	if criteria.WordCount != nil {
		q.Set("word_count", strconv.Itoa(*criteria.WordCount))
	}
	if criteria.ContainsCharacter != nil {
		q.Set("contains_character", *criteria.ContainsCharacter)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// postJSON posts body as JSON and decodes the response into out
func (c *Client) postJSON(ctx context.Context, path string, body any, out any) error {
	reqBody, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+path, bytes.NewReader(reqBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// getJSON fetches path and decodes the response into out
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// do executes the request and maps error statuses onto the service
// sentinels so callers can classify failures with errors.Is.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var envelope struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		if envelope.Error == "" {
			envelope.Error = resp.Status
		}
		switch resp.StatusCode {
		case http.StatusBadRequest:
			return errors.Wrap(errors.ErrInvalidRequest, envelope.Error)
		case http.StatusNotFound:
			return errors.Wrap(errors.ErrNotFound, envelope.Error)
		case http.StatusConflict:
			return errors.Wrap(errors.ErrConflict, envelope.Error)
		default:
			return errors.Newf("http %s: %d: %s", req.URL, resp.StatusCode, envelope.Error)
		}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
