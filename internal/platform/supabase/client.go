// Package supabase is a minimal client for the two Supabase REST surfaces the
// gateway needs: PostgREST row operations and Storage object operations.
//
// The client is an immutable handle constructed once from configuration and
// passed explicitly to the stores; it holds no per-request state.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotFound is returned when a single-row lookup matches nothing.
var ErrNotFound = errors.New("supabase: row not found")

// APIError carries the status and PostgREST error body of a failed call.
type APIError struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("supabase: %s (status %d, code %s)", e.Message, e.StatusCode, e.Code)
	}
	return fmt.Sprintf("supabase: request failed (status %d)", e.StatusCode)
}

// IsConflict reports whether err is a uniqueness or duplicate-key failure.
// PostgREST surfaces Postgres unique violations as 409 with code 23505.
func IsConflict(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == http.StatusConflict || apiErr.Code == "23505"
}

// Client talks to a single Supabase project using the service-role key.
type Client struct {
	restURL    string
	storageURL string
	key        string
	httpClient *http.Client
}

// New builds a Client for the given project URL and key.
func New(projectURL, key string) *Client {
	base := strings.TrimRight(projectURL, "/")
	return &Client{
		restURL:    base + "/rest/v1",
		storageURL: base + "/storage/v1",
		key:        key,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Filters restricts row operations to rows whose column equals the value.
// All entries are combined with AND, using the PostgREST eq operator.
type Filters map[string]string

func (f Filters) encode(q url.Values) {
	for col, val := range f {
		q.Set(col, "eq."+val)
	}
}

// Insert creates a row in table. When into is non-nil the representation
// returned by the backend (including generated columns) is decoded into it.
func (c *Client) Insert(ctx context.Context, table string, row any, into any) error {
	body, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("supabase: marshal %s row: %w", table, err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, c.restURL+"/"+table, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if into != nil {
		req.Header.Set("Prefer", "return=representation")
	} else {
		req.Header.Set("Prefer", "return=minimal")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("supabase: insert into %s: %w", table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return readAPIError(resp)
	}
	if into == nil {
		return nil
	}

	// PostgREST returns the representation as an array of rows.
	var rows []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return fmt.Errorf("supabase: decode %s representation: %w", table, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("supabase: insert into %s returned no representation", table)
	}
	return json.Unmarshal(rows[0], into)
}

// SelectSingle fetches exactly one row from table into dest. Returns
// ErrNotFound when no row matches the filters.
func (c *Client) SelectSingle(ctx context.Context, table string, columns string, filters Filters, dest any) error {
	q := url.Values{}
	if columns == "" {
		columns = "*"
	}
	q.Set("select", columns)
	filters.encode(q)

	req, err := c.newRequest(ctx, http.MethodGet, c.restURL+"/"+table+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	// Single-object mode: 2xx with one row, 406 when zero or many match.
	req.Header.Set("Accept", "application/vnd.pgrst.object+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("supabase: select from %s: %w", table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotAcceptable || resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode >= 400 {
		return readAPIError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}

// Delete removes all rows in table matching the filters. Filters must not be
// empty; an unfiltered delete would truncate the table.
func (c *Client) Delete(ctx context.Context, table string, filters Filters) error {
	if len(filters) == 0 {
		return fmt.Errorf("supabase: refusing unfiltered delete from %s", table)
	}
	q := url.Values{}
	filters.encode(q)

	req, err := c.newRequest(ctx, http.MethodDelete, c.restURL+"/"+table+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("supabase: delete from %s: %w", table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return readAPIError(resp)
	}
	return nil
}

// Ping verifies the REST endpoint is reachable with the configured key.
func (c *Client) Ping(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodGet, c.restURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("supabase: ping: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return fmt.Errorf("supabase: ping failed (status %d)", resp.StatusCode)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, u string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("supabase: create request: %w", err)
	}
	req.Header.Set("apikey", c.key)
	req.Header.Set("Authorization", "Bearer "+c.key)
	return req, nil
}

func readAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil {
		_ = json.Unmarshal(body, apiErr)
	}
	return apiErr
}
