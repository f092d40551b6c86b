// Package api implements the HTTP client for the workspace service. It is
// the only place that talks to the network: the compiler hands it typed
// filters and write payloads, and it serializes them as-is into request
// bodies. No retries and no caching live here; a failed call surfaces as an
// error for the CLI layer to report.
package api

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

	"github.com/lcampos/quill/internal/workspace"
)

const (
	// DefaultBaseURL is the hosted service endpoint.
	DefaultBaseURL = "https://api.notion.com/v1"

	// apiVersion is sent on every request; the service versions its wire
	// format through this header.
	apiVersion = "2022-06-28"

	requestTimeout = 30 * time.Second
)

// ErrNotFound wraps 404 responses so callers can branch without string
// matching.
var ErrNotFound = errors.New("not found")

// APIError is a structured error decoded from the service's error body.
type APIError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api: %s (%s)", e.Message, e.Code)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

// Options configures a Client. The zero value plus a token is usable.
type Options struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// Client is a workspace service client. Methods are safe for concurrent use.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New builds a client from options, applying defaults.
func New(opts Options) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}
	return &Client{baseURL: baseURL, token: opts.Token, http: httpClient}
}

// do issues one request and decodes the response into out (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", apiVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil {
		_ = json.Unmarshal(raw, apiErr)
		apiErr.Status = resp.StatusCode
	}
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, apiErr.Message)
	}
	return apiErr
}

// Database fetches a database, including its property schema.
func (c *Client) Database(ctx context.Context, id string) (*workspace.Database, error) {
	var db workspace.Database
	if err := c.do(ctx, http.MethodGet, "/databases/"+url.PathEscape(id), nil, &db); err != nil {
		return nil, err
	}
	return &db, nil
}

// Schema fetches just the property schema of a database. This is the one
// schema fetch a command performs before compilation begins.
func (c *Client) Schema(ctx context.Context, databaseID string) (*workspace.Schema, error) {
	db, err := c.Database(ctx, databaseID)
	if err != nil {
		return nil, err
	}
	if db.Properties == nil {
		return nil, fmt.Errorf("database %s has no properties", databaseID)
	}
	return db.Properties, nil
}

// QueryRequest is the body of a database query.
type QueryRequest struct {
	Filter      *workspace.Filter `json:"filter,omitempty"`
	Sorts       []workspace.Sort  `json:"sorts,omitempty"`
	PageSize    int               `json:"page_size,omitempty"`
	StartCursor string            `json:"start_cursor,omitempty"`
}

// QueryResponse is one page of query results.
type QueryResponse struct {
	Results    []workspace.Page `json:"results"`
	HasMore    bool             `json:"has_more"`
	NextCursor string           `json:"next_cursor"`
}

// QueryDatabase runs one page of a database query.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, req QueryRequest) (*QueryResponse, error) {
	var out QueryResponse
	if err := c.do(ctx, http.MethodPost, "/databases/"+url.PathEscape(databaseID)+"/query", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// QueryAll follows cursors until the result set is exhausted.
func (c *Client) QueryAll(ctx context.Context, databaseID string, req QueryRequest) ([]workspace.Page, error) {
	var pages []workspace.Page
	for {
		resp, err := c.QueryDatabase(ctx, databaseID, req)
		if err != nil {
			return nil, err
		}
		pages = append(pages, resp.Results...)
		if !resp.HasMore || resp.NextCursor == "" {
			return pages, nil
		}
		req.StartCursor = resp.NextCursor
	}
}

// Page fetches one page by id.
func (c *Client) Page(ctx context.Context, id string) (*workspace.Page, error) {
	var p workspace.Page
	if err := c.do(ctx, http.MethodGet, "/pages/"+url.PathEscape(id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreatePage creates a record in a database with the given write payload.
func (c *Client) CreatePage(ctx context.Context, databaseID string, props workspace.WritePayload) (*workspace.Page, error) {
	body := map[string]any{
		"parent":     map[string]string{"database_id": databaseID},
		"properties": props,
	}
	var p workspace.Page
	if err := c.do(ctx, http.MethodPost, "/pages", body, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdatePage patches properties of an existing page.
func (c *Client) UpdatePage(ctx context.Context, id string, props workspace.WritePayload) (*workspace.Page, error) {
	body := map[string]any{"properties": props}
	var p workspace.Page
	if err := c.do(ctx, http.MethodPatch, "/pages/"+url.PathEscape(id), body, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ArchivePage marks a page archived (the service's soft delete).
func (c *Client) ArchivePage(ctx context.Context, id string) (*workspace.Page, error) {
	body := map[string]any{"archived": true}
	var p workspace.Page
	if err := c.do(ctx, http.MethodPatch, "/pages/"+url.PathEscape(id), body, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// BlockList is one page of child blocks.
type BlockList struct {
	Results    []workspace.Block `json:"results"`
	HasMore    bool              `json:"has_more"`
	NextCursor string            `json:"next_cursor"`
}

// BlockChildren lists the children of a block or page, following cursors.
func (c *Client) BlockChildren(ctx context.Context, id string) ([]workspace.Block, error) {
	var blocks []workspace.Block
	cursor := ""
	for {
		path := "/blocks/" + url.PathEscape(id) + "/children?page_size=100"
		if cursor != "" {
			path += "&start_cursor=" + url.QueryEscape(cursor)
		}
		var page BlockList
		if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
			return nil, err
		}
		blocks = append(blocks, page.Results...)
		if !page.HasMore || page.NextCursor == "" {
			return blocks, nil
		}
		cursor = page.NextCursor
	}
}

// AppendBlocks appends child blocks to a block or page. Children are raw
// block objects already in wire shape.
func (c *Client) AppendBlocks(ctx context.Context, id string, children []map[string]any) error {
	body := map[string]any{"children": children}
	return c.do(ctx, http.MethodPatch, "/blocks/"+url.PathEscape(id)+"/children", body, nil)
}

// DeleteBlock removes a block.
func (c *Client) DeleteBlock(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/blocks/"+url.PathEscape(id), nil, nil)
}

// UserList is one page of users.
type UserList struct {
	Results    []workspace.User `json:"results"`
	HasMore    bool             `json:"has_more"`
	NextCursor string           `json:"next_cursor"`
}

// Users lists all workspace users, following cursors.
func (c *Client) Users(ctx context.Context) ([]workspace.User, error) {
	var users []workspace.User
	cursor := ""
	for {
		path := "/users?page_size=100"
		if cursor != "" {
			path += "&start_cursor=" + url.QueryEscape(cursor)
		}
		var page UserList
		if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
			return nil, err
		}
		users = append(users, page.Results...)
		if !page.HasMore || page.NextCursor == "" {
			return users, nil
		}
		cursor = page.NextCursor
	}
}

// User fetches one user by id.
func (c *Client) User(ctx context.Context, id string) (*workspace.User, error) {
	var u workspace.User
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(id), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Me fetches the user the token authenticates as.
func (c *Client) Me(ctx context.Context) (*workspace.User, error) {
	var u workspace.User
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// CommentList is one page of comments.
type CommentList struct {
	Results    []workspace.Comment `json:"results"`
	HasMore    bool                `json:"has_more"`
	NextCursor string              `json:"next_cursor"`
}

// Comments lists the comments on a page or block.
func (c *Client) Comments(ctx context.Context, blockID string) ([]workspace.Comment, error) {
	var comments []workspace.Comment
	cursor := ""
	for {
		path := "/comments?block_id=" + url.QueryEscape(blockID)
		if cursor != "" {
			path += "&start_cursor=" + url.QueryEscape(cursor)
		}
		var page CommentList
		if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
			return nil, err
		}
		comments = append(comments, page.Results...)
		if !page.HasMore || page.NextCursor == "" {
			return comments, nil
		}
		cursor = page.NextCursor
	}
}

// CreateComment adds a comment to a page.
func (c *Client) CreateComment(ctx context.Context, pageID, text string) (*workspace.Comment, error) {
	body := map[string]any{
		"parent":    map[string]string{"page_id": pageID},
		"rich_text": []map[string]any{{"text": map[string]string{"content": text}}},
	}
	var out workspace.Comment
	if err := c.do(ctx, http.MethodPost, "/comments", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchResult is one page of search hits. Objects are raw because search
// returns pages and databases mixed.
type SearchResult struct {
	Results    []json.RawMessage `json:"results"`
	HasMore    bool              `json:"has_more"`
	NextCursor string            `json:"next_cursor"`
}

// Search runs the service-side text search.
func (c *Client) Search(ctx context.Context, query string, pageSize int) (*SearchResult, error) {
	body := map[string]any{"query": query}
	if pageSize > 0 {
		body["page_size"] = pageSize
	}
	var out SearchResult
	if err := c.do(ctx, http.MethodPost, "/search", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PageSizeOrDefault clamps a user-supplied page size to the service limit.
func PageSizeOrDefault(n int) int {
	const max = 100
	if n <= 0 {
		return max
	}
	if n > max {
		return max
	}
	return n
}
