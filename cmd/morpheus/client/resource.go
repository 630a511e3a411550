package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ResourceClient issues the standard calls for one REST collection such as
// /api/budgets. The *Request methods only build requests so callers can print
// them under --dry-run.
type ResourceClient struct {
	c    *Client
	path string
}

// Resource returns a client for the collection at path.
func (c *Client) Resource(path string) *ResourceClient {
	return &ResourceClient{c: c, path: path}
}

// Path returns the collection path.
func (r *ResourceClient) Path() string {
	return r.path
}

func (r *ResourceClient) itemPath(id int64) string {
	return fmt.Sprintf("%s/%d", r.path, id)
}

func (r *ResourceClient) ListRequest(params url.Values) Request {
	return Request{Method: http.MethodGet, Path: r.path, Query: params}
}

func (r *ResourceClient) GetRequest(id int64, params url.Values) Request {
	return Request{Method: http.MethodGet, Path: r.itemPath(id), Query: params}
}

func (r *ResourceClient) CreateRequest(body map[string]any) Request {
	return Request{Method: http.MethodPost, Path: r.path, Body: body}
}

func (r *ResourceClient) UpdateRequest(id int64, body map[string]any) Request {
	return Request{Method: http.MethodPut, Path: r.itemPath(id), Body: body}
}

func (r *ResourceClient) DestroyRequest(id int64, params url.Values) Request {
	return Request{Method: http.MethodDelete, Path: r.itemPath(id), Query: params}
}

// ActionRequest builds a request for a collection-level action such as
// POST /api/invoices/refresh.
func (r *ResourceClient) ActionRequest(method, action string, params url.Values, body map[string]any) Request {
	req := Request{Method: method, Path: r.path + "/" + action, Query: params}
	if body != nil {
		req.Body = body
	}
	return req
}

// List fetches one page of the collection.
func (r *ResourceClient) List(ctx context.Context, params url.Values) (map[string]any, error) {
	return r.c.Do(ctx, r.ListRequest(params))
}

// Get fetches one item by ID.
func (r *ResourceClient) Get(ctx context.Context, id int64, params url.Values) (map[string]any, error) {
	return r.c.Do(ctx, r.GetRequest(id, params))
}

// Create posts a new item.
func (r *ResourceClient) Create(ctx context.Context, body map[string]any) (map[string]any, error) {
	return r.c.Do(ctx, r.CreateRequest(body))
}

// Update replaces fields of an existing item.
func (r *ResourceClient) Update(ctx context.Context, id int64, body map[string]any) (map[string]any, error) {
	return r.c.Do(ctx, r.UpdateRequest(id, body))
}

// Destroy deletes an item.
func (r *ResourceClient) Destroy(ctx context.Context, id int64, params url.Values) (map[string]any, error) {
	return r.c.Do(ctx, r.DestroyRequest(id, params))
}
