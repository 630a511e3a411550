// Package client provides the REST client the morpheus CLI uses to talk to a
// Morpheus appliance.
//
// The Client wraps a Resty client configured with the appliance base URL,
// bearer token, TLS and timeout settings, and routes Resty logging and
// request tracing through the CLI logging package. Every call is described by
// a Request value first; handlers either send it with Do or, under --dry-run,
// print it without sending anything.
//
// Responses are decoded into map[string]any and inspected by callers through
// the safe accessors in the utils package. Non-2xx responses become *APIError.
package client

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/concave-dev/morpheus-cli/cmd/morpheus/config"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/utils"
	"github.com/concave-dev/morpheus-cli/internal/logging"
	"github.com/go-resty/resty/v2"
)

// Request describes one appliance API call.
type Request struct {
	Method string
	Path   string     // Path below the appliance URL, e.g. /api/budgets/1
	Query  url.Values // Query parameters, may be nil
	Body   any        // JSON body, nil for none
}

// Options configures a Client.
type Options struct {
	BaseURL  string
	Token    string
	Insecure bool
	Timeout  int // Seconds
}

// Client sends requests to a Morpheus appliance.
type Client struct {
	client  *resty.Client
	baseURL string
}

// New creates a client for the appliance at opts.BaseURL.
func New(opts Options) *Client {
	client := resty.New()
	baseURL := strings.TrimRight(opts.BaseURL, "/")

	// Route Resty's internal logging through our structured logging system
	client.SetLogger(utils.RestyLogger{})

	client.
		SetTimeout(time.Duration(opts.Timeout)*time.Second).
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", fmt.Sprintf("morpheus-cli/%s", config.Version))

	if opts.Token != "" {
		client.SetAuthToken(opts.Token)
	}
	if opts.Insecure {
		client.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}

	// Retry connection failures of reads only; writes are never replayed
	client.
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err == nil || r == nil || r.Request == nil {
				return false
			}
			return r.Request.Method == http.MethodGet
		})

	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logging.Debug("Making API request: %s %s", req.Method, req.URL)
		return nil
	})

	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logging.Debug("API response: %d %s (took %v)",
			resp.StatusCode(), resp.Status(), resp.Time())
		return nil
	})

	client.OnError(func(req *resty.Request, err error) {
		logging.Debug("API request failed: %s %s - %v", req.Method, req.URL, err)
	})

	return &Client{
		client:  client,
		baseURL: baseURL,
	}
}

// CreateAPIClient creates a client for the appliance resolved from the
// global CLI configuration.
func CreateAPIClient() *Client {
	return New(Options{
		BaseURL:  config.Global.ApplianceURL,
		Token:    config.Global.AccessToken,
		Insecure: config.Global.Insecure,
		Timeout:  config.Global.Timeout,
	})
}

// BaseURL returns the appliance URL requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// URL returns the full URL of req, including the encoded query.
func (c *Client) URL(req Request) string {
	u := c.baseURL + req.Path
	if len(req.Query) > 0 {
		u += "?" + req.Query.Encode()
	}
	return u
}

// Do sends req and decodes the JSON response. An empty response body yields
// an empty map. Non-2xx responses return *APIError.
func (c *Client) Do(ctx context.Context, req Request) (map[string]any, error) {
	r := c.client.R().SetContext(ctx)
	if len(req.Query) > 0 {
		r.SetQueryParamsFromValues(req.Query)
	}
	if req.Body != nil {
		r.SetHeader("Content-Type", "application/json").SetBody(req.Body)
	}

	resp, err := r.Execute(req.Method, req.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to appliance at %s: %w", c.baseURL, err)
	}

	if resp.IsError() {
		return nil, newAPIError(resp.StatusCode(), resp.Body())
	}

	result := map[string]any{}
	body := resp.Body()
	if len(strings.TrimSpace(string(body))) == 0 {
		return result, nil
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("unexpected response from %s %s: %w", req.Method, req.Path, err)
	}
	return result, nil
}
