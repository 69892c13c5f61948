package sharepoint

import (
	"context"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/mkellner/spmirror/internal/logging"
)

// defaultPageSize is the item page size for list enumeration
const defaultPageSize = 500

// TokenProvider supplies a bearer token for the site API
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// Client talks to the site's REST API
type Client struct {
	http     *resty.Client
	siteURL  string
	tokens   TokenProvider
	logger   logging.Logger
	pageSize int

	// cached server-relative URL of the web, resolved once per run
	webPath string
}

// Option configures a Client
type Option func(*Client)

// WithPageSize overrides the listing page size
func WithPageSize(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// NewClient creates a client for one site
func NewClient(siteURL string, tokens TokenProvider, logger logging.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}

	c := &Client{
		siteURL:  strings.TrimRight(siteURL, "/"),
		tokens:   tokens,
		logger:   logger,
		pageSize: defaultPageSize,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.http = resty.New().
		SetBaseURL(c.siteURL).
		SetHeader("Accept", "application/json;odata=nometadata")

	if tokens != nil {
		c.http.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			token, err := tokens.Token(req.Context())
			if err != nil {
				return err
			}
			req.SetAuthToken(token)
			return nil
		})
	}

	return c
}

// SiteURL returns the configured site URL
func (c *Client) SiteURL() string {
	return c.siteURL
}

// WebPath returns the server-relative URL of the web (e.g. "/sites/TeamA").
// Resolved from the API on first use and cached for the run.
func (c *Client) WebPath(ctx context.Context) (string, error) {
	if c.webPath != "" {
		return c.webPath, nil
	}

	var web struct {
		ServerRelativeURL string `json:"ServerRelativeUrl"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("$select", "ServerRelativeUrl").
		SetResult(&web).
		Get("/_api/web")
	if err != nil {
		return "", &RequestError{Op: "get web", Path: c.siteURL, Message: err.Error()}
	}
	if resp.IsError() {
		return "", classifyError("get web", c.siteURL, resp.StatusCode(), resp.String())
	}

	c.webPath = strings.TrimRight(web.ServerRelativeURL, "/")
	c.logger.Debug("Resolved web path", logging.F("webPath", c.webPath))
	return c.webPath, nil
}

// escapePath doubles single quotes for embedding in an OData literal
func escapePath(p string) string {
	return strings.ReplaceAll(p, "'", "''")
}
