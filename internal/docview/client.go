package docview

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// ErrPageLoad indicates the viewer could not fetch a page.
var ErrPageLoad = errors.New("page load failed")

// Client fetches generated pages from a wiki server and prepares them for
// viewing. Each Page call is independent; there is no shared state between
// fetches, and an abandoned navigation is cancelled through its context.
type Client struct {
	base string
	http *http.Client
}

// NewClient creates a Client for a server base URL such as
// "http://localhost:1313". A nil httpClient uses http.DefaultClient.
func NewClient(base string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{base: strings.TrimRight(base, "/"), http: httpClient}
}

// Page fetches /html/<filename> with cache bypass and parses the response
// into a viewer Document. Any non-success status is a load failure.
func (c *Client) Page(ctx context.Context, filename string) (*Document, error) {
	pageURL := c.base + "/html/" + url.PathEscape(filename)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	// Always hit the server, never an intermediary cache: a rebuild may
	// have replaced the page since it was last fetched.
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %s", ErrPageLoad, filename, resp.Status)
	}

	return Parse(resp.Body)
}
