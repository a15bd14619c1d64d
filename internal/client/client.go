package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/daniilsolovey/blog-posts/internal/postlist"
)

// PostsPath is the listing endpoint, relative to the source base URL.
const PostsPath = "/api/posts"

type postsResponse struct {
	Posts []postlist.Post `json:"posts"`
}

// Client loads the post collection from the remote listing endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ postlist.Loader = (*Client)(nil)

// New returns a Client for baseURL. A nil httpClient means http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    httpClient,
	}
}

// URL returns the full address of the listing endpoint.
func (c *Client) URL() string {
	return c.baseURL + PostsPath
}

// Posts fetches the whole collection. Every failure wraps postlist.ErrLoadFailed:
// the response is accepted entirely or not at all.
func (c *Client) Posts(ctx context.Context) ([]postlist.Post, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: new request: %v", postlist.ErrLoadFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: do request: %v", postlist.ErrLoadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %s", postlist.ErrLoadFailed, resp.Status)
	}

	var body postsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", postlist.ErrLoadFailed, err)
	}

	if body.Posts == nil {
		return nil, fmt.Errorf("%w: response has no posts array", postlist.ErrLoadFailed)
	}

	return body.Posts, nil
}
