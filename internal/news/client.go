package news

import (
	"net/http"
	"net/url"
)

// baseURL is the NewsAPI v2 root.
const baseURL = "https://newsapi.org/v2"

// defaultDomains is the allow-list of financial news outlets searched.
var defaultDomains = []string{
	"reuters.com",
	"bloomberg.com",
	"cnbc.com",
	"marketwatch.com",
	"yahoo.com",
}

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=news_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a client for the NewsAPI "everything" search.
type Client struct {
	// baseURL is the base URL for the API.
	baseURL string
	// httpClient performs the requests.
	httpClient HTTPClient
	// header contains additional headers to be sent with each request.
	header http.Header
	// query contains additional query parameters sent with each request,
	// including the API key.
	query url.Values
	// domains restricts results to an allow-list of source domains.
	domains []string
	// maxArticles caps the curated result set.
	maxArticles int
}

// ClientOption is a configuration option for the news client.
type ClientOption func(*Client)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client for the API.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithHeader sets additional headers to be sent with each request.
func WithHeader(header http.Header) ClientOption {
	return func(c *Client) {
		for key, values := range header {
			for _, value := range values {
				c.header.Add(key, value)
			}
		}
	}
}

// WithDomains replaces the source-domain allow-list.
func WithDomains(domains []string) ClientOption {
	return func(c *Client) {
		if len(domains) > 0 {
			c.domains = domains
		}
	}
}

// WithMaxArticles sets the cap on curated articles per search.
func WithMaxArticles(n int) ClientOption {
	return func(c *Client) {
		if n > 0 {
			c.maxArticles = n
		}
	}
}

// NewClient creates a new NewsAPI client. The key travels as a query
// parameter on every request, per the NewsAPI contract.
func NewClient(key string, options ...ClientOption) (*Client, error) {
	var client = &Client{
		baseURL:     baseURL,
		httpClient:  http.DefaultClient,
		header:      http.Header{},
		query:       url.Values{},
		domains:     defaultDomains,
		maxArticles: 5,
	}
	if key != "" {
		client.query.Add("apiKey", key)
	}
	for _, option := range options {
		option(client)
	}
	return client, nil
}
