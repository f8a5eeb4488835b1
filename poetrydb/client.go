package poetrydb

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// DefaultBaseURL is the address of the public PoetryDB service. The trailing slash matters:
// endpoints are resolved relative to it.
const DefaultBaseURL = "https://poetrydb.org/"

var (
	// ErrInvalidRequest is returned, before any network call, for a lookup whose parameters
	// could never form a valid endpoint.
	ErrInvalidRequest = errors.New("poetrydb: invalid request")

	// ErrTextRendering is returned by Response.JSON when the request asked for the ".text"
	// rendering. The service still declares a JSON content type for those bodies.
	ErrTextRendering = errors.New("poetrydb: response uses the text rendering")
)

// Logger is the minimal logging interface used by Client. Both framework.Logger and
// *logrus.Logger satisfy it.
type Logger interface {
	Printf(message string, args ...interface{})
}

type nullLogger struct{}

func (nullLogger) Printf(string, ...interface{}) {}

// Client issues GET requests against a PoetryDB base address. It carries no mutable state,
// so a Client may be shared, though the contract suite builds one per test.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests. The default is http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets a logger that receives one line per request and per response.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a Client for the given base address. An empty baseURL means
// DefaultBaseURL. The base is used exactly as given; without a trailing slash its last
// path segment is replaced during resolution.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if !parsed.IsAbs() || parsed.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}
	c := &Client{
		baseURL:    parsed,
		httpClient: http.DefaultClient,
		logger:     nullLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the base address the client resolves endpoints against.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// LookupTitle requests title/{title}, or title/{title}/{outputFormat} if outputFormat is
// not empty. The title is passed through verbatim, so it may carry the ":abs" modifier.
func (c *Client) LookupTitle(title, outputFormat string) (*Response, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: empty title", ErrInvalidRequest)
	}
	return c.get(outputFormat, "title", title)
}

// LookupAuthor requests author/{author}[/{outputFormat}].
func (c *Client) LookupAuthor(author, outputFormat string) (*Response, error) {
	if author == "" {
		return nil, fmt.Errorf("%w: empty author", ErrInvalidRequest)
	}
	return c.get(outputFormat, "author", author)
}

// LookupRandom requests random/{count}/{fields}, where fields is a comma-joined list.
func (c *Client) LookupRandom(count int, fields string) (*Response, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: random count must be positive, got %d", ErrInvalidRequest, count)
	}
	if fields == "" {
		return nil, fmt.Errorf("%w: empty field list", ErrInvalidRequest)
	}
	return c.get("", "random", strconv.Itoa(count), fields)
}

// CombinedSearch requests {inputFields}/{searchTerms}[/{outputFormat}]. The input fields
// are comma-joined and the search terms semicolon-joined, in the same order.
func (c *Client) CombinedSearch(inputFields, searchTerms, outputFormat string) (*Response, error) {
	if inputFields == "" || searchTerms == "" {
		return nil, fmt.Errorf("%w: combined search needs input fields and search terms", ErrInvalidRequest)
	}
	return c.get(outputFormat, inputFields, searchTerms)
}

// Search performs a combined search described by a SearchRequest.
func (c *Client) Search(req SearchRequest) (*Response, error) {
	if len(req.Criteria) == 0 {
		return nil, fmt.Errorf("%w: search request has no criteria", ErrInvalidRequest)
	}
	return c.CombinedSearch(req.InputFields(), req.SearchTerms(), req.Output.String())
}

// Get requests an endpoint relative to the base address. Endpoint paths are not escaped
// beyond what a URL path requires, and a leading slash replaces the base path. The response
// is a text rendering when the last path segment ends in ".text".
func (c *Client) Get(endpoint string) (*Response, error) {
	ref := &url.URL{Path: endpoint}
	target := c.baseURL.ResolveReference(ref).String()

	c.logger.Printf("GET %s", target)
	resp, err := c.httpClient.Get(target)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", target, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response from %s: %w", target, err)
	}
	c.logger.Printf("Response %d (%s, %d bytes) from %s",
		resp.StatusCode, resp.Header.Get("Content-Type"), len(body), target)

	return &Response{
		URL:        target,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,

		TextRendering: IsTextRendering(endpoint[strings.LastIndex(endpoint, "/")+1:]),
	}, nil
}

func (c *Client) get(outputFormat string, segments ...string) (*Response, error) {
	if outputFormat != "" {
		segments = append(segments, outputFormat)
	}
	resp, err := c.Get(strings.Join(segments, "/"))
	if err != nil {
		return nil, err
	}
	// A title or author ending in ".text" is a search term, not a rendering.
	resp.TextRendering = IsTextRendering(outputFormat)
	return resp, nil
}

// Response is an HTTP response from the service, with the body already read.
type Response struct {
	URL        string
	StatusCode int
	Header     http.Header
	Body       []byte

	// TextRendering is true when the request's output format ended in ".text". Such bodies
	// are plain text even though the service labels them application/json.
	TextRendering bool
}

// ContentType returns the declared Content-Type header.
func (r *Response) ContentType() string {
	return r.Header.Get("Content-Type")
}

// Text returns the body as a string.
func (r *Response) Text() string {
	return string(r.Body)
}

// JSON decodes the body. It does not look at Content-Type: a text-rendering response
// yields ErrTextRendering, anything else must be valid JSON.
func (r *Response) JSON() (ldvalue.Value, error) {
	if r.TextRendering {
		return ldvalue.Null(), ErrTextRendering
	}
	var v ldvalue.Value
	if err := json.Unmarshal(r.Body, &v); err != nil {
		return ldvalue.Null(), fmt.Errorf("decode response from %s: %w", r.URL, err)
	}
	return v, nil
}
