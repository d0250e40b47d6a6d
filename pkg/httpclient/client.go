package httpclient

import (
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds every outbound call; upstream forwarding failures
// must surface quickly so the visitor gets an answer.
const DefaultTimeout = 30 * time.Second

// Client defines an interface for making HTTP requests.
// This allows for easy mocking and testing of HTTP calls.
type Client interface {
	Post(url, contentType string, body io.Reader) (*http.Response, error)
	Get(url string) (*http.Response, error)
	Do(req *http.Request) (*http.Response, error)
}

// StandardHTTPClient wraps the standard http.Client
type StandardHTTPClient struct {
	client *http.Client
}

// NewStandardClient creates a new HTTP client with the default timeout
func NewStandardClient() Client {
	return NewStandardClientWithTimeout(DefaultTimeout)
}

// NewStandardClientWithTimeout creates a new HTTP client with a custom timeout
func NewStandardClientWithTimeout(timeout time.Duration) Client {
	return &StandardHTTPClient{
		client: &http.Client{Timeout: timeout},
	}
}

// Post makes a POST request
func (c *StandardHTTPClient) Post(url, contentType string, body io.Reader) (*http.Response, error) {
	return c.client.Post(url, contentType, body)
}

// Get makes a GET request
func (c *StandardHTTPClient) Get(url string) (*http.Response, error) {
	return c.client.Get(url)
}

// Do executes an HTTP request
func (c *StandardHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return c.client.Do(req)
}
