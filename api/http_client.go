// api/http_client.go
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"
)

// HTTPClient struct to hold base URL and HTTP client configuration
type HTTPClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewHTTPClient creates a new instance of HTTPClient with default settings
func NewHTTPClient(baseURL string) *HTTPClient {
	return NewHTTPClientWith(baseURL, &http.Client{
		Timeout: 10 * time.Second, // Set a timeout for requests
	})
}

// NewHTTPClientWith wraps an existing http.Client, typically one carrying an
// OAuth2 transport.
func NewHTTPClientWith(baseURL string, client *http.Client) *HTTPClient {
	if client.Timeout == 0 {
		client.Timeout = 10 * time.Second
	}
	return &HTTPClient{
		BaseURL:    baseURL,
		HTTPClient: client,
	}
}

// Get issues a GET request against the API and decodes the JSON response
func (c *HTTPClient) Get(endpoint string, response interface{}) error {
	url := c.BaseURL + endpoint
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return errors.New("unexpected status code: " + res.Status)
	}

	if response != nil {
		return json.Unmarshal(resBody, response)
	}

	return nil
}
