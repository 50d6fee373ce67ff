package shopsdk

import (
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// Client talks to the storefront API. It keeps the session cookie in a jar,
// so a Login followed by a guarded call just works, like a browser.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// BearerToken, when set, is sent as an Authorization header on every
	// request in addition to any cookie.
	BearerToken string
}

// NewClient creates a client with its own cookie jar.
func NewClient(baseURL string) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
		},
	}
}

// SessionToken returns the session cookie currently held in the jar.
func (c *Client) SessionToken() string {
	if c.HTTPClient.Jar == nil {
		return ""
	}
	req, err := http.NewRequest(http.MethodGet, c.BaseURL+"/api/", nil)
	if err != nil {
		return ""
	}
	for _, ck := range c.HTTPClient.Jar.Cookies(req.URL) {
		if ck.Name == "token" {
			return ck.Value
		}
	}
	return ""
}
