package services

import (
	"bytes"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"time"

	Config "crypto-sweep/config"
)

// Client ... object for external API requests
type Client struct {
	BaseURL    *url.URL
	UserAgent  string
	Config     Config.Data
	httpClient *http.Client
}

// NewClient ...
func NewClient(httpClient *http.Client, config Config.Data, baseURL string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
		if config.RequestTimeout > 0 {
			httpClient.Timeout = config.RequestTimeout * time.Second
		}
	}
	c := &Client{httpClient: httpClient}
	c.Config = config
	c.BaseURL, _ = url.Parse(baseURL)

	return c
}

// NewRequest ... Builds a request against the client base URL. The path may
// carry a query string.
func (c *Client) NewRequest(method, path string, body interface{}) (*http.Request, error) {
	var buf io.ReadWriter
	if body != nil {
		buf = new(bytes.Buffer)
		err := json.NewEncoder(buf).Encode(body)
		if err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequest(method, c.BaseURL.String()+path, buf)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.UserAgent)
	return req, nil
}

// AddHeader ...
func (c *Client) AddHeader(req *http.Request, headers map[string]string) *http.Request {
	for header, value := range headers {
		req.Header.Set(header, value)
	}
	return req
}

// DoRaw ... Executes the request and returns the upstream status and body
// verbatim. A non-2xx status is not an error here; the caller decides how to
// translate it.
func (c *Client) DoRaw(req *http.Request) (*http.Response, []byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	resBody, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, err
	}
	return resp, resBody, nil
}
