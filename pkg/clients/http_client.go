package clients

import (
	"net/http"
	"time"
)

// Telegram long polling holds a request open for the poll timeout, so the
// client timeout has to stay above it.
const timeout = time.Second * 75

type HTTPClientI interface {
	Do(req *http.Request) (*http.Response, error)
}

type HTTPClientAdapter struct {
	client *http.Client
}

func (h *HTTPClientAdapter) Do(req *http.Request) (*http.Response, error) {
	return h.client.Do(req)
}

// HTTPClient is handed to the telegram bot api as its transport.
type HTTPClient struct {
	client HTTPClientI
}

func NewHTTPClient() *HTTPClient {
	return &HTTPClient{
		client: &HTTPClientAdapter{
			client: &http.Client{Timeout: timeout},
		},
	}
}

func (h *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	return h.client.Do(req)
}

func (h *HTTPClient) SetClient(mock HTTPClientI) {
	h.client = mock
}
