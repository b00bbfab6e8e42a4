// Package ups implements the carrier ports against the UPS REST API.
//
// Both clients share the same construction rules: a required base URL, an
// API key sent as a bearer token, and an injectable *http.Client that
// defaults to a 5 second timeout so a slow carrier cannot stall a request
// or the poll job indefinitely. Every request carries a fresh transaction
// id for carrier-side correlation.
package ups

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultTimeout = 5 * time.Second

var ErrBaseURLIsRequired = errors.New("ups base URL is required")

// config holds the settings shared by the label and tracking clients.
type config struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func newConfig(baseURL, apiKey string, httpClient *http.Client) (config, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return config{}, ErrBaseURLIsRequired
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return config{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}, nil
}

// setHeaders applies authentication and correlation headers to a request.
func (c config) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("transId", uuid.NewString())
	req.Header.Set("transactionSrc", "printship")
}
