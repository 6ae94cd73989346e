// Package client implements the Cetustek invoice API client: one synchronous
// SOAP POST per operation, typed responses, typed errors. There are no
// retries and no shared state beyond the immutable credentials, so a Client
// is safe for concurrent use.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rezonia/cetustek-go/internal/model"
	"github.com/rezonia/cetustek-go/internal/soap"
)

const (
	DefaultTimeout   = 30 * time.Second
	defaultUserAgent = "cetustek-go/1.0"
)

// Config holds the connection settings handed out by Cetustek.
type Config struct {
	// Endpoint is the invoice API URL, e.g.
	// https://invoice.cetustek.com.tw/InvoiceMultiWeb/InvoiceAPI
	Endpoint    string
	RentID      string
	SiteCode    string
	APIPassword string
}

// Client talks to the Cetustek invoice web service.
type Client struct {
	endpoint   string
	rentID     string
	source     string
	userAgent  string
	httpClient *http.Client
	log        logrus.FieldLogger
}

// Option configures the client
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the request timeout on the default HTTP client
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithLogger sets a logger for debug output. Credentials are never logged.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New creates a client for the given tenant configuration.
// The vendor authenticates with the rent id plus a source field, which is
// the site code and API password concatenated.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, model.NewValidationError("endpoint", nil, "required", "endpoint must not be empty")
	}
	if cfg.RentID == "" {
		return nil, model.NewValidationError("rent_id", nil, "required", "rent id must not be empty")
	}

	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	c := &Client{
		endpoint:   cfg.Endpoint,
		rentID:     cfg.RentID,
		source:     cfg.SiteCode + cfg.APIPassword,
		userAgent:  defaultUserAgent,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		log:        quiet,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// authParams returns the credential elements every operation carries.
func (c *Client) authParams() []soap.Param {
	return []soap.Param{
		{Name: "rentid", Value: c.rentID},
		{Name: "source", Value: c.source},
	}
}

// call posts one SOAP envelope and returns the vendor's <return> payload.
func (c *Client) call(ctx context.Context, op, action string, params []soap.Param) (string, error) {
	body, err := soap.Envelope(action, params)
	if err != nil {
		return "", model.NewTransportError(op, "failed to build request envelope", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", model.NewTransportError(op, "failed to build request", err)
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("Accept", "text/xml")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", model.NewTransportError(op, "request failed", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", model.NewTransportError(op, "failed to read response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", model.NewTransportError(op, fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	value, err := soap.ReturnValue(respBody)
	if err != nil {
		return "", model.NewTransportError(op, "malformed response", err)
	}

	c.log.WithFields(logrus.Fields{
		"op":             op,
		"action":         action,
		"request_bytes":  len(body),
		"response_bytes": len(respBody),
	}).Debug("cetustek call completed")

	return value, nil
}
