package reelapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"resty.dev/v3"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrUnexpectedStatus = errors.New("unexpected status")
)

// StatusError is returned for every non-2xx response.
type StatusError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: %s %d: %s", e.Method, e.Path, ErrUnexpectedStatus, e.Status, e.Body)
}

func (e *StatusError) Unwrap() error {
	if e.Status == http.StatusNotFound {
		return ErrNotFound
	}
	return ErrUnexpectedStatus
}

type Client struct {
	client *resty.Client
}

func NewClient(cfg *ClientConfig) *Client {
	if cfg == nil {
		cfg = DefaultConfig
	}

	settings := cfg.TransportSettings
	if settings == nil {
		settings = DefaultConfig.TransportSettings
	}

	client := resty.NewWithTransportSettings(settings).
		SetBaseURL(cfg.BaseURL).
		SetHeader("Accept", "application/json")

	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}

	for _, m := range cfg.RequestMiddlewares {
		client.AddRequestMiddleware(m)
	}
	for _, m := range cfg.ResponseMiddlewares {
		client.AddResponseMiddleware(m)
	}

	return &Client{
		client: client,
	}
}

func (c *Client) Close() error {
	return c.client.Close()
}

func (c *Client) r(ctx context.Context) *resty.Request {
	return c.client.R().WithContext(ctx)
}

func checkResponse(res *resty.Response) error {
	if !res.IsError() {
		return nil
	}

	return &StatusError{
		Method: res.Request.Method,
		Path:   res.Request.URL,
		Status: res.StatusCode(),
		Body:   res.String(),
	}
}
