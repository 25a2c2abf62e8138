// Package rpc is the JSON-over-HTTP caller shared by the domain-service
// adapters. It owns the one place where transport outcomes become typed
// errors: 404 → errs.NotFoundError, 5xx → transient errs.ExternalServiceError,
// any other non-2xx → non-transient errs.ExternalServiceError.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/GregMSThompson/retail-backend/internal/errs"
)

type Client struct {
	service string
	baseURL string
	http    *http.Client
}

// New returns a caller for one domain service. The service name only shows up
// in error values and logs.
func New(service, baseURL string, httpClient *http.Client) *Client {
	return &Client{
		service: service,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, u, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, c.baseURL+path, in, out)
}

func (c *Client) do(ctx context.Context, method, u string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", c.service, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.NewExternalServiceError(c.service, err.Error(), true)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errs.NewExternalServiceError(c.service, "malformed response: "+err.Error(), false)
		}
		return nil

	case resp.StatusCode == http.StatusNotFound:
		return errs.NewNotFoundError(errorMessage(resp.Body, "resource not found"))

	case resp.StatusCode >= 500:
		return errs.NewExternalServiceError(c.service, errorMessage(resp.Body, resp.Status), true)

	default:
		return errs.NewExternalServiceError(c.service, errorMessage(resp.Body, resp.Status), false)
	}
}

// errorMessage pulls the message field out of a JSON error body, falling
// back when the body is not in the expected shape.
func errorMessage(body io.Reader, fallback string) string {
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(body).Decode(&parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	return fallback
}
