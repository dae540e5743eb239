// Package rpc is a minimal Sui JSON-RPC 2.0 client.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	oerrors "github.com/studio-mirai/prime-machin-contracts/internal/errors"
)

// Client sends JSON-RPC requests to a single fullnode endpoint.
type Client struct {
	url  string
	http *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.http = c }
}

// NewClient returns a Client for the endpoint at url.
func NewClient(url string, opts ...Option) *Client {
	c := &Client{url: url, http: &http.Client{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the endpoint the client talks to.
func (c *Client) URL() string {
	return c.url
}

type request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *Error          `json:"error"`
}

// Error is a JSON-RPC error object.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// Call invokes method with params and returns the raw result member.
// A JSON-RPC error member, a non-2xx status or a missing result is reported
// as ErrMalformedRPCResponse.
func (c *Client) Call(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}
	payload, err := json.Marshal(request{
		JSONRPC: "2.0",
		ID:      uuid.NewString(),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, oerrors.WrapCause(oerrors.ErrMalformedRPCResponse, err, "building "+method+" request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, oerrors.WrapCause(oerrors.ErrMalformedRPCResponse, err, method)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, oerrors.WrapCause(oerrors.ErrMalformedRPCResponse, err, "reading "+method+" response")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s: %w: status %s", method, oerrors.ErrMalformedRPCResponse, resp.Status)
	}

	var r response
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, oerrors.WrapCause(oerrors.ErrMalformedRPCResponse, err, "decoding "+method+" response")
	}
	if r.Error != nil {
		return nil, oerrors.WrapCause(oerrors.ErrMalformedRPCResponse, r.Error, method)
	}
	if len(r.Result) == 0 || string(r.Result) == "null" {
		return nil, fmt.Errorf("%s: %w: no result", method, oerrors.ErrMalformedRPCResponse)
	}

	return r.Result, nil
}
