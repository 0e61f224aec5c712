// Package jsonrpc implements a minimal JSON-RPC 2.0 client over HTTP,
// suitable for talking to ledger nodes and similar RPC services. Request ids
// are random UUIDs; transport-level retries are delegated to the injected
// HTTP client.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrServerReturnedError indicates the remote endpoint answered with a
// JSON-RPC error object rather than a result.
var ErrServerReturnedError = errors.New("json-rpc server error")

// response models a JSON-RPC 2.0 response envelope.
type response struct {
	JsonRPC string `json:"jsonrpc"`
	Error   *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Result json.RawMessage `json:"result"`
}

// err converts a populated error object into a wrapped ErrServerReturnedError.
func (r response) err() error {
	if r.Error == nil {
		return nil
	}

	return fmt.Errorf("%w: [%d] %s", ErrServerReturnedError, r.Error.Code, r.Error.Message)
}

// Client is a generic JSON-RPC caller. It exists as an interface so RPC-based
// adapters can be tested against a mock transport.
type Client interface {
	// Call invokes the named method with the given positional params and
	// returns the raw result payload.
	Call(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

type client struct {
	endpoint   string
	httpClient *http.Client
}

var _ Client = (*client)(nil)

// NewClient returns a Client that posts JSON-RPC requests to endpoint using
// httpClient.
func NewClient(httpClient *http.Client, endpoint string) *client {
	return &client{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}

func (c *client) Call(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	body, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      uuid.NewString(),
		"method":  method,
		"params":  params,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, err
	}

	return data.Result, data.err()
}
