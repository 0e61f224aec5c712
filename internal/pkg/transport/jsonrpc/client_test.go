package jsonrpc

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCall(t *testing.T) {
	t.Run("successful call returns the raw result", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)

			var req map[string]any
			require.NoError(t, json.Unmarshal(body, &req))
			assert.Equal(t, "2.0", req["jsonrpc"])
			assert.Equal(t, "ledger_getLatestBlock", req["method"])
			assert.NotEmpty(t, req["id"])

			_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":"1","result":{"hash":"abc"}}`))
		}))
		defer server.Close()

		c := NewClient(server.Client(), server.URL)

		result, err := c.Call(t.Context(), "ledger_getLatestBlock")

		require.NoError(t, err)
		assert.JSONEq(t, `{"hash":"abc"}`, string(result))
	})

	t.Run("params are forwarded positionally", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)

			var req struct {
				Params []any `json:"params"`
			}
			require.NoError(t, json.Unmarshal(body, &req))
			assert.Equal(t, []any{"0x10", true}, req.Params)

			_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":"1","result":null}`))
		}))
		defer server.Close()

		c := NewClient(server.Client(), server.URL)

		_, err := c.Call(t.Context(), "ledger_getBlock", "0x10", true)

		require.NoError(t, err)
	})

	t.Run("server error object is surfaced", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":"1","error":{"code":-32601,"message":"method not found"}}`))
		}))
		defer server.Close()

		c := NewClient(server.Client(), server.URL)

		_, err := c.Call(t.Context(), "ledger_bogus")

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrServerReturnedError)
		assert.Contains(t, err.Error(), "method not found")
	})

	t.Run("malformed response body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer server.Close()

		c := NewClient(server.Client(), server.URL)

		_, err := c.Call(t.Context(), "ledger_getLatestBlock")

		assert.Error(t, err)
	})

	t.Run("unreachable endpoint", func(t *testing.T) {
		c := NewClient(http.DefaultClient, "http://127.0.0.1:1")

		_, err := c.Call(t.Context(), "ledger_getLatestBlock")

		assert.Error(t, err)
	})
}
