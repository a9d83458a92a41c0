package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Credentials{APIToken: "token"}, WithBaseURL(server.URL))
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(Credentials{APIToken: "token"})
	assert.Equal(t, DefaultBaseURL, c.baseURL)
	assert.Equal(t, DefaultTimeout, c.http.Timeout)
}

func TestWithTimeout(t *testing.T) {
	c := NewClient(Credentials{APIToken: "token"}, WithTimeout(5*time.Minute))
	assert.Equal(t, 5*time.Minute, c.http.Timeout)
}

func TestAuthHeaders_Token(t *testing.T) {
	var got http.Header
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{"success": true, "result": []}`))
	})

	_, err := c.ListNamespaces(context.Background(), "acct")
	require.NoError(t, err)
	assert.Equal(t, "Bearer token", got.Get("Authorization"))
	assert.Empty(t, got.Get("X-Auth-Email"))
}

func TestAuthHeaders_EmailKeyPair(t *testing.T) {
	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{"success": true, "result": []}`))
	}))
	t.Cleanup(server.Close)

	c := NewClient(Credentials{Email: "user@example.com", APIKey: "key"}, WithBaseURL(server.URL))
	_, err := c.ListNamespaces(context.Background(), "acct")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", got.Get("X-Auth-Email"))
	assert.Equal(t, "key", got.Get("X-Auth-Key"))
	assert.Empty(t, got.Get("Authorization"))
}

func TestListNamespaces(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/acct/storage/kv/namespaces", r.URL.Path)
		w.Write([]byte(`{"success": true, "result": [
			{"id": "ns-1", "title": "worker-KV"},
			{"id": "ns-2", "title": "worker-CACHE"}
		]}`))
	})

	namespaces, err := c.ListNamespaces(context.Background(), "acct")
	require.NoError(t, err)
	require.Len(t, namespaces, 2)
	assert.Equal(t, "worker-KV", namespaces[0].Title)
}

func TestCreateNamespace(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"title": "worker-KV"}`, string(body))
		w.Write([]byte(`{"success": true, "result": {"id": "ns-1", "title": "worker-KV"}}`))
	})

	namespace, err := c.CreateNamespace(context.Background(), "acct", "worker-KV")
	require.NoError(t, err)
	assert.Equal(t, "ns-1", namespace.ID)
}

func TestStructuredFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success": false, "errors": [
			{"code": 10013, "message": "namespace not found"},
			{"code": 10009, "message": "key not found"}
		]}`))
	})

	_, err := c.ListNamespaces(context.Background(), "acct")
	var failure *Failure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, http.StatusBadRequest, failure.StatusCode)
	require.Len(t, failure.Errors, 2)
	assert.Equal(t, 10013, failure.Errors[0].Code)
	assert.Equal(t, 10009, failure.Errors[1].Code)
}

func TestGatewayFailureWithoutJSONBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		w.Write([]byte("<html>request entity too large</html>"))
	})

	err := c.WriteBulk(context.Background(), "acct", "ns", []KeyValuePair{{Key: "k", Value: "v"}})
	var failure *Failure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, http.StatusRequestEntityTooLarge, failure.StatusCode)
	assert.Empty(t, failure.Errors)
}

func TestTransportFailureIsNotAFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse subsequent connections

	c := NewClient(Credentials{APIToken: "token"}, WithBaseURL(server.URL))
	_, err := c.ListNamespaces(context.Background(), "acct")
	require.Error(t, err)
	var failure *Failure
	assert.False(t, errors.As(err, &failure))
}

func TestReadValue_Raw(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/acct/storage/kv/namespaces/ns/values/some%20key", r.URL.EscapedPath())
		w.Write([]byte("raw bytes, not json"))
	})

	value, err := c.ReadValue(context.Background(), "acct", "ns", "some%20key")
	require.NoError(t, err)
	assert.Equal(t, []byte("raw bytes, not json"), value)
}

func TestReadValue_ErrorEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success": false, "errors": [{"code": 10009, "message": "key not found"}]}`))
	})

	_, err := c.ReadValue(context.Background(), "acct", "ns", "missing")
	var failure *Failure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, 10009, failure.Errors[0].Code)
}

func TestWriteValue_QueryParams(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "60", r.URL.Query().Get("expiration_ttl"))
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "hello", string(body))
		w.Write([]byte(`{"success": true}`))
	})

	err := c.WriteValue(context.Background(), "acct", "ns", "k", []byte("hello"), &WriteOptions{TTL: 60})
	require.NoError(t, err)
}

func TestListKeys_CursorPassthrough(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "app:", r.URL.Query().Get("prefix"))
		assert.Equal(t, "prev-cursor", r.URL.Query().Get("cursor"))
		w.Write([]byte(`{"success": true,
			"result": [{"name": "app:one"}, {"name": "app:two", "expiration": 1700000000}],
			"result_info": {"count": 2, "cursor": "next-cursor"}}`))
	})

	keys, cursor, err := c.ListKeys(context.Background(), "acct", "ns", "app:", "prev-cursor")
	require.NoError(t, err)
	require.Len(t, keys, 2)
	assert.Equal(t, int64(1700000000), keys[1].Expiration)
	assert.Equal(t, "next-cursor", cursor)
}

func TestDeleteBulk_Body(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		var keys []string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&keys))
		assert.Equal(t, []string{"a", "b"}, keys)
		w.Write([]byte(`{"success": true}`))
	})

	require.NoError(t, c.DeleteBulk(context.Background(), "acct", "ns", []string{"a", "b"}))
}
