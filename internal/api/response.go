package api

import (
	"encoding/json"
	"fmt"
)

// ResponseInfo is one structured (code, message) pair reported by the store.
type ResponseInfo struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Failure is returned when the store answered with an error payload. It
// carries the HTTP status code and every (code, message) pair from the
// response, in the order the store reported them. Transport-level problems
// (connection refused, timeout, bad TLS) are NOT a Failure; they surface as
// ordinary wrapped errors from the http client.
type Failure struct {
	StatusCode int
	Errors     []ResponseInfo
}

func (f *Failure) Error() string {
	if len(f.Errors) == 0 {
		return fmt.Sprintf("API returned HTTP %d", f.StatusCode)
	}
	return fmt.Sprintf("API returned HTTP %d: error %d: %s",
		f.StatusCode, f.Errors[0].Code, f.Errors[0].Message)
}

// envelope is the standard response wrapper around every JSON endpoint.
type envelope struct {
	Success    bool            `json:"success"`
	Errors     []ResponseInfo  `json:"errors"`
	Messages   []ResponseInfo  `json:"messages"`
	Result     json.RawMessage `json:"result"`
	ResultInfo *ResultInfo     `json:"result_info"`
}

// ResultInfo carries paging details on list endpoints. The cursor is opaque;
// callers pass it back verbatim to continue a listing.
type ResultInfo struct {
	Count  int    `json:"count"`
	Cursor string `json:"cursor"`
}

// Namespace is a remote KV namespace.
type Namespace struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Key is one key entry from a namespace listing.
type Key struct {
	Name       string `json:"name"`
	Expiration int64  `json:"expiration,omitempty"`
}

// KeyValuePair is one entry of a bulk write request.
type KeyValuePair struct {
	Key        string `json:"key"`
	Value      string `json:"value"`
	Expiration int64  `json:"expiration,omitempty"`
	TTL        int64  `json:"expiration_ttl,omitempty"`
	Base64     bool   `json:"base64,omitempty"`
}
