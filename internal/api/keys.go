package api

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// WriteOptions carries the optional expiry settings for a key write.
type WriteOptions struct {
	// TTL is seconds-from-now; Expiration is an absolute unix timestamp.
	// At most one should be set; the store rejects requests carrying both.
	TTL        int64
	Expiration int64
}

// WriteValue stores value under encodedKey. The key must already be
// percent-encoded as a single path segment (see kv.EncodeKey).
func (c *Client) WriteValue(ctx context.Context, accountID, namespaceID, encodedKey string, value []byte, opts *WriteOptions) error {
	path := fmt.Sprintf("/accounts/%s/storage/kv/namespaces/%s/values/%s",
		accountID, url.PathEscape(namespaceID), encodedKey)
	if q := writeQuery(opts); q != "" {
		path += "?" + q
	}
	_, err := c.doEnvelope(ctx, "PUT", path, bytes.NewReader(value), nil)
	return err
}

// ReadValue returns the raw bytes stored under encodedKey.
func (c *Client) ReadValue(ctx context.Context, accountID, namespaceID, encodedKey string) ([]byte, error) {
	path := fmt.Sprintf("/accounts/%s/storage/kv/namespaces/%s/values/%s",
		accountID, url.PathEscape(namespaceID), encodedKey)
	return c.doRaw(ctx, "GET", path, nil)
}

// DeleteValue removes the key and its value.
func (c *Client) DeleteValue(ctx context.Context, accountID, namespaceID, encodedKey string) error {
	path := fmt.Sprintf("/accounts/%s/storage/kv/namespaces/%s/values/%s",
		accountID, url.PathEscape(namespaceID), encodedKey)
	_, err := c.doEnvelope(ctx, "DELETE", path, nil, nil)
	return err
}

// ListKeys returns one page of keys, optionally filtered by prefix, starting
// at cursor (empty for the first page). The returned cursor is empty when the
// listing is complete; continuing is the caller's decision, not ours.
func (c *Client) ListKeys(ctx context.Context, accountID, namespaceID, prefix, cursor string) ([]Key, string, error) {
	path := fmt.Sprintf("/accounts/%s/storage/kv/namespaces/%s/keys",
		accountID, url.PathEscape(namespaceID))
	query := url.Values{}
	if prefix != "" {
		query.Set("prefix", prefix)
	}
	if cursor != "" {
		query.Set("cursor", cursor)
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var keys []Key
	info, err := c.doEnvelope(ctx, "GET", path, nil, &keys)
	if err != nil {
		return nil, "", err
	}
	next := ""
	if info != nil {
		next = info.Cursor
	}
	return keys, next, nil
}

func writeQuery(opts *WriteOptions) string {
	if opts == nil {
		return ""
	}
	query := url.Values{}
	if opts.TTL > 0 {
		query.Set("expiration_ttl", strconv.FormatInt(opts.TTL, 10))
	}
	if opts.Expiration > 0 {
		query.Set("expiration", strconv.FormatInt(opts.Expiration, 10))
	}
	return query.Encode()
}
