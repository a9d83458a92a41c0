package api

import (
	"context"
	"fmt"
	"net/url"
)

// WriteBulk uploads all pairs in a single request. Splitting oversized
// payloads into multiple requests is the caller's concern; the store answers
// 413 when the body is too large and FormatError explains that status.
func (c *Client) WriteBulk(ctx context.Context, accountID, namespaceID string, pairs []KeyValuePair) error {
	path := fmt.Sprintf("/accounts/%s/storage/kv/namespaces/%s/bulk",
		accountID, url.PathEscape(namespaceID))
	body, err := jsonBody(pairs)
	if err != nil {
		return err
	}
	_, err = c.doEnvelope(ctx, "PUT", path, body, nil)
	return err
}

// DeleteBulk removes all named keys in a single request.
func (c *Client) DeleteBulk(ctx context.Context, accountID, namespaceID string, keys []string) error {
	path := fmt.Sprintf("/accounts/%s/storage/kv/namespaces/%s/bulk",
		accountID, url.PathEscape(namespaceID))
	body, err := jsonBody(keys)
	if err != nil {
		return err
	}
	_, err = c.doEnvelope(ctx, "DELETE", path, body, nil)
	return err
}
