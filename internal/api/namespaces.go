package api

import (
	"context"
	"fmt"
	"net/url"
)

// ListNamespaces returns the namespaces owned by the account. One request,
// one page; the store's default page size covers typical accounts.
func (c *Client) ListNamespaces(ctx context.Context, accountID string) ([]Namespace, error) {
	path := fmt.Sprintf("/accounts/%s/storage/kv/namespaces", accountID)
	var namespaces []Namespace
	if _, err := c.doEnvelope(ctx, "GET", path, nil, &namespaces); err != nil {
		return nil, err
	}
	return namespaces, nil
}

// CreateNamespace creates a namespace with the given title and returns it.
func (c *Client) CreateNamespace(ctx context.Context, accountID, title string) (*Namespace, error) {
	path := fmt.Sprintf("/accounts/%s/storage/kv/namespaces", accountID)
	body, err := jsonBody(map[string]string{"title": title})
	if err != nil {
		return nil, err
	}
	var namespace Namespace
	if _, err := c.doEnvelope(ctx, "POST", path, body, &namespace); err != nil {
		return nil, err
	}
	return &namespace, nil
}

// RenameNamespace changes a namespace's title.
func (c *Client) RenameNamespace(ctx context.Context, accountID, namespaceID, title string) error {
	path := fmt.Sprintf("/accounts/%s/storage/kv/namespaces/%s", accountID, url.PathEscape(namespaceID))
	body, err := jsonBody(map[string]string{"title": title})
	if err != nil {
		return err
	}
	_, err = c.doEnvelope(ctx, "PUT", path, body, nil)
	return err
}

// DeleteNamespace removes a namespace and everything stored in it.
func (c *Client) DeleteNamespace(ctx context.Context, accountID, namespaceID string) error {
	path := fmt.Sprintf("/accounts/%s/storage/kv/namespaces/%s", accountID, url.PathEscape(namespaceID))
	_, err := c.doEnvelope(ctx, "DELETE", path, nil, nil)
	return err
}
