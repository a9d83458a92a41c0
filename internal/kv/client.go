package kv

import (
	"time"

	"github.com/methyl/wrangler/internal/api"
	"github.com/methyl/wrangler/internal/settings"
)

// Use a 5 minute timeout instead of the client's short default. Bulk uploads
// routinely take longer than 30 seconds and must not be cancelled midway.
const requestTimeout = 5 * time.Minute

// NewClient builds an authenticated API client for one command invocation.
// No retries, no shared state; callers discard it when the command ends.
func NewClient(user *settings.GlobalUser, opts ...api.Option) *api.Client {
	options := append([]api.Option{api.WithTimeout(requestTimeout)}, opts...)
	return api.NewClient(api.Credentials{
		APIToken: user.APIToken,
		Email:    user.Email,
		APIKey:   user.APIKey,
	}, options...)
}
