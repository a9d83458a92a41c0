package settings

import (
	"fmt"
	"os"
	"strings"
)

// GlobalUser is the authentication identity used to build API clients.
// Either APIToken is set, or Email together with APIKey (the legacy global
// key pair). It is resolved once per invocation and never persisted here.
type GlobalUser struct {
	APIToken string `koanf:"api_token"`
	Email    string `koanf:"email"`
	APIKey   string `koanf:"api_key"`
}

// GlobalUserFromEnv resolves credentials from the process environment.
// CF_API_TOKEN wins over the CF_EMAIL/CF_API_KEY pair.
func GlobalUserFromEnv() (*GlobalUser, error) {
	user := &GlobalUser{
		APIToken: strings.TrimSpace(os.Getenv("CF_API_TOKEN")),
		Email:    strings.TrimSpace(os.Getenv("CF_EMAIL")),
		APIKey:   strings.TrimSpace(os.Getenv("CF_API_KEY")),
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	return user, nil
}

// Validate checks that the identity carries a usable credential set.
func (u *GlobalUser) Validate() error {
	if u.APIToken != "" {
		return nil
	}
	if u.Email != "" && u.APIKey != "" {
		return nil
	}
	return fmt.Errorf("no credentials found: set CF_API_TOKEN, or CF_EMAIL and CF_API_KEY")
}

// Describe returns a short human description of the identity for `whoami`.
func (u *GlobalUser) Describe() string {
	if u.APIToken != "" {
		return "API token"
	}
	if u.Email != "" {
		return fmt.Sprintf("global API key for %s", u.Email)
	}
	return "no credentials configured"
}
