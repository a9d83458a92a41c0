package kv

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/methyl/wrangler/internal/api"
	"github.com/methyl/wrangler/internal/terminal"
)

// ConfigError reports every required manifest field found missing, so one
// round of feedback covers all of them.
type ConfigError struct {
	MissingFields []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("your wrangler.toml is missing the following field(s): %q", e.MissingFields)
}

// DuplicateBindingError reports a binding name declared more than once in a
// target. An ambiguous manifest never resolves to either entry.
type DuplicateBindingError struct {
	Binding string
	Target  string
}

func (e *DuplicateBindingError) Error() string {
	return fmt.Sprintf("namespace binding %q is duplicated in %q", e.Binding, e.Target)
}

// BindingNotFoundError reports a binding name with no matching entry.
type BindingNotFoundError struct {
	Binding string
	Target  string
}

func (e *BindingNotFoundError) Error() string {
	return fmt.Sprintf("namespace binding %q not found in %q", e.Binding, e.Target)
}

// InputError reports a malformed confirmation response.
type InputError struct {
	Response string
}

func (e *InputError) Error() string {
	return `response must either be "y" for yes or "n" for no`
}

// FormatError turns a failed remote call into actionable text. Structured
// failures yield one line per (code, message) pair, in the order the store
// reported them, each followed by an advisory when the code is known; gateway
// statuses that carry no store error codes get their own leading advisory.
// Anything else is reported as a plain transport error. Pure; never panics.
func FormatError(err error) string {
	var failure *api.Failure
	if !errors.As(err, &failure) {
		return fmt.Sprintf("%s Error: %v", terminal.EmojiWarn, err)
	}

	var out strings.Builder
	if context := statusCodeContext(failure.StatusCode); context != "" {
		fmt.Fprintf(&out, "%s %s\n", terminal.EmojiWarn, context)
	}
	for _, info := range failure.Errors {
		fmt.Fprintf(&out, "%s Error %d: %s\n", terminal.EmojiWarn, info.Code, info.Message)
		if suggestion := help(info.Code); suggestion != "" {
			fmt.Fprintf(&out, "%s %s\n", terminal.EmojiSleuth, suggestion)
		}
	}
	return out.String()
}

// statusCodeContext explains HTTP statuses produced by the gateway in front
// of the store's API; these arrive without store error codes.
func statusCodeContext(statusCode int) string {
	switch statusCode {
	case http.StatusRequestEntityTooLarge:
		return "Returned status code 413, Payload Too Large. Please make sure your upload is less than 100MB in size"
	case http.StatusGatewayTimeout:
		return "Returned status code 504, Gateway Timeout. Please try again in a few seconds"
	default:
		return ""
	}
}

// help maps store error codes to suggestions. Codes are documented at
// https://api.cloudflare.com/#workers-kv-namespace-errors.
func help(errorCode int) string {
	switch errorCode {
	case 7000, 7003:
		return `your wrangler.toml is likely missing the field "account_id", which is required to write to Workers KV`
	case 10010, 10011, 10012, 10013, 10014, 10018:
		return "run `wrangler kv:namespace list` to see your existing namespaces with IDs"
	case 10009:
		return "run `wrangler kv:key list` to see your existing keys"
	case 10022, 10024, 10030:
		return "see documentation"
	case 10021, 10035, 10038:
		return "consider moving this namespace"
	case 10017, 10026:
		return "Workers KV is a paid feature, please upgrade your account (https://www.cloudflare.com/products/workers-kv/)"
	default:
		return ""
	}
}
