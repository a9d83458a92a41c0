package kv

import "net/url"

// EncodeKey percent-encodes a key so it is safe as exactly one URL path
// segment. Keys containing separators, whitespace, or non-ASCII text all
// survive; url.PathUnescape(EncodeKey(k)) == k for any k.
func EncodeKey(key string) string {
	return url.PathEscape(key)
}
