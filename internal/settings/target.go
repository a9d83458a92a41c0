// Package settings provides the project manifest (wrangler.toml) and user
// identity consumed by the wrangler commands.
package settings

// KvNamespace is one configured binding between a local symbolic name and a
// remote Workers KV namespace id. Bucket optionally associates a local
// directory with the namespace for `kv:bucket sync`; it plays no part in
// binding resolution.
type KvNamespace struct {
	Binding string `koanf:"binding" json:"binding"`
	ID      string `koanf:"id" json:"id"`
	Bucket  string `koanf:"bucket" json:"bucket,omitempty"`
}

// Target is one deployable configuration unit as declared in wrangler.toml.
// It is loaded once per command invocation and read-only afterwards.
type Target struct {
	Name         string        `koanf:"name" json:"name"`
	Type         string        `koanf:"type" json:"type,omitempty"`
	AccountID    string        `koanf:"account_id" json:"account_id"`
	Route        string        `koanf:"route" json:"route,omitempty"`
	ZoneID       string        `koanf:"zone_id" json:"zone_id,omitempty"`
	KvNamespaces []KvNamespace `koanf:"kv-namespaces" json:"kv-namespaces,omitempty"`
}
