// Package vault reads secrets from a Vault-compatible server.
//
// Client wraps github.com/hashicorp/vault/api with retries disabled and every
// request bounded by a bulkhead and a timeout. Backend adds the session from
// an auth.Authenticator, a per-path read memo, and field extraction that
// understands both the legacy (KV v1, dynamic engines) and versioned (KV v2)
// response shapes.
//
// Nothing here retries. A failed read is returned once and memoized by the
// caller.
package vault
