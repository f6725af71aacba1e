// Package observe instruments credential resolution with OpenTelemetry
// tracing and metrics plus a JSON structured logger.
//
// It never sees secret values: the Middleware wraps a resolve function and
// records only the credential's name, backend and Vault path, the duration,
// and the error (which by construction carries no secret material). Log fields
// whose keys look sensitive are redacted regardless.
package observe
