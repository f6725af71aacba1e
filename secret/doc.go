// Package secret resolves logical secret names to values.
//
// A Resolver consults the Secretfile for each name. Names with a Vault
// locator are read from Vault; every other name is read from the process
// environment by an EnvProvider.
//
// Each name is fetched at most once per Resolver. Concurrent callers asking
// for the same name share one fetch, and the outcome, value or error, is kept
// for the life of the Resolver. Secrets are never refreshed.
package secret
