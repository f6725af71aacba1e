// Package auth obtains the Vault client token used for secret reads.
//
// Two strategies are supported, selected by FromEnv:
//
//   - Static token: VAULT_TOKEN, falling back to ~/.vault-token.
//   - Kubernetes: when VAULT_KUBERNETES_ROLE is set, the pod's service
//     account JWT is exchanged for a client token at
//     auth/<mount>/login.
//
// Authentication happens at most once per process (see Once). Tokens are
// never renewed; a failed login is reported to every caller and not retried.
package auth
