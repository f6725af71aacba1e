// Package credentials resolves application secrets by name.
//
// A name is looked up in the Secretfile of the working directory. A line
//
//	DB_PASSWORD secret/$APP_ENV/db:password
//
// sends DB_PASSWORD to Vault, reading field "password" of the secret at
// secret/<APP_ENV>/db. Names without a line are read from the environment
// variable of the same name, so an application can start with plain
// environment variables and move secrets into Vault without changing code.
//
//	password, err := credentials.Var(ctx, "DB_PASSWORD")
//
// Vault is configured from VAULT_ADDR and authenticated with VAULT_TOKEN,
// ~/.vault-token, or, when VAULT_KUBERNETES_ROLE is set, the pod's service
// account. Each name is fetched once per Client and kept for the life of the
// process; leases and token TTLs are not renewed.
package credentials
