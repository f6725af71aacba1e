// Package secretfile parses Secretfiles: line-oriented documents that map
// logical secret names to Vault locators.
//
// Format:
//
//	# comment lines start with '#'
//	DB_USER      secret/example:username
//	DB_PASSWORD  postgresql/$VAULT_ENV/creds/readonly:password
//
// Each entry is NAME followed by a locator. The locator is split on its final
// ':' into a Vault path and a field key. The path may reference environment
// variables as $VAR or ${VAR}; "$$" is a literal '$'. A reference to an
// undefined variable fails the parse rather than expanding to the empty string.
//
// Names that do not appear in a Secretfile resolve from the environment.
package secretfile
