package health

import "errors"

var (
	// ErrCheckTimeout indicates a health check did not finish in time.
	ErrCheckTimeout = errors.New("health: check timeout")

	// ErrVaultSealed indicates Vault is sealed.
	ErrVaultSealed = errors.New("health: vault is sealed")

	// ErrVaultNotInitialized indicates Vault has not been initialized.
	ErrVaultNotInitialized = errors.New("health: vault is not initialized")
)
