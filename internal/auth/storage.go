package auth

import (
	"fmt"
	"os"

	"github.com/zalando/go-keyring"
)

const (
	// keyringService is the service name entries are stored under
	keyringService = "spmirror"

	// secretEnvVar overrides the keyring; meant for headless runs where no
	// keyring daemon is available
	secretEnvVar = "SPMIRROR_CLIENT_SECRET"
)

// ClientSecret resolves the app client secret: environment first, then the
// system keyring keyed by client ID.
func ClientSecret(clientID string) (string, error) {
	if secret := os.Getenv(secretEnvVar); secret != "" {
		return secret, nil
	}

	secret, err := keyring.Get(keyringService, clientID)
	if err != nil {
		return "", fmt.Errorf("no client secret for %s: set %s or run 'spmirror auth set-secret': %w",
			clientID, secretEnvVar, err)
	}
	return secret, nil
}

// StoreClientSecret saves the secret in the system keyring
func StoreClientSecret(clientID, secret string) error {
	if err := keyring.Set(keyringService, clientID, secret); err != nil {
		return fmt.Errorf("failed to store client secret: %w", err)
	}
	return nil
}

// DeleteClientSecret removes the secret from the system keyring
func DeleteClientSecret(clientID string) error {
	if err := keyring.Delete(keyringService, clientID); err != nil {
		return fmt.Errorf("failed to delete client secret: %w", err)
	}
	return nil
}
