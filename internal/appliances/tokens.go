package appliances

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/concave-dev/morpheus-cli/internal/logging"
	"github.com/zalando/go-keyring"
)

// KeyringService is the service name used in the OS keyring.
const KeyringService = "morpheus-cli"

// tokenDirName holds fallback token files inside the morpheus home.
const tokenDirName = "tokens"

// StoreToken stores the API token for an appliance in the OS keyring.
// Falls back to file storage if the keyring is unavailable.
func StoreToken(name, token string) error {
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}

	err := keyring.Set(KeyringService, name, token)
	if err == nil {
		return nil
	}

	logging.Warn("OS keyring unavailable (%v), storing token in file", err)
	return storeTokenInFile(name, token)
}

// LoadToken retrieves the API token for an appliance. Returns an empty string
// and no error when no token is stored.
func LoadToken(name string) (string, error) {
	token, err := keyring.Get(KeyringService, name)
	if err == nil {
		return token, nil
	}
	if !errors.Is(err, keyring.ErrNotFound) {
		logging.Debug("OS keyring lookup failed for %s: %v", name, err)
	}
	return loadTokenFromFile(name)
}

// ClearToken removes the stored token for an appliance from both stores.
func ClearToken(name string) error {
	keyringErr := keyring.Delete(KeyringService, name)
	if errors.Is(keyringErr, keyring.ErrNotFound) {
		keyringErr = nil
	}

	path, err := tokenFilePath(name)
	if err != nil {
		return err
	}
	fileErr := os.Remove(path)
	if errors.Is(fileErr, os.ErrNotExist) {
		fileErr = nil
	}

	if keyringErr != nil && fileErr != nil {
		return fmt.Errorf("failed to clear token from keyring (%v) and file (%v)", keyringErr, fileErr)
	}
	return nil
}

func tokenFilePath(name string) (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, tokenDirName, name), nil
}

func storeTokenInFile(name, token string) error {
	path, err := tokenFilePath(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

func loadTokenFromFile(name string) (string, error) {
	path, err := tokenFilePath(name)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
