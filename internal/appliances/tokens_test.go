package appliances

import (
	"testing"

	"github.com/zalando/go-keyring"
)

func TestTokenStorage(t *testing.T) {
	keyring.MockInit()
	t.Setenv(HomeEnvVar, t.TempDir())

	if err := StoreToken("prod", ""); err == nil {
		t.Error("expected error storing empty token")
	}

	token, err := LoadToken("prod")
	if err != nil {
		t.Fatalf("LoadToken() before store: %v", err)
	}
	if token != "" {
		t.Errorf("LoadToken() = %q, want empty", token)
	}

	if err := StoreToken("prod", "abc-123"); err != nil {
		t.Fatalf("StoreToken() error: %v", err)
	}

	token, err = LoadToken("prod")
	if err != nil {
		t.Fatalf("LoadToken() error: %v", err)
	}
	if token != "abc-123" {
		t.Errorf("LoadToken() = %q, want abc-123", token)
	}

	if err := ClearToken("prod"); err != nil {
		t.Fatalf("ClearToken() error: %v", err)
	}
	token, _ = LoadToken("prod")
	if token != "" {
		t.Errorf("token still present after ClearToken: %q", token)
	}
}

func TestTokenFileFallback(t *testing.T) {
	t.Setenv(HomeEnvVar, t.TempDir())

	if err := storeTokenInFile("lab", "file-token\n"); err != nil {
		t.Fatalf("storeTokenInFile() error: %v", err)
	}
	token, err := loadTokenFromFile("lab")
	if err != nil {
		t.Fatalf("loadTokenFromFile() error: %v", err)
	}
	if token != "file-token" {
		t.Errorf("loadTokenFromFile() = %q, want file-token", token)
	}
}
