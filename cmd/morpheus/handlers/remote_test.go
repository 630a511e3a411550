package handlers

import (
	"strings"
	"testing"

	"github.com/concave-dev/morpheus-cli/cmd/morpheus/config"
	"github.com/concave-dev/morpheus-cli/internal/appliances"
	"github.com/zalando/go-keyring"
)

func setupRemotes(t *testing.T, answers ...string) {
	t.Helper()
	setup(t, answers...)
	keyring.MockInit()
	t.Setenv(appliances.HomeEnvVar, t.TempDir())
}

func TestRemoteLifecycle(t *testing.T) {
	setupRemotes(t, "s3cret", "yes")

	if _, err := execute(t, AddRemote, nil, nil, "lab", "https://lab.example.com/"); err != nil {
		t.Fatalf("add remote failed: %v", err)
	}
	config.Remote.Use = true
	if _, err := execute(t, AddRemote, nil, nil, "prod", "https://morpheus.example.com"); err != nil {
		t.Fatalf("add remote failed: %v", err)
	}

	reg, err := appliances.Load()
	if err != nil {
		t.Fatal(err)
	}
	if active := reg.Active(); active == nil || active.Name != "prod" {
		t.Fatalf("active remote = %+v, want prod", active)
	}

	if _, err := execute(t, UseRemote, nil, nil, "lab"); err != nil {
		t.Fatalf("use remote failed: %v", err)
	}
	out, err := execute(t, CurrentRemote, nil, nil)
	if err != nil || !strings.Contains(out, "https://lab.example.com") {
		t.Fatalf("current remote: %v\n%s", err, out)
	}

	if _, err := execute(t, SetRemoteToken, nil, nil, "lab"); err != nil {
		t.Fatalf("set-token failed: %v", err)
	}
	if token, _ := appliances.LoadToken("lab"); token != "s3cret" {
		t.Errorf("stored token = %q", token)
	}

	out, err = execute(t, ListRemotes, nil, nil)
	if err != nil {
		t.Fatalf("list remotes failed: %v", err)
	}
	for _, want := range []string{"lab", "prod", "stored", "*"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}

	if _, err := execute(t, RemoveRemote, nil, nil, "lab"); err != nil {
		t.Fatalf("remove remote failed: %v", err)
	}
	reg, _ = appliances.Load()
	if _, err := reg.Get("lab"); err == nil {
		t.Error("lab still registered")
	}
	if token, _ := appliances.LoadToken("lab"); token != "" {
		t.Error("token survived removal")
	}
}

func TestRemoteErrors(t *testing.T) {
	setupRemotes(t)

	if _, err := execute(t, UseRemote, nil, nil, "nope"); err == nil {
		t.Error("expected error using unknown remote")
	}
	if _, err := execute(t, CurrentRemote, nil, nil); err == nil {
		t.Error("expected error with no active remote")
	}
	if _, err := execute(t, AddRemote, nil, nil, "bad name", "https://x.example.com"); err == nil {
		t.Error("expected invalid name error")
	}

	if _, err := execute(t, AddRemote, nil, nil, "lab", "https://lab.example.com"); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, AddRemote, nil, nil, "lab", "https://other.example.com"); err == nil {
		t.Error("expected duplicate remote error")
	}

	config.Global.NoPrompt = true
	if _, err := execute(t, SetRemoteToken, nil, nil, "lab"); err == nil {
		t.Error("expected set-token to need --token under --no-prompt")
	}
	config.Global.Token = "abc"
	if _, err := execute(t, SetRemoteToken, nil, nil, "lab"); err != nil {
		t.Errorf("set-token with --token failed: %v", err)
	}
}

func TestRemoveRemoteDeclined(t *testing.T) {
	setupRemotes(t, "no")
	if _, err := execute(t, AddRemote, nil, nil, "lab", "https://lab.example.com"); err != nil {
		t.Fatal(err)
	}

	_, err := execute(t, RemoveRemote, nil, nil, "lab")
	if ExitCode(err) != ExitAborted {
		t.Fatalf("exit code = %d (%v)", ExitCode(err), err)
	}
	reg, _ := appliances.Load()
	if _, err := reg.Get("lab"); err != nil {
		t.Error("remote removed after declining")
	}
}
