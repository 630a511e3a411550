package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/concave-dev/morpheus-cli/cmd/morpheus/config"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/resources"
)

func TestAddFromFlags(t *testing.T) {
	fake, _ := setup(t)
	config.Global.NoPrompt = true

	out, err := execute(t, Add(resources.Groups, Hooks{}), resources.Groups.CreateOptions(),
		map[string]string{"name": "dev", "code": "d", "location": "us-east"})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	writes := fake.Writes()
	if len(writes) != 1 || writes[0].Method != http.MethodPost || writes[0].Path != "/api/groups" {
		t.Fatalf("unexpected writes %+v", writes)
	}
	want := map[string]any{"group": map[string]any{"name": "dev", "code": "d", "location": "us-east"}}
	if !reflect.DeepEqual(writes[0].Body, want) {
		t.Errorf("body = %v, want %v", writes[0].Body, want)
	}
	if !strings.Contains(out, "Added group dev") || !strings.Contains(out, "Group Details") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestAddMissingRequiredWithoutPrompt(t *testing.T) {
	fake, _ := setup(t)
	config.Global.NoPrompt = true

	_, err := execute(t, Add(resources.Networks, Hooks{}), resources.Networks.CreateOptions(),
		map[string]string{"name": "net1"})
	if err == nil || !strings.Contains(err.Error(), "missing required option --cloud") {
		t.Fatalf("expected missing --cloud error, got %v", err)
	}
	if len(fake.Requests()) != 0 {
		t.Errorf("sent %d requests", len(fake.Requests()))
	}
}

func TestAddPromptsForMissingFields(t *testing.T) {
	fake, p := setup(t, "", "eu-west")

	_, err := execute(t, Add(resources.Groups, Hooks{}), resources.Groups.CreateOptions(), nil, "dev")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	// name came from the argument; code and location were asked for.
	if len(p.Asked) != 2 {
		t.Fatalf("asked %v", p.Asked)
	}
	want := map[string]any{"name": "dev", "location": "eu-west"}
	if got := fake.Writes()[0].Body["group"]; !reflect.DeepEqual(got, want) {
		t.Errorf("group = %v, want %v", got, want)
	}
}

func TestAddPayloadPrecedence(t *testing.T) {
	fake, p := setup(t)
	config.Payload.JSON = `{"group": {"name": "from-file", "code": "file", "location": "file"}}`
	config.Payload.Options = []string{"location=option"}

	_, err := execute(t, Add(resources.Groups, Hooks{}), resources.Groups.CreateOptions(),
		map[string]string{"name": "from-flag"})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if len(p.Asked) != 0 {
		t.Errorf("prompted despite payload: %v", p.Asked)
	}

	want := map[string]any{"name": "from-flag", "code": "file", "location": "option"}
	if got := fake.Writes()[0].Body["group"]; !reflect.DeepEqual(got, want) {
		t.Errorf("group = %v, want %v", got, want)
	}
}

func TestAddPayloadFile(t *testing.T) {
	fake, _ := setup(t)
	path := filepath.Join(t.TempDir(), "group.yaml")
	if err := os.WriteFile(path, []byte("group:\n  name: yaml-group\n  code: y\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	config.Payload.File = path

	if _, err := execute(t, Add(resources.Groups, Hooks{}), resources.Groups.CreateOptions(), nil); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	want := map[string]any{"name": "yaml-group", "code": "y"}
	if got := fake.Writes()[0].Body["group"]; !reflect.DeepEqual(got, want) {
		t.Errorf("group = %v, want %v", got, want)
	}
}

func TestAddPayloadSourcesExclusive(t *testing.T) {
	setup(t)
	config.Payload.File = "a.json"
	config.Payload.JSON = "{}"

	_, err := execute(t, Add(resources.Groups, Hooks{}), resources.Groups.CreateOptions(), nil)
	if err == nil || !strings.Contains(err.Error(), "only one of --payload") {
		t.Fatalf("expected exclusive payload error, got %v", err)
	}
}

func TestAddAPIValidationError(t *testing.T) {
	fake, _ := setup(t)
	config.Payload.JSON = `{"group": {"code": "nameless"}}`

	_, err := execute(t, Add(resources.Groups, Hooks{}), resources.Groups.CreateOptions(), nil)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if len(fake.Writes()) != 1 {
		t.Errorf("expected the create request to be sent")
	}
}

func TestAddResolvesReferences(t *testing.T) {
	fake, _ := setup(t)
	fake.Seed("/api/zones", map[string]any{"name": "aws"})
	fake.Seed("/api/networks", map[string]any{"name": "n1"}, map[string]any{"name": "n2"})
	config.Global.NoPrompt = true

	_, err := execute(t, Add(resources.Networks, Hooks{}), resources.Networks.CreateOptions(),
		map[string]string{"cloud": "aws", "type": "vlan", "name": "n3", "vlan-id": "120", "dhcp": "off"})
	if err != nil {
		t.Fatalf("add network failed: %v", err)
	}
	network := fake.Writes()[0].Body["network"].(map[string]any)
	if !reflect.DeepEqual(network["zone"], map[string]any{"id": float64(1)}) {
		t.Errorf("zone = %v", network["zone"])
	}
	if !reflect.DeepEqual(network["type"], map[string]any{"code": "vlan"}) {
		t.Errorf("type = %v", network["type"])
	}
	if network["vlanId"] != float64(120) || network["dhcpServer"] != false {
		t.Errorf("unexpected network %v", network)
	}

	_, err = execute(t, Add(resources.NetworkGroups, Hooks{}), resources.NetworkGroups.CreateOptions(),
		map[string]string{"name": "ng", "networks": "n1, 2"})
	if err != nil {
		t.Fatalf("add network group failed: %v", err)
	}
	group := fake.Writes()[1].Body["networkGroup"].(map[string]any)
	want := []any{map[string]any{"id": float64(1)}, map[string]any{"id": float64(2)}}
	if !reflect.DeepEqual(group["networks"], want) {
		t.Errorf("networks = %v, want %v", group["networks"], want)
	}
}

func TestAddUnknownReference(t *testing.T) {
	fake, _ := setup(t)
	config.Global.NoPrompt = true

	_, err := execute(t, Add(resources.Networks, Hooks{}), resources.Networks.CreateOptions(),
		map[string]string{"cloud": "nowhere", "type": "vlan", "name": "n"})
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Label != "Cloud" {
		t.Fatalf("expected cloud not found, got %v", err)
	}
	if len(fake.Writes()) != 0 {
		t.Error("network created despite failed lookup")
	}
}

func TestUpdate(t *testing.T) {
	fake, p := setup(t)
	fake.Seed("/api/groups", map[string]any{"name": "dev", "code": "d"})

	out, err := execute(t, Update(resources.Groups, Hooks{}), resources.Groups.UpdateOptions(),
		map[string]string{"location": "moved"}, "dev")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(p.Asked) != 0 {
		t.Errorf("update prompted: %v", p.Asked)
	}

	writes := fake.Writes()
	if len(writes) != 1 || writes[0].Method != http.MethodPut || writes[0].Path != "/api/groups/1" {
		t.Fatalf("unexpected writes %+v", writes)
	}
	if got := fake.Item("/api/groups", 1)["location"]; got != "moved" {
		t.Errorf("location = %v", got)
	}
	if !strings.Contains(out, "Updated group dev") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestUpdateRequiresChanges(t *testing.T) {
	fake, _ := setup(t)
	fake.Seed("/api/groups", map[string]any{"name": "dev"})

	_, err := execute(t, Update(resources.Groups, Hooks{}), resources.Groups.UpdateOptions(), nil, "dev")
	if err == nil || err.Error() != "Specify at least one option to update" {
		t.Fatalf("expected empty update error, got %v", err)
	}
	if len(fake.Writes()) != 0 {
		t.Error("empty update was sent")
	}
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name     string
		answer   string
		yes      bool
		wantCode int
		deleted  bool
	}{
		{name: "confirmed", answer: "yes", wantCode: ExitOK, deleted: true},
		{name: "declined", answer: "no", wantCode: ExitAborted},
		{name: "yes flag", yes: true, wantCode: ExitOK, deleted: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake, _ := setup(t, tt.answer)
			fake.Seed("/api/groups", map[string]any{"name": "dev"})
			config.Global.Yes = tt.yes

			out, err := execute(t, Remove(resources.Groups), nil, nil, "dev")
			if code := ExitCode(err); code != tt.wantCode {
				t.Fatalf("exit code = %d (%v), want %d", code, err, tt.wantCode)
			}
			if deleted := fake.Item("/api/groups", 1) == nil; deleted != tt.deleted {
				t.Errorf("deleted = %v, want %v", deleted, tt.deleted)
			}
			if tt.deleted && !strings.Contains(out, "Group dev removed") {
				t.Errorf("unexpected output:\n%s", out)
			}
		})
	}
}

func TestRemoveWithoutPromptNeedsYes(t *testing.T) {
	fake, _ := setup(t)
	fake.Seed("/api/groups", map[string]any{"name": "dev"})
	config.Global.NoPrompt = true

	_, err := execute(t, Remove(resources.Groups), nil, nil, "dev")
	if err == nil || !strings.Contains(err.Error(), "--yes") {
		t.Fatalf("expected confirmation error, got %v", err)
	}
	if fake.Item("/api/groups", 1) == nil {
		t.Error("group deleted without confirmation")
	}
}
