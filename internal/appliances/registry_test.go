package appliances

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestRegistryAddUseRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), RegistryFileName)

	reg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() on missing file: %v", err)
	}
	if len(reg.Appliances) != 0 {
		t.Fatalf("expected empty registry, got %d appliances", len(reg.Appliances))
	}

	first, err := reg.Add("prod", "https://prod.example.com/", false)
	if err != nil {
		t.Fatalf("Add(prod) error: %v", err)
	}
	if !first.Active {
		t.Error("first appliance should become active")
	}
	if first.URL != "https://prod.example.com" {
		t.Errorf("URL = %q, want trailing slash trimmed", first.URL)
	}

	if _, err := reg.Add("lab", "http://10.0.0.5", true); err != nil {
		t.Fatalf("Add(lab) error: %v", err)
	}
	if _, err := reg.Add("lab", "http://10.0.0.6", true); err == nil {
		t.Error("expected duplicate name error")
	}
	if _, err := reg.Add("bad name", "http://10.0.0.6", false); err == nil {
		t.Error("expected invalid name error")
	}

	if err := reg.Use("lab"); err != nil {
		t.Fatalf("Use(lab) error: %v", err)
	}
	if active := reg.Active(); active == nil || active.Name != "lab" {
		t.Fatalf("Active() = %+v, want lab", active)
	}

	if err := reg.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	reloaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if len(reloaded.Appliances) != 2 {
		t.Fatalf("reloaded %d appliances, want 2", len(reloaded.Appliances))
	}
	lab, err := reloaded.Get("lab")
	if err != nil {
		t.Fatalf("Get(lab) error: %v", err)
	}
	if !lab.Active || !lab.Insecure {
		t.Errorf("lab = %+v, want active and insecure", lab)
	}

	if err := reloaded.Remove("prod"); err != nil {
		t.Fatalf("Remove(prod) error: %v", err)
	}
	if err := reloaded.Remove("prod"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove(prod) twice = %v, want ErrNotFound", err)
	}
	if err := reloaded.Use("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Use(missing) = %v, want ErrNotFound", err)
	}
}
