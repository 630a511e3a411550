// Package appliances manages the local registry of Morpheus appliances the CLI
// can talk to, and the API tokens stored for them.
//
// The registry is a small YAML file under the morpheus home directory
// ($MORPHEUS_HOME, default ~/.morpheus). Exactly one appliance may be active;
// commands target the active appliance unless --remote or --url says otherwise.
// Tokens never live in the registry file: they go to the OS keyring, with a
// permission-restricted file fallback for headless hosts.
package appliances

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/concave-dev/morpheus-cli/internal/logging"
	"github.com/concave-dev/morpheus-cli/internal/validate"
	"gopkg.in/yaml.v3"
)

const (
	// HomeEnvVar overrides the morpheus home directory.
	HomeEnvVar = "MORPHEUS_HOME"

	// RegistryFileName is the registry file inside the home directory.
	RegistryFileName = "appliances.yaml"
)

// ErrNotFound is returned when a named appliance is not registered.
var ErrNotFound = errors.New("appliance not found")

// Appliance is a registered remote appliance.
type Appliance struct {
	Name     string `yaml:"name" json:"name"`
	URL      string `yaml:"url" json:"url"`
	Insecure bool   `yaml:"insecure,omitempty" json:"insecure"`
	Active   bool   `yaml:"active,omitempty" json:"active"`
}

// Registry is the on-disk set of appliances.
type Registry struct {
	path       string
	Appliances []Appliance `yaml:"appliances"`
}

// HomeDir returns the morpheus home directory.
func HomeDir() (string, error) {
	if dir := os.Getenv(HomeEnvVar); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, ".morpheus"), nil
}

// Load reads the registry from the morpheus home directory. A missing file
// yields an empty registry.
func Load() (*Registry, error) {
	dir, err := HomeDir()
	if err != nil {
		return nil, err
	}
	return LoadFile(filepath.Join(dir, RegistryFileName))
}

// LoadFile reads the registry from an explicit path.
func LoadFile(path string) (*Registry, error) {
	reg := &Registry{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logging.Debug("No appliance registry at %s", path)
		return reg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read appliance registry: %w", err)
	}

	if err := yaml.Unmarshal(data, reg); err != nil {
		return nil, fmt.Errorf("failed to parse appliance registry %s: %w", path, err)
	}
	return reg, nil
}

// Save writes the registry back to disk, creating the home directory when needed.
func (r *Registry) Save() error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o700); err != nil {
		return fmt.Errorf("failed to create morpheus home: %w", err)
	}

	sort.Slice(r.Appliances, func(i, j int) bool {
		return r.Appliances[i].Name < r.Appliances[j].Name
	})

	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode appliance registry: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write appliance registry: %w", err)
	}
	return nil
}

// Path returns the registry file location.
func (r *Registry) Path() string {
	return r.path
}

// Get returns the named appliance.
func (r *Registry) Get(name string) (*Appliance, error) {
	for i := range r.Appliances {
		if r.Appliances[i].Name == name {
			return &r.Appliances[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Active returns the active appliance, or nil when none is active.
func (r *Registry) Active() *Appliance {
	for i := range r.Appliances {
		if r.Appliances[i].Active {
			return &r.Appliances[i]
		}
	}
	return nil
}

// Add registers a new appliance. The first appliance added becomes active.
func (r *Registry) Add(name, rawURL string, insecure bool) (*Appliance, error) {
	if err := validate.RemoteNameFormat(name); err != nil {
		return nil, err
	}
	if _, err := r.Get(name); err == nil {
		return nil, fmt.Errorf("remote '%s' already exists", name)
	}

	u, err := validate.ParseApplianceURL(rawURL)
	if err != nil {
		return nil, err
	}

	r.Appliances = append(r.Appliances, Appliance{
		Name:     name,
		URL:      u,
		Insecure: insecure,
		Active:   len(r.Appliances) == 0,
	})
	return r.Get(name)
}

// Use marks the named appliance active and all others inactive.
func (r *Registry) Use(name string) error {
	if _, err := r.Get(name); err != nil {
		return err
	}
	for i := range r.Appliances {
		r.Appliances[i].Active = r.Appliances[i].Name == name
	}
	return nil
}

// Remove deletes the named appliance from the registry.
func (r *Registry) Remove(name string) error {
	for i := range r.Appliances {
		if r.Appliances[i].Name == name {
			r.Appliances = append(r.Appliances[:i], r.Appliances[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, name)
}
