package sbomconfig

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/sbomkit/pkg/config"
	"github.com/dmitrymomot/sbomkit/pkg/manifest"
)

// envDefaults is the environment representation of Defaults.
type envDefaults struct {
	GenerateManifestInfo []string `env:"SBOMKIT_DEFAULT_GENERATE_MANIFEST_INFO" envSeparator:"," envDefault:"SPDX:2.2"`
	ValidateManifestInfo []string `env:"SBOMKIT_DEFAULT_VALIDATE_MANIFEST_INFO" envSeparator:"," envDefault:"SPDX:2.2"`
	NamespaceURIBase     string   `env:"SBOMKIT_DEFAULT_NAMESPACE_URI_BASE"`
	PackageSupplier      string   `env:"SBOMKIT_DEFAULT_PACKAGE_SUPPLIER"`
}

// Defaults is an immutable AssemblyDefaults implementation.
type Defaults struct {
	generate         []manifest.Info
	validate         []manifest.Info
	namespaceURIBase string
	packageSupplier  string
}

var _ AssemblyDefaults = (*Defaults)(nil)

// NewDefaults builds Defaults from explicit values.
func NewDefaults(generate, validate []manifest.Info, namespaceURIBase, packageSupplier string) *Defaults {
	return &Defaults{
		generate:         slices.Clone(generate),
		validate:         slices.Clone(validate),
		namespaceURIBase: namespaceURIBase,
		packageSupplier:  packageSupplier,
	}
}

// LoadDefaults reads SBOMKIT_DEFAULT_* variables (and a .env file, if present).
// Unset variables fall back to SPDX 2.2 for both actions and empty
// namespace and supplier values.
func LoadDefaults() (*Defaults, error) {
	var env envDefaults
	if err := config.Load(&env); err != nil {
		return nil, fmt.Errorf("load assembly defaults: %w", err)
	}
	return defaultsFromEnv(env)
}

// ReloadDefaults works like LoadDefaults but parses the environment again,
// picking up variables set since the previous load.
func ReloadDefaults() (*Defaults, error) {
	var env envDefaults
	if err := config.ForceReload(&env); err != nil {
		return nil, fmt.Errorf("reload assembly defaults: %w", err)
	}
	return defaultsFromEnv(env)
}

func defaultsFromEnv(env envDefaults) (*Defaults, error) {
	generate, err := manifest.ParseInfoList(env.GenerateManifestInfo)
	if err != nil {
		return nil, fmt.Errorf("SBOMKIT_DEFAULT_GENERATE_MANIFEST_INFO: %w", err)
	}
	validate, err := manifest.ParseInfoList(env.ValidateManifestInfo)
	if err != nil {
		return nil, fmt.Errorf("SBOMKIT_DEFAULT_VALIDATE_MANIFEST_INFO: %w", err)
	}

	return NewDefaults(generate, validate, env.NamespaceURIBase, env.PackageSupplier), nil
}

func (d *Defaults) DefaultManifestInfoForGeneration() []manifest.Info {
	return slices.Clone(d.generate)
}

func (d *Defaults) DefaultManifestInfoForValidation() []manifest.Info {
	return slices.Clone(d.validate)
}

func (d *Defaults) DefaultNamespaceURIBase() string {
	return d.namespaceURIBase
}

func (d *Defaults) DefaultPackageSupplier() string {
	return d.packageSupplier
}
